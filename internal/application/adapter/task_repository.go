// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// TaskFilter represents filters for querying maintenance tasks.
type TaskFilter struct {
	PropertyID *uuid.UUID
	Status     *entity.TaskStatus
	Priority   *entity.TaskPriority
	Tag        *string
}

// TaskRepository defines the interface for maintenance task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByUserID retrieves tasks for a user matching the given filters,
	// ordered by due date ascending with tasks without a due date last.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*entity.Task, error)

	// Update updates an existing task in the database.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
