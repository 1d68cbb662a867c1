package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Status     *entity.TaskStatus
	Priority   *entity.TaskPriority
	Tag        *string
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles listing the user's tasks.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo}
}

// Execute lists tasks matching the given filters.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	filter := adapter.TaskFilter{
		PropertyID: input.PropertyID,
		Status:     input.Status,
		Priority:   input.Priority,
		Tag:        input.Tag,
	}

	tasks, err := uc.taskRepo.FindByUserID(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
