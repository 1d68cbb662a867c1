// Package task contains maintenance task use cases.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	PropertyID  *uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    entity.TaskPriority
	Tags        []string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task creation. Priority defaults to medium.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskTitleRequired,
			"task title is required",
			domainerror.ErrTaskTitleRequired,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !isValidPriority(priority) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskPriority,
			"task priority must be high, medium or low",
			domainerror.ErrInvalidTaskPriority,
		)
	}

	task := entity.NewTask(
		input.UserID,
		input.PropertyID,
		strings.TrimSpace(input.Title),
		input.Description,
		input.DueDate,
		priority,
		normalizeTags(input.Tags),
	)
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}

func isValidPriority(p entity.TaskPriority) bool {
	switch p {
	case entity.TaskPriorityHigh, entity.TaskPriorityMedium, entity.TaskPriorityLow:
		return true
	}
	return false
}

// normalizeTags trims, lower-cases, and de-duplicates tags while keeping
// their first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
