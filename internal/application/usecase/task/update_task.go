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

// UpdateTaskInput represents the input for task update.
// Nil pointer fields are left unchanged.
type UpdateTaskInput struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *entity.TaskPriority
	Status      *entity.TaskStatus
	Tags        []string
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task update. Moving a task to done records the
// completion time; moving it away clears it.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := findOwnedTask(ctx, uc.taskRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskTitleRequired,
				"task title is required",
				domainerror.ErrTaskTitleRequired,
			)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !isValidPriority(*input.Priority) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskPriority,
				"task priority must be high, medium or low",
				domainerror.ErrInvalidTaskPriority,
			)
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		switch *input.Status {
		case entity.TaskStatusDone:
			task.MarkDone()
		case entity.TaskStatusOpen, entity.TaskStatusInProgress:
			task.Status = *input.Status
			task.CompletedAt = nil
		default:
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskStatus,
				"task status must be open, in_progress or done",
				domainerror.ErrInvalidTaskStatus,
			)
		}
	}
	if input.Tags != nil {
		task.Tags = normalizeTags(input.Tags)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{Task: task}, nil
}

// findOwnedTask loads a task and verifies it belongs to the user.
func findOwnedTask(ctx context.Context, repo adapter.TaskRepository, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, taskID)
	if err != nil || task == nil || task.UserID != userID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}
	return task, nil
}
