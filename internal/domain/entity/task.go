// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a maintenance or administrative task for a property.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  *uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
	Tags        []string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTask creates a new open Task entity.
func NewTask(
	userID uuid.UUID,
	propertyID *uuid.UUID,
	title, description string,
	dueDate *time.Time,
	priority TaskPriority,
	tags []string,
) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      TaskStatusOpen,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkDone marks the task as completed.
func (t *Task) MarkDone() {
	now := time.Now().UTC()
	t.Status = TaskStatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now
}
