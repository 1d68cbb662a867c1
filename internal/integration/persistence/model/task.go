// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database.
type TaskModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID     `gorm:"type:uuid;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	DueDate     *time.Time     `gorm:"type:date;index"`
	Priority    string         `gorm:"type:varchar(10);not null;default:'medium'"`
	Status      string         `gorm:"type:varchar(20);not null;default:'open';index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	CompletedAt *time.Time     `gorm:"type:timestamptz"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Priority:    entity.TaskPriority(m.Priority),
		Status:      entity.TaskStatus(m.Status),
		Tags:        []string(m.Tags),
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	var deletedAt gorm.DeletedAt
	if task.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *task.DeletedAt, Valid: true}
	}

	return &TaskModel{
		ID:          task.ID,
		UserID:      task.UserID,
		PropertyID:  task.PropertyID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Tags:        pq.StringArray(task.Tags),
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
