package dto

import (
	"time"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	PropertyID  *string  `json:"property_id"`
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date"` // YYYY-MM-DD
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"` // YYYY-MM-DD
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
	Tags        []string `json:"tags"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	PropertyID  *string    `json:"property_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	response := TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Tags:        tags,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.PropertyID != nil {
		id := task.PropertyID.String()
		response.PropertyID = &id
	}
	return response
}

// ToTaskListResponse converts domain Task entities to a list response.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	response := TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, ToTaskResponse(task))
	}
	return response
}
