package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/application/usecase/task"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task endpoints.
type TaskController struct {
	createTaskUseCase *task.CreateTaskUseCase
	listTasksUseCase  *task.ListTasksUseCase
	updateTaskUseCase *task.UpdateTaskUseCase
	deleteTaskUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	createTaskUseCase *task.CreateTaskUseCase,
	listTasksUseCase *task.ListTasksUseCase,
	updateTaskUseCase *task.UpdateTaskUseCase,
	deleteTaskUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		createTaskUseCase: createTaskUseCase,
		listTasksUseCase:  listTasksUseCase,
		updateTaskUseCase: updateTaskUseCase,
		deleteTaskUseCase: deleteTaskUseCase,
	}
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTaskTitleRequired),
		})
		return
	}

	propertyID, ok := parseOptionalID(ctx, req.PropertyID)
	if !ok {
		return
	}
	dueDate, ok := parseOptionalDate(ctx, req.DueDate)
	if !ok {
		return
	}

	input := task.CreateTaskInput{
		UserID:      userID,
		PropertyID:  propertyID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    entity.TaskPriority(req.Priority),
		Tags:        req.Tags,
	}

	output, err := c.createTaskUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// List handles GET /tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseOptionalIDQuery(ctx, "property_id")
	if !ok {
		return
	}

	input := task.ListTasksInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.TaskStatus(statusStr)
		input.Status = &status
	}
	if priorityStr := ctx.Query("priority"); priorityStr != "" {
		priority := entity.TaskPriority(priorityStr)
		input.Priority = &priority
	}
	if tag := ctx.Query("tag"); tag != "" {
		input.Tag = &tag
	}

	output, err := c.listTasksUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Update handles PUT /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, ok := parseOptionalDate(ctx, req.DueDate)
	if !ok {
		return
	}

	input := task.UpdateTaskInput{
		UserID:      userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Tags:        req.Tags,
	}
	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateTaskUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deleteTaskUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		statusCode := c.getStatusCodeForTaskError(taskErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *TaskController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTaskTitleRequired,
		domainerror.ErrCodeInvalidTaskPriority,
		domainerror.ErrCodeInvalidTaskStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
