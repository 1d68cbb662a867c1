package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/application/usecase/expense"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/cache"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createExpenseUseCase   *expense.CreateExpenseUseCase
	listExpensesUseCase    *expense.ListExpensesUseCase
	updateExpenseUseCase   *expense.UpdateExpenseUseCase
	deleteExpenseUseCase   *expense.DeleteExpenseUseCase
	suggestCategoryUseCase *expense.SuggestCategoryUseCase
	reportCache            *cache.ReportCache
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	updateExpenseUseCase *expense.UpdateExpenseUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
	suggestCategoryUseCase *expense.SuggestCategoryUseCase,
	reportCache *cache.ReportCache,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase:   createExpenseUseCase,
		listExpensesUseCase:    listExpensesUseCase,
		updateExpenseUseCase:   updateExpenseUseCase,
		deleteExpenseUseCase:   deleteExpenseUseCase,
		suggestCategoryUseCase: suggestCategoryUseCase,
		reportCache:            reportCache,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	propertyID, ok := parseRequiredID(ctx, req.PropertyID)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		PropertyID:  propertyID,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
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

	input := expense.ListExpensesInput{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if category := ctx.Query("category"); category != "" {
		input.Category = &category
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, ok := parseOptionalDate(ctx, req.Date)
	if !ok {
		return
	}

	input := expense.UpdateExpenseInput{
		UserID:      userID,
		ExpenseID:   expenseID,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	expenseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.suggestCategoryUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		UserID:      userID,
		Description: req.Description,
		Vendor:      req.Vendor,
		Amount:      req.Amount,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		statusCode := (&PropertyController{}).getStatusCodeForPropertyError(propErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: propErr.Message,
			Code:  string(propErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeExpenseDescriptionTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
