package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/application/usecase/payment"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/cache"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	recordPaymentUseCase       *payment.RecordPaymentUseCase
	listPaymentsUseCase        *payment.ListPaymentsUseCase
	updatePaymentStatusUseCase *payment.UpdatePaymentStatusUseCase
	deletePaymentUseCase       *payment.DeletePaymentUseCase
	reportCache                *cache.ReportCache
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	recordPaymentUseCase *payment.RecordPaymentUseCase,
	listPaymentsUseCase *payment.ListPaymentsUseCase,
	updatePaymentStatusUseCase *payment.UpdatePaymentStatusUseCase,
	deletePaymentUseCase *payment.DeletePaymentUseCase,
	reportCache *cache.ReportCache,
) *PaymentController {
	return &PaymentController{
		recordPaymentUseCase:       recordPaymentUseCase,
		listPaymentsUseCase:        listPaymentsUseCase,
		updatePaymentStatusUseCase: updatePaymentStatusUseCase,
		deletePaymentUseCase:       deletePaymentUseCase,
		reportCache:                reportCache,
	}
}

// Record handles POST /payments requests.
func (c *PaymentController) Record(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	propertyID, ok := parseRequiredID(ctx, req.PropertyID)
	if !ok {
		return
	}
	tenantID, ok := parseOptionalID(ctx, req.TenantID)
	if !ok {
		return
	}
	leaseID, ok := parseOptionalID(ctx, req.LeaseID)
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

	input := payment.RecordPaymentInput{
		UserID:      userID,
		PropertyID:  propertyID,
		TenantID:    tenantID,
		LeaseID:     leaseID,
		Amount:      req.Amount,
		Date:        date,
		Type:        entity.PaymentType(req.Type),
		Status:      entity.PaymentStatus(req.Status),
		Method:      entity.PaymentMethod(req.Method),
		Description: req.Description,
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// List handles GET /payments requests.
func (c *PaymentController) List(ctx *gin.Context) {
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
	leaseID, ok := parseOptionalIDQuery(ctx, "lease_id")
	if !ok {
		return
	}
	tenantID, ok := parseOptionalIDQuery(ctx, "tenant_id")
	if !ok {
		return
	}

	input := payment.ListPaymentsInput{
		UserID:     userID,
		PropertyID: propertyID,
		LeaseID:    leaseID,
		TenantID:   tenantID,
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		paymentType := entity.PaymentType(typeStr)
		input.Type = &paymentType
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.PaymentStatus(statusStr)
		input.Status = &status
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

	if page, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil {
		input.Page = page
	}
	if pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", "50")); err == nil {
		input.PageSize = pageSize
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments, output.TotalCount, output.Page, output.PageSize))
}

// UpdateStatus handles PATCH /payments/:id/status requests.
func (c *PaymentController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	paymentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPaymentStatus),
		})
		return
	}

	output, err := c.updatePaymentStatusUseCase.Execute(ctx.Request.Context(), payment.UpdatePaymentStatusInput{
		UserID:    userID,
		PaymentID: paymentID,
		Status:    entity.PaymentStatus(req.Status),
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// Delete handles DELETE /payments/:id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	paymentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deletePaymentUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	c.reportCache.InvalidateUser(ctx.Request.Context(), userID.String())
	ctx.Status(http.StatusNoContent)
}

// handlePaymentError handles payment errors and returns appropriate HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		statusCode := c.getStatusCodeForPaymentError(payErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
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

// getStatusCodeForPaymentError maps payment error codes to HTTP status codes.
func (c *PaymentController) getStatusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPaymentType,
		domainerror.ErrCodeInvalidPaymentStatus,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidPaymentAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
