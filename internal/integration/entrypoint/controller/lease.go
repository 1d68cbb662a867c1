package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/application/usecase/lease"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// LeaseController handles lease endpoints.
type LeaseController struct {
	createLeaseUseCase        *lease.CreateLeaseUseCase
	listLeasesUseCase         *lease.ListLeasesUseCase
	terminateLeaseUseCase     *lease.TerminateLeaseUseCase
	listExpiringLeasesUseCase *lease.ListExpiringLeasesUseCase
}

// NewLeaseController creates a new lease controller instance.
func NewLeaseController(
	createLeaseUseCase *lease.CreateLeaseUseCase,
	listLeasesUseCase *lease.ListLeasesUseCase,
	terminateLeaseUseCase *lease.TerminateLeaseUseCase,
	listExpiringLeasesUseCase *lease.ListExpiringLeasesUseCase,
) *LeaseController {
	return &LeaseController{
		createLeaseUseCase:        createLeaseUseCase,
		listLeasesUseCase:         listLeasesUseCase,
		terminateLeaseUseCase:     terminateLeaseUseCase,
		listExpiringLeasesUseCase: listExpiringLeasesUseCase,
	}
}

// Create handles POST /leases requests.
func (c *LeaseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateLeaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidLeasePeriod),
		})
		return
	}

	propertyID, ok := parseRequiredID(ctx, req.PropertyID)
	if !ok {
		return
	}
	tenantID, ok := parseRequiredID(ctx, req.TenantID)
	if !ok {
		return
	}
	roomID, ok := parseOptionalID(ctx, req.RoomID)
	if !ok {
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidLeasePeriod),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidLeasePeriod),
		})
		return
	}

	input := lease.CreateLeaseInput{
		UserID:        userID,
		PropertyID:    propertyID,
		RoomID:        roomID,
		TenantID:      tenantID,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
		RentDueDay:    req.RentDueDay,
	}

	output, err := c.createLeaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLeaseResponse(output.Lease))
}

// List handles GET /leases requests.
func (c *LeaseController) List(ctx *gin.Context) {
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
	roomID, ok := parseOptionalIDQuery(ctx, "room_id")
	if !ok {
		return
	}
	tenantID, ok := parseOptionalIDQuery(ctx, "tenant_id")
	if !ok {
		return
	}

	input := lease.ListLeasesInput{
		UserID:     userID,
		PropertyID: propertyID,
		RoomID:     roomID,
		TenantID:   tenantID,
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.LeaseStatus(statusStr)
		if status != entity.LeaseStatusActive &&
			status != entity.LeaseStatusTerminated &&
			status != entity.LeaseStatusExpired {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Status must be: active, terminated, or expired",
			})
			return
		}
		input.Status = &status
	}

	output, err := c.listLeasesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseListResponse(output.Leases))
}

// ListExpiring handles GET /leases/expiring requests.
func (c *LeaseController) ListExpiring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	withinDays, err := strconv.Atoi(ctx.DefaultQuery("within_days", "60"))
	if err != nil || withinDays <= 0 {
		withinDays = 60
	}

	output, err := c.listExpiringLeasesUseCase.Execute(ctx.Request.Context(), lease.ListExpiringLeasesInput{
		UserID:     userID,
		WithinDays: withinDays,
	})
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseListResponse(output.Leases))
}

// Terminate handles POST /leases/:id/terminate requests.
func (c *LeaseController) Terminate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	leaseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.terminateLeaseUseCase.Execute(ctx.Request.Context(), lease.TerminateLeaseInput{
		UserID:  userID,
		LeaseID: leaseID,
	})
	if err != nil {
		c.handleLeaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaseResponse(output.Lease))
}

// handleLeaseError handles lease errors and returns appropriate HTTP responses.
func (c *LeaseController) handleLeaseError(ctx *gin.Context, err error) {
	var leaseErr *domainerror.LeaseError
	if errors.As(err, &leaseErr) {
		statusCode := c.getStatusCodeForLeaseError(leaseErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: leaseErr.Message,
			Code:  string(leaseErr.Code),
		})
		return
	}

	// Room/property/tenant lookups surface their own domain errors
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		statusCode := (&PropertyController{}).getStatusCodeForPropertyError(propErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: propErr.Message,
			Code:  string(propErr.Code),
		})
		return
	}
	var tenantErr *domainerror.TenantError
	if errors.As(err, &tenantErr) {
		statusCode := (&TenantController{}).getStatusCodeForTenantError(tenantErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tenantErr.Message,
			Code:  string(tenantErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLeaseError maps lease error codes to HTTP status codes.
func (c *LeaseController) getStatusCodeForLeaseError(code domainerror.LeaseErrorCode) int {
	switch code {
	case domainerror.ErrCodeLeaseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLeasePeriod,
		domainerror.ErrCodeInvalidRentDueDay:
		return http.StatusBadRequest
	case domainerror.ErrCodeLeaseNotActive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
