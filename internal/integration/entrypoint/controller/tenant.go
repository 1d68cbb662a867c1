package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/application/usecase/tenant"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// TenantController handles tenant endpoints.
type TenantController struct {
	createTenantUseCase  *tenant.CreateTenantUseCase
	listTenantsUseCase   *tenant.ListTenantsUseCase
	updateTenantUseCase  *tenant.UpdateTenantUseCase
	archiveTenantUseCase *tenant.ArchiveTenantUseCase
}

// NewTenantController creates a new tenant controller instance.
func NewTenantController(
	createTenantUseCase *tenant.CreateTenantUseCase,
	listTenantsUseCase *tenant.ListTenantsUseCase,
	updateTenantUseCase *tenant.UpdateTenantUseCase,
	archiveTenantUseCase *tenant.ArchiveTenantUseCase,
) *TenantController {
	return &TenantController{
		createTenantUseCase:  createTenantUseCase,
		listTenantsUseCase:   listTenantsUseCase,
		updateTenantUseCase:  updateTenantUseCase,
		archiveTenantUseCase: archiveTenantUseCase,
	}
}

// Create handles POST /tenants requests.
func (c *TenantController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTenantNameRequired),
		})
		return
	}

	propertyID, ok := parseOptionalID(ctx, req.PropertyID)
	if !ok {
		return
	}

	input := tenant.CreateTenantInput{
		UserID:     userID,
		PropertyID: propertyID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
	}

	output, err := c.createTenantUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(output.Tenant))
}

// List handles GET /tenants requests.
func (c *TenantController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := tenant.ListTenantsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active_only") == "true",
	}

	output, err := c.listTenantsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(output.Tenants))
}

// Update handles PUT /tenants/:id requests.
func (c *TenantController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tenantID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	propertyID, ok := parseOptionalID(ctx, req.PropertyID)
	if !ok {
		return
	}
	moveInDate, ok := parseOptionalDate(ctx, req.MoveInDate)
	if !ok {
		return
	}
	moveOutDate, ok := parseOptionalDate(ctx, req.MoveOutDate)
	if !ok {
		return
	}

	input := tenant.UpdateTenantInput{
		UserID:      userID,
		TenantID:    tenantID,
		PropertyID:  propertyID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		MoveInDate:  moveInDate,
		MoveOutDate: moveOutDate,
	}

	output, err := c.updateTenantUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(output.Tenant))
}

// Archive handles POST /tenants/:id/archive requests.
func (c *TenantController) Archive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tenantID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Body is optional for archival
	var req dto.ArchiveTenantRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	moveOutDate, ok := parseOptionalDate(ctx, req.MoveOutDate)
	if !ok {
		return
	}

	err := c.archiveTenantUseCase.Execute(ctx.Request.Context(), tenant.ArchiveTenantInput{
		UserID:      userID,
		TenantID:    tenantID,
		MoveOutDate: moveOutDate,
	})
	if err != nil {
		c.handleTenantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Tenant archived",
	})
}

// handleTenantError handles tenant errors and returns appropriate HTTP responses.
func (c *TenantController) handleTenantError(ctx *gin.Context, err error) {
	var tenantErr *domainerror.TenantError
	if errors.As(err, &tenantErr) {
		statusCode := c.getStatusCodeForTenantError(tenantErr.Code)
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

// getStatusCodeForTenantError maps tenant error codes to HTTP status codes.
func (c *TenantController) getStatusCodeForTenantError(code domainerror.TenantErrorCode) int {
	switch code {
	case domainerror.ErrCodeTenantNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTenantNameRequired,
		domainerror.ErrCodeTenantEmailInvalid:
		return http.StatusBadRequest
	case domainerror.ErrCodeTenantAlreadyArchived:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
