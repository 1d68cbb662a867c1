// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/usecase/property"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// PropertyController handles property and room endpoints.
type PropertyController struct {
	createPropertyUseCase *property.CreatePropertyUseCase
	getPropertyUseCase    *property.GetPropertyUseCase
	listPropertiesUseCase *property.ListPropertiesUseCase
	updatePropertyUseCase *property.UpdatePropertyUseCase
	deletePropertyUseCase *property.DeletePropertyUseCase
	createRoomUseCase     *property.CreateRoomUseCase
	updateRoomUseCase     *property.UpdateRoomUseCase
	deleteRoomUseCase     *property.DeleteRoomUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	createPropertyUseCase *property.CreatePropertyUseCase,
	getPropertyUseCase *property.GetPropertyUseCase,
	listPropertiesUseCase *property.ListPropertiesUseCase,
	updatePropertyUseCase *property.UpdatePropertyUseCase,
	deletePropertyUseCase *property.DeletePropertyUseCase,
	createRoomUseCase *property.CreateRoomUseCase,
	updateRoomUseCase *property.UpdateRoomUseCase,
	deleteRoomUseCase *property.DeleteRoomUseCase,
) *PropertyController {
	return &PropertyController{
		createPropertyUseCase: createPropertyUseCase,
		getPropertyUseCase:    getPropertyUseCase,
		listPropertiesUseCase: listPropertiesUseCase,
		updatePropertyUseCase: updatePropertyUseCase,
		deletePropertyUseCase: deletePropertyUseCase,
		createRoomUseCase:     createRoomUseCase,
		updateRoomUseCase:     updateRoomUseCase,
		deleteRoomUseCase:     deleteRoomUseCase,
	}
}

// Create handles POST /properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePropertyNameRequired),
		})
		return
	}

	purchaseDate, ok := parseOptionalDate(ctx, req.PurchaseDate)
	if !ok {
		return
	}

	input := property.CreatePropertyInput{
		UserID:        userID,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		PurchasePrice: req.PurchasePrice,
		LandValue:     req.LandValue,
		PurchaseDate:  purchaseDate,
		Notes:         req.Notes,
	}

	output, err := c.createPropertyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output.Property))
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listPropertiesUseCase.Execute(ctx.Request.Context(), property.ListPropertiesInput{
		UserID: userID,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// Get handles GET /properties/:id requests.
func (c *PropertyController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getPropertyUseCase.Execute(ctx.Request.Context(), property.GetPropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyDetailResponse(output.Property, output.Rooms))
}

// Update handles PUT /properties/:id requests.
func (c *PropertyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	purchaseDate, ok := parseOptionalDate(ctx, req.PurchaseDate)
	if !ok {
		return
	}

	input := property.UpdatePropertyInput{
		UserID:        userID,
		PropertyID:    propertyID,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		PurchasePrice: req.PurchasePrice,
		LandValue:     req.LandValue,
		PurchaseDate:  purchaseDate,
		Notes:         req.Notes,
	}

	output, err := c.updatePropertyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// Delete handles DELETE /properties/:id requests.
func (c *PropertyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.deletePropertyUseCase.Execute(ctx.Request.Context(), property.DeletePropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateRoom handles POST /properties/:id/rooms requests.
func (c *PropertyController) CreateRoom(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeRoomNameRequired),
		})
		return
	}

	input := property.CreateRoomInput{
		UserID:      userID,
		PropertyID:  propertyID,
		Name:        req.Name,
		MonthlyRent: req.MonthlyRent,
		SizeSqm:     req.SizeSqm,
		Furnished:   req.Furnished,
	}

	output, err := c.createRoomUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRoomResponse(output.Room))
}

// UpdateRoom handles PUT /properties/:id/rooms/:roomId requests.
func (c *PropertyController) UpdateRoom(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(ctx, "roomId")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := property.UpdateRoomInput{
		UserID:      userID,
		PropertyID:  propertyID,
		RoomID:      roomID,
		Name:        req.Name,
		MonthlyRent: req.MonthlyRent,
		SizeSqm:     req.SizeSqm,
		Furnished:   req.Furnished,
		Available:   req.Available,
	}

	output, err := c.updateRoomUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoomResponse(output.Room))
}

// DeleteRoom handles DELETE /properties/:id/rooms/:roomId requests.
func (c *PropertyController) DeleteRoom(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	propertyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(ctx, "roomId")
	if !ok {
		return
	}

	err := c.deleteRoomUseCase.Execute(ctx.Request.Context(), property.DeleteRoomInput{
		UserID:     userID,
		PropertyID: propertyID,
		RoomID:     roomID,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePropertyError handles property errors and returns appropriate HTTP responses.
func (c *PropertyController) handlePropertyError(ctx *gin.Context, err error) {
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		statusCode := c.getStatusCodeForPropertyError(propErr.Code)
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

// getStatusCodeForPropertyError maps property error codes to HTTP status codes.
func (c *PropertyController) getStatusCodeForPropertyError(code domainerror.PropertyErrorCode) int {
	switch code {
	case domainerror.ErrCodePropertyNotFound,
		domainerror.ErrCodeRoomNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePropertyNameRequired,
		domainerror.ErrCodeInvalidPurchaseData,
		domainerror.ErrCodeRoomNameRequired,
		domainerror.ErrCodeInvalidMonthlyRent:
		return http.StatusBadRequest
	case domainerror.ErrCodeRoomNotAvailable:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedProperty:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses a UUID path parameter, writing a 400 response on failure.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalDate parses an optional YYYY-MM-DD field, writing a 400
// response on failure.
func parseOptionalDate(ctx *gin.Context, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &parsed, true
}

// parseRequiredID parses a required UUID string field, writing a 400
// response on failure.
func parseRequiredID(ctx *gin.Context, value string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id format",
		})
		return uuid.Nil, false
	}
	return parsed, true
}

// parseOptionalIDQuery parses an optional UUID query parameter, writing a 400
// response on failure.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*uuid.UUID, bool) {
	value := ctx.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return nil, false
	}
	return &parsed, true
}

// parseOptionalID parses an optional UUID string field, writing a 400
// response on failure.
func parseOptionalID(ctx *gin.Context, value *string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id format",
		})
		return nil, false
	}
	return &parsed, true
}
