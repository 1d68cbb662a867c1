package dto

import (
	"time"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// CreateTenantRequest represents the request body for tenant creation.
type CreateTenantRequest struct {
	PropertyID *string `json:"property_id"`
	FullName   string  `json:"full_name" binding:"required,min=1,max=200"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
}

// UpdateTenantRequest represents the request body for tenant update.
type UpdateTenantRequest struct {
	PropertyID  *string `json:"property_id"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	MoveInDate  *string `json:"move_in_date"`  // YYYY-MM-DD
	MoveOutDate *string `json:"move_out_date"` // YYYY-MM-DD
}

// ArchiveTenantRequest represents the request body for tenant archival.
type ArchiveTenantRequest struct {
	MoveOutDate *string `json:"move_out_date"` // YYYY-MM-DD
}

// TenantResponse represents a tenant in API responses.
type TenantResponse struct {
	ID          string     `json:"id"`
	PropertyID  *string    `json:"property_id,omitempty"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	MoveInDate  *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate *time.Time `json:"move_out_date,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TenantListResponse represents the response for listing tenants.
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToTenantResponse converts a domain Tenant entity to a TenantResponse DTO.
func ToTenantResponse(tenant *entity.Tenant) TenantResponse {
	response := TenantResponse{
		ID:          tenant.ID.String(),
		FullName:    tenant.FullName,
		Email:       tenant.Email,
		Phone:       tenant.Phone,
		MoveInDate:  tenant.MoveInDate,
		MoveOutDate: tenant.MoveOutDate,
		Active:      tenant.Active,
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
	}
	if tenant.PropertyID != nil {
		id := tenant.PropertyID.String()
		response.PropertyID = &id
	}
	return response
}

// ToTenantListResponse converts domain Tenant entities to a list response.
func ToTenantListResponse(tenants []*entity.Tenant) TenantListResponse {
	response := TenantListResponse{
		Tenants: make([]TenantResponse, 0, len(tenants)),
	}
	for _, tenant := range tenants {
		response.Tenants = append(response.Tenants, ToTenantResponse(tenant))
	}
	return response
}
