package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// CreateLeaseRequest represents the request body for lease creation.
type CreateLeaseRequest struct {
	PropertyID    string          `json:"property_id" binding:"required,uuid"`
	RoomID        *string         `json:"room_id"`
	TenantID      string          `json:"tenant_id" binding:"required,uuid"`
	StartDate     string          `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       string          `json:"end_date" binding:"required"`   // YYYY-MM-DD
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	RentDueDay    int             `json:"rent_due_day" binding:"required"`
}

// LeaseResponse represents a lease in API responses.
type LeaseResponse struct {
	ID            string          `json:"id"`
	PropertyID    string          `json:"property_id"`
	RoomID        *string         `json:"room_id,omitempty"`
	TenantID      string          `json:"tenant_id"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	RentDueDay    int             `json:"rent_due_day"`
	Status        string          `json:"status"`
	TerminatedAt  *time.Time      `json:"terminated_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LeaseListResponse represents the response for listing leases.
type LeaseListResponse struct {
	Leases []LeaseResponse `json:"leases"`
}

// ToLeaseResponse converts a domain Lease entity to a LeaseResponse DTO.
func ToLeaseResponse(lease *entity.Lease) LeaseResponse {
	response := LeaseResponse{
		ID:            lease.ID.String(),
		PropertyID:    lease.PropertyID.String(),
		TenantID:      lease.TenantID.String(),
		StartDate:     lease.StartDate,
		EndDate:       lease.EndDate,
		MonthlyRent:   lease.MonthlyRent,
		DepositAmount: lease.DepositAmount,
		RentDueDay:    lease.RentDueDay,
		Status:        string(lease.Status),
		TerminatedAt:  lease.TerminatedAt,
		CreatedAt:     lease.CreatedAt,
		UpdatedAt:     lease.UpdatedAt,
	}
	if lease.RoomID != nil {
		id := lease.RoomID.String()
		response.RoomID = &id
	}
	return response
}

// ToLeaseListResponse converts domain Lease entities to a list response.
func ToLeaseListResponse(leases []*entity.Lease) LeaseListResponse {
	response := LeaseListResponse{
		Leases: make([]LeaseResponse, 0, len(leases)),
	}
	for _, lease := range leases {
		response.Leases = append(response.Leases, ToLeaseResponse(lease))
	}
	return response
}
