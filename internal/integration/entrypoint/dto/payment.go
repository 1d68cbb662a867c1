package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	PropertyID  string          `json:"property_id" binding:"required,uuid"`
	TenantID    *string         `json:"tenant_id"`
	LeaseID     *string         `json:"lease_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Type        string          `json:"type" binding:"required"`
	Status      string          `json:"status"`
	Method      string          `json:"method" binding:"required"`
	Description string          `json:"description"`
}

// UpdatePaymentStatusRequest represents the request body for a status change.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	TenantID    *string         `json:"tenant_id,omitempty"`
	LeaseID     *string         `json:"lease_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PaymentListResponse represents the paginated response for listing payments.
type PaymentListResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:          payment.ID.String(),
		PropertyID:  payment.PropertyID.String(),
		Amount:      payment.Amount,
		Date:        payment.Date,
		Type:        string(payment.Type),
		Status:      string(payment.Status),
		Method:      string(payment.Method),
		Description: payment.Description,
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}
	if payment.TenantID != nil {
		id := payment.TenantID.String()
		response.TenantID = &id
	}
	if payment.LeaseID != nil {
		id := payment.LeaseID.String()
		response.LeaseID = &id
	}
	return response
}

// ToPaymentListResponse converts domain Payment entities to a paginated list response.
func ToPaymentListResponse(payments []*entity.Payment, totalCount int64, page, pageSize int) PaymentListResponse {
	response := PaymentListResponse{
		Payments:   make([]PaymentResponse, 0, len(payments)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
	for _, payment := range payments {
		response.Payments = append(response.Payments, ToPaymentResponse(payment))
	}
	return response
}
