package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 50
	// MaxPageSize caps the number of payments returned per page.
	MaxPageSize = 200
)

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	LeaseID    *uuid.UUID
	TenantID   *uuid.UUID
	Type       *entity.PaymentType
	Status     *entity.PaymentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PageSize   int
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Payments   []*entity.Payment
	TotalCount int64
	Page       int
	PageSize   int
}

// ListPaymentsUseCase handles listing the user's payments.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo}
}

// Execute lists payments matching the given filters, newest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter := adapter.PaymentFilter{
		PropertyID: input.PropertyID,
		LeaseID:    input.LeaseID,
		TenantID:   input.TenantID,
		Type:       input.Type,
		Status:     input.Status,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	pagination := adapter.PaymentPagination{Page: page, PageSize: pageSize}

	payments, total, err := uc.paymentRepo.FindByUserID(ctx, input.UserID, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []*entity.Payment{}
	}

	return &ListPaymentsOutput{
		Payments:   payments,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
