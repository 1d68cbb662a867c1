// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coliving-manager/backend/internal/application/usecase/report"
	"github.com/coliving-manager/backend/internal/domain/entity"
	"github.com/coliving-manager/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetPaymentRecords retrieves payments for reporting within the window.
func (r *reportRepository) GetPaymentRecords(ctx context.Context, userID uuid.UUID, propertyID *uuid.UUID, start, end time.Time) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end)
	if propertyID != nil {
		query = query.Where("property_id = ?", *propertyID)
	}

	var paymentModels []model.PaymentModel
	result := query.Order("date ASC").Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// GetExpenseRecords retrieves expenses for reporting within the window.
func (r *reportRepository) GetExpenseRecords(ctx context.Context, userID uuid.UUID, propertyID *uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end)
	if propertyID != nil {
		query = query.Where("property_id = ?", *propertyID)
	}

	var expenseModels []model.ExpenseModel
	result := query.Order("date ASC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// GetPropertyFacts retrieves depreciation-relevant property data for a user.
func (r *reportRepository) GetPropertyFacts(ctx context.Context, userID uuid.UUID) ([]report.PropertyFacts, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	facts := make([]report.PropertyFacts, len(propertyModels))
	for i, pm := range propertyModels {
		facts[i] = report.PropertyFacts{
			PropertyID:    pm.ID,
			Name:          pm.Name,
			PurchasePrice: pm.PurchasePrice,
			LandValue:     pm.LandValue,
		}
	}
	return facts, nil
}
