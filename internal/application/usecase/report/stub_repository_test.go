package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// stubReportRepository feeds canned records to the report use cases.
type stubReportRepository struct {
	payments   []*entity.Payment
	expenses   []*entity.Expense
	properties []PropertyFacts
	err        error

	// Captured arguments from the most recent calls.
	paymentCalls []fetchCall
}

type fetchCall struct {
	propertyID *uuid.UUID
	start      time.Time
	end        time.Time
}

func (s *stubReportRepository) GetPaymentRecords(
	_ context.Context,
	_ uuid.UUID,
	propertyID *uuid.UUID,
	start, end time.Time,
) ([]*entity.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.paymentCalls = append(s.paymentCalls, fetchCall{propertyID: propertyID, start: start, end: end})
	var out []*entity.Payment
	for _, p := range s.payments {
		if propertyID != nil && p.PropertyID != *propertyID {
			continue
		}
		if !inWindow(p.Date, start, end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubReportRepository) GetExpenseRecords(
	_ context.Context,
	_ uuid.UUID,
	propertyID *uuid.UUID,
	start, end time.Time,
) ([]*entity.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Expense
	for _, e := range s.expenses {
		if propertyID != nil && e.PropertyID != *propertyID {
			continue
		}
		if !inWindow(e.Date, start, end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *stubReportRepository) GetPropertyFacts(_ context.Context, _ uuid.UUID) ([]PropertyFacts, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.properties, nil
}

// date builds a UTC date for fixtures.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// pay builds a payment fixture on the given property.
func pay(propertyID uuid.UUID, amount float64, d time.Time, typ entity.PaymentType, status entity.PaymentStatus, method entity.PaymentMethod) *entity.Payment {
	return &entity.Payment{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Amount:     decimal.NewFromFloat(amount),
		Date:       d,
		Type:       typ,
		Status:     status,
		Method:     method,
	}
}

// spend builds an expense fixture on the given property.
func spend(propertyID uuid.UUID, amount float64, d time.Time, category string, receiptURL string) *entity.Expense {
	e := &entity.Expense{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Amount:     decimal.NewFromFloat(amount),
		Date:       d,
		Category:   category,
	}
	if receiptURL != "" {
		e.ReceiptURL = &receiptURL
	}
	return e
}

// janFebFixture is the canonical two-month data set: payments 1500 rent Jan,
// 2000 rent Feb, 500 deposit Jan; expenses 200 maintenance Jan, 150 utilities
// Feb, 100 supplies Jan.
func janFebFixture(propertyID uuid.UUID) ([]*entity.Payment, []*entity.Expense) {
	payments := []*entity.Payment{
		pay(propertyID, 1500, date(2025, time.January, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodBankTransfer),
		pay(propertyID, 2000, date(2025, time.February, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodBankTransfer),
		pay(propertyID, 500, date(2025, time.January, 10), entity.PaymentTypeDeposit, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	expenses := []*entity.Expense{
		spend(propertyID, 200, date(2025, time.January, 12), "maintenance", "https://receipts.example.com/1.pdf"),
		spend(propertyID, 150, date(2025, time.February, 20), "utilities", "https://receipts.example.com/2.pdf"),
		spend(propertyID, 100, date(2025, time.January, 25), "supplies", "https://receipts.example.com/3.pdf"),
	}
	return payments, expenses
}
