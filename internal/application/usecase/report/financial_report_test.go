package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

func TestFinancialReport_Totals(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateFinancialReportUseCase(repo)

	report, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		UserID:    uuid.New(),
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.February, 28),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.TotalRevenue.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("expected revenue 4000, got %s", report.TotalRevenue)
	}
	if !report.NetIncome.Equal(decimal.NewFromInt(3550)) {
		t.Errorf("expected net income 3550, got %s", report.NetIncome)
	}
	if report.Comparison != nil {
		t.Error("expected no comparison unless requested")
	}
	if len(report.CategoryBreakdown) != 3 {
		t.Errorf("expected 3 expense categories, got %d", len(report.CategoryBreakdown))
	}
}

func TestFinancialReport_Comparison(t *testing.T) {
	propertyID := uuid.New()
	payments := []*entity.Payment{
		// Previous period: November-December 2024.
		pay(propertyID, 1000, date(2024, time.December, 10), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
		// Current period: January-February 2025.
		pay(propertyID, 1500, date(2025, time.January, 10), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	expenses := []*entity.Expense{
		spend(propertyID, 200, date(2024, time.December, 15), "maintenance", ""),
		spend(propertyID, 100, date(2025, time.January, 20), "maintenance", ""),
	}
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateFinancialReportUseCase(repo)

	report, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		UserID:            uuid.New(),
		StartDate:         date(2025, time.January, 1),
		EndDate:           date(2025, time.February, 28),
		IncludeComparison: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Comparison == nil {
		t.Fatal("expected a comparison")
	}

	cmp := report.Comparison
	if !cmp.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected previous revenue 1000, got %s", cmp.TotalRevenue)
	}
	// (1500-1000)/1000*100 = 50
	if cmp.Growth.Revenue != 50 {
		t.Errorf("expected revenue growth 50, got %v", cmp.Growth.Revenue)
	}
	// (100-200)/200*100 = -50
	if cmp.Growth.Expenses != -50 {
		t.Errorf("expected expense growth -50, got %v", cmp.Growth.Expenses)
	}
	// Previous period ends the day before the current period starts.
	if !cmp.Period.EndDate.Equal(date(2024, time.December, 31)) {
		t.Errorf("expected previous period to end 2024-12-31, got %s", cmp.Period.EndDate)
	}
}

func TestFinancialReport_GrowthOnZeroPrevious(t *testing.T) {
	propertyID := uuid.New()
	payments := []*entity.Payment{
		pay(propertyID, 1500, date(2025, time.January, 10), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	repo := &stubReportRepository{payments: payments}
	uc := NewGenerateFinancialReportUseCase(repo)

	report, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		UserID:            uuid.New(),
		StartDate:         date(2025, time.January, 1),
		EndDate:           date(2025, time.January, 31),
		IncludeComparison: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Zero previous period: growth reads 0 rather than blowing up.
	if report.Comparison.Growth.Revenue != 0 {
		t.Errorf("expected growth 0 on zero previous period, got %v", report.Comparison.Growth.Revenue)
	}
}

func TestFinancialReport_PropertyFilter(t *testing.T) {
	propertyA := uuid.New()
	propertyB := uuid.New()
	payments := []*entity.Payment{
		pay(propertyA, 1000, date(2025, time.January, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
		pay(propertyB, 2000, date(2025, time.January, 6), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	repo := &stubReportRepository{payments: payments}
	uc := NewGenerateFinancialReportUseCase(repo)

	report, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		UserID:     uuid.New(),
		PropertyID: &propertyA,
		StartDate:  date(2025, time.January, 1),
		EndDate:    date(2025, time.January, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected only property A revenue, got %s", report.TotalRevenue)
	}
}

func TestFinancialReport_ValidationErrors(t *testing.T) {
	uc := NewGenerateFinancialReportUseCase(&stubReportRepository{})

	tests := []struct {
		name  string
		input GenerateFinancialReportInput
		code  domainerror.ReportErrorCode
	}{
		{
			name:  "missing start date",
			input: GenerateFinancialReportInput{UserID: uuid.New(), EndDate: date(2025, time.January, 31)},
			code:  domainerror.ErrCodeMissingStartDate,
		},
		{
			name:  "missing end date",
			input: GenerateFinancialReportInput{UserID: uuid.New(), StartDate: date(2025, time.January, 1)},
			code:  domainerror.ErrCodeMissingEndDate,
		},
		{
			name: "end before start",
			input: GenerateFinancialReportInput{
				UserID:    uuid.New(),
				StartDate: date(2025, time.February, 1),
				EndDate:   date(2025, time.January, 1),
			},
			code: domainerror.ErrCodeInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected a report error, got %v", err)
			}
			if reportErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, reportErr.Code)
			}
		})
	}
}

func TestFinancialReport_FetchFailurePropagates(t *testing.T) {
	uc := NewGenerateFinancialReportUseCase(&stubReportRepository{err: errors.New("store unavailable")})

	result, err := uc.Execute(context.Background(), GenerateFinancialReportInput{
		UserID:    uuid.New(),
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.January, 31),
	})
	if err == nil {
		t.Fatal("expected fetch failure to propagate")
	}
	if result != nil {
		t.Error("expected no partial result on fetch failure")
	}
}

func TestPreviousWindow(t *testing.T) {
	start, end := PreviousWindow(date(2025, time.March, 1), date(2025, time.March, 31))

	if !end.Equal(date(2025, time.February, 28)) {
		t.Errorf("expected previous end 2025-02-28, got %s", end)
	}
	// Same length as the original 30-day span.
	if end.Sub(start) != date(2025, time.March, 31).Sub(date(2025, time.March, 1)) {
		t.Errorf("expected equal-length previous window, got %s to %s", start, end)
	}
}
