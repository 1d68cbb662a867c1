// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// GenerateFinancialReportInput represents the input for a financial report.
type GenerateFinancialReportInput struct {
	UserID            uuid.UUID
	PropertyID        *uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	IncludeComparison bool
}

// ReportPeriod represents the date window a report covers.
type ReportPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// GrowthRates holds period-over-period growth percentages.
type GrowthRates struct {
	Revenue   float64 `json:"revenue"`
	Expenses  float64 `json:"expenses"`
	NetIncome float64 `json:"net_income"`
}

// PeriodComparison holds the prior period's totals and the growth against it.
type PeriodComparison struct {
	Period        ReportPeriod    `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
	Growth        GrowthRates     `json:"growth"`
}

// FinancialReport is the full financial report for a period.
type FinancialReport struct {
	Period            ReportPeriod      `json:"period"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	RentRevenue       decimal.Decimal   `json:"rent_revenue"`
	OtherRevenue      decimal.Decimal   `json:"other_revenue"`
	TotalExpenses     decimal.Decimal   `json:"total_expenses"`
	NetIncome         decimal.Decimal   `json:"net_income"`
	ProfitMargin      float64           `json:"profit_margin"`
	PaymentCount      int               `json:"payment_count"`
	ExpenseCount      int               `json:"expense_count"`
	CategoryBreakdown []BreakdownEntry  `json:"category_breakdown"`
	MethodBreakdown   []BreakdownEntry  `json:"method_breakdown"`
	Comparison        *PeriodComparison `json:"comparison,omitempty"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

// GenerateFinancialReportUseCase produces period financial reports with an
// optional comparison against the immediately preceding period.
type GenerateFinancialReportUseCase struct {
	reportRepo ReportRepository
}

// NewGenerateFinancialReportUseCase creates a new GenerateFinancialReportUseCase instance.
func NewGenerateFinancialReportUseCase(reportRepo ReportRepository) *GenerateFinancialReportUseCase {
	return &GenerateFinancialReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the period's records, reduces them, and optionally repeats
// the reduction over the preceding window of equal length.
func (uc *GenerateFinancialReportUseCase) Execute(
	ctx context.Context,
	input GenerateFinancialReportInput,
) (*FinancialReport, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	payments, err := uc.reportRepo.GetPaymentRecords(ctx, input.UserID, input.PropertyID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment records: %w", err)
	}
	expenses, err := uc.reportRepo.GetExpenseRecords(ctx, input.UserID, input.PropertyID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense records: %w", err)
	}

	agg := Aggregate(payments, expenses, input.StartDate, input.EndDate)

	report := &FinancialReport{
		Period:            ReportPeriod{StartDate: input.StartDate, EndDate: input.EndDate},
		TotalRevenue:      agg.TotalRevenue,
		RentRevenue:       agg.RentRevenue,
		OtherRevenue:      agg.OtherRevenue,
		TotalExpenses:     agg.TotalExpenses,
		NetIncome:         agg.NetIncome,
		ProfitMargin:      agg.ProfitMargin,
		PaymentCount:      agg.PaymentCount,
		ExpenseCount:      agg.ExpenseCount,
		CategoryBreakdown: agg.CategoryBreakdown,
		MethodBreakdown:   agg.MethodBreakdown,
		GeneratedAt:       time.Now().UTC(),
	}

	if input.IncludeComparison {
		comparison, err := uc.comparePreviousPeriod(ctx, input, agg)
		if err != nil {
			return nil, err
		}
		report.Comparison = comparison
	}

	return report, nil
}

// comparePreviousPeriod re-runs the aggregation over the preceding window of
// equal length and computes growth percentages against it.
func (uc *GenerateFinancialReportUseCase) comparePreviousPeriod(
	ctx context.Context,
	input GenerateFinancialReportInput,
	current Aggregation,
) (*PeriodComparison, error) {
	prevStart, prevEnd := PreviousWindow(input.StartDate, input.EndDate)

	payments, err := uc.reportRepo.GetPaymentRecords(ctx, input.UserID, input.PropertyID, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous period payments: %w", err)
	}
	expenses, err := uc.reportRepo.GetExpenseRecords(ctx, input.UserID, input.PropertyID, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous period expenses: %w", err)
	}

	prev := Aggregate(payments, expenses, prevStart, prevEnd)

	return &PeriodComparison{
		Period:        ReportPeriod{StartDate: prevStart, EndDate: prevEnd},
		TotalRevenue:  prev.TotalRevenue,
		TotalExpenses: prev.TotalExpenses,
		NetIncome:     prev.NetIncome,
		Growth: GrowthRates{
			Revenue:   growthPct(current.TotalRevenue, prev.TotalRevenue),
			Expenses:  growthPct(current.TotalExpenses, prev.TotalExpenses),
			NetIncome: growthPct(current.NetIncome, prev.NetIncome),
		},
	}, nil
}

// PreviousWindow returns the window of equal length immediately preceding
// [start, end]: it ends the day before start.
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.Add(-length)
	return prevStart, prevEnd
}

// growthPct computes (current-previous)/previous*100. A zero previous value
// yields zero growth rather than a division error.
func growthPct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	pct := current.Sub(previous).Mul(decimal.NewFromInt(100)).Div(previous)
	rounded, _ := pct.Round(2).Float64()
	return rounded
}

// validateWindow checks the report window shared by all report use cases.
func validateWindow(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if end.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if end.Before(start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
