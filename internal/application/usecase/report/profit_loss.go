// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// GenerateProfitLossStatementInput represents the input for a P&L statement.
type GenerateProfitLossStatementInput struct {
	UserID         uuid.UUID
	PropertyID     *uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	GroupBy        Granularity
	IncludeDetails bool
}

// ProfitLossLine is one period row of the statement.
type ProfitLossLine struct {
	PeriodLabel string           `json:"period_label"`
	PeriodStart time.Time        `json:"period_start"`
	Revenue     decimal.Decimal  `json:"revenue"`
	Expenses    decimal.Decimal  `json:"expenses"`
	NetIncome   decimal.Decimal  `json:"net_income"`
	Details     []BreakdownEntry `json:"details,omitempty"`
}

// ProfitLossStatement is the grouped profit and loss view of a period.
type ProfitLossStatement struct {
	Period        ReportPeriod     `json:"period"`
	GroupBy       Granularity      `json:"group_by"`
	Lines         []ProfitLossLine `json:"lines"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	NetIncome     decimal.Decimal  `json:"net_income"`
	ProfitMargin  float64          `json:"profit_margin"`
	GeneratedAt   time.Time        `json:"generated_at"`
}

// GenerateProfitLossStatementUseCase produces period-grouped P&L statements.
type GenerateProfitLossStatementUseCase struct {
	reportRepo ReportRepository
}

// NewGenerateProfitLossStatementUseCase creates a new GenerateProfitLossStatementUseCase instance.
func NewGenerateProfitLossStatementUseCase(reportRepo ReportRepository) *GenerateProfitLossStatementUseCase {
	return &GenerateProfitLossStatementUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the window's records once and folds them into per-period
// statement lines, optionally with a per-period category detail.
func (uc *GenerateProfitLossStatementUseCase) Execute(
	ctx context.Context,
	input GenerateProfitLossStatementInput,
) (*ProfitLossStatement, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	groupBy := input.GroupBy
	if groupBy == "" {
		groupBy = GranularityMonthly
	}
	if !ValidGranularity(groupBy) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			"group_by must be: daily, weekly, or monthly",
			domainerror.ErrInvalidGranularity,
		)
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
	lines := uc.buildLines(agg, input.StartDate, input.EndDate, groupBy, input.IncludeDetails)

	return &ProfitLossStatement{
		Period:        ReportPeriod{StartDate: input.StartDate, EndDate: input.EndDate},
		GroupBy:       groupBy,
		Lines:         lines,
		TotalRevenue:  agg.TotalRevenue,
		TotalExpenses: agg.TotalExpenses,
		NetIncome:     agg.NetIncome,
		ProfitMargin:  agg.ProfitMargin,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// buildLines folds the filtered records into the continuous period series.
func (uc *GenerateProfitLossStatementUseCase) buildLines(
	agg Aggregation,
	start, end time.Time,
	groupBy Granularity,
	includeDetails bool,
) []ProfitLossLine {
	series := PeriodSeries(start, end, groupBy)

	revenue := make(map[string]decimal.Decimal, len(series))
	spend := make(map[string]decimal.Decimal, len(series))
	periodExpenses := make(map[string][]*entity.Expense, len(series))
	for _, p := range agg.Payments {
		key := PeriodKey(p.Date, groupBy)
		revenue[key] = revenue[key].Add(p.Amount)
	}
	for _, e := range agg.Expenses {
		key := PeriodKey(e.Date, groupBy)
		spend[key] = spend[key].Add(e.Amount)
		periodExpenses[key] = append(periodExpenses[key], e)
	}

	lines := make([]ProfitLossLine, 0, len(series))
	for _, period := range series {
		key := period.Date.Format("2006-01-02")
		line := ProfitLossLine{
			PeriodLabel: period.PeriodLabel,
			PeriodStart: period.PeriodStart,
			Revenue:     revenue[key],
			Expenses:    spend[key],
			NetIncome:   revenue[key].Sub(spend[key]),
		}
		if includeDetails {
			line.Details = expenseBreakdown(periodExpenses[key], spend[key])
		}
		lines = append(lines, line)
	}

	return lines
}
