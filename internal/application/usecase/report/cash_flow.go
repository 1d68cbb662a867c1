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

// forecastPeriods is the fixed number of future buckets a forecast projects.
const forecastPeriods = 6

// trendThreshold is the relative change below which a flow is considered stable.
const trendThreshold = 0.05

// Trend labels for income and expense series.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Trend labels for the net-flow series.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
)

// GenerateCashFlowAnalysisInput represents the input for a cash-flow analysis.
type GenerateCashFlowAnalysisInput struct {
	UserID          uuid.UUID
	PropertyID      *uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Granularity     Granularity
	IncludeForecast bool
}

// CashFlowPoint is one bucket of the cash-flow time series.
type CashFlowPoint struct {
	PeriodLabel    string          `json:"period_label"`
	PeriodStart    time.Time       `json:"period_start"`
	Income         decimal.Decimal `json:"income"`
	Expenses       decimal.Decimal `json:"expenses"`
	NetFlow        decimal.Decimal `json:"net_flow"`
	CumulativeFlow decimal.Decimal `json:"cumulative_flow"`
	Projected      bool            `json:"projected"`
}

// CashFlowTrend classifies the direction of each flow series.
type CashFlowTrend struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	NetFlow  string `json:"net_flow"`
}

// CashFlowAnalysis is the bucketed cash-flow series with trend classification
// and an optional forward projection.
type CashFlowAnalysis struct {
	Period      ReportPeriod    `json:"period"`
	Granularity Granularity     `json:"granularity"`
	Points      []CashFlowPoint `json:"points"`
	Forecast    []CashFlowPoint `json:"forecast,omitempty"`
	Trend       CashFlowTrend   `json:"trend"`
	TotalNet    decimal.Decimal `json:"total_net"`
	AverageFlow decimal.Decimal `json:"average_flow"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// GenerateCashFlowAnalysisUseCase buckets period flows into a time series.
type GenerateCashFlowAnalysisUseCase struct {
	reportRepo ReportRepository
}

// NewGenerateCashFlowAnalysisUseCase creates a new GenerateCashFlowAnalysisUseCase instance.
func NewGenerateCashFlowAnalysisUseCase(reportRepo ReportRepository) *GenerateCashFlowAnalysisUseCase {
	return &GenerateCashFlowAnalysisUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the period's records, buckets them at the requested
// granularity with a continuous zero-filled series, classifies trends, and
// optionally projects six future periods from the observed averages.
func (uc *GenerateCashFlowAnalysisUseCase) Execute(
	ctx context.Context,
	input GenerateCashFlowAnalysisInput,
) (*CashFlowAnalysis, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	if !ValidGranularity(input.Granularity) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: daily, weekly, or monthly",
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
	points := bucketFlows(agg, input.StartDate, input.EndDate, input.Granularity)

	analysis := &CashFlowAnalysis{
		Period:      ReportPeriod{StartDate: input.StartDate, EndDate: input.EndDate},
		Granularity: input.Granularity,
		Points:      points,
		Trend:       classifyTrends(points),
		TotalNet:    agg.NetIncome,
		AverageFlow: decimal.Zero,
		GeneratedAt: time.Now().UTC(),
	}

	if len(points) > 0 {
		analysis.AverageFlow = agg.NetIncome.Div(decimal.NewFromInt(int64(len(points)))).Round(2)
	}

	if input.IncludeForecast {
		analysis.Forecast = forecastFlows(points, input.Granularity)
	}

	return analysis, nil
}

// bucketFlows assigns the aggregation's filtered records to a continuous
// period series and runs the cumulative prefix sum across it.
func bucketFlows(agg Aggregation, start, end time.Time, granularity Granularity) []CashFlowPoint {
	series := PeriodSeries(start, end, granularity)

	income := make(map[string]decimal.Decimal, len(series))
	outflow := make(map[string]decimal.Decimal, len(series))
	for _, p := range agg.Payments {
		key := PeriodKey(p.Date, granularity)
		income[key] = income[key].Add(p.Amount)
	}
	for _, e := range agg.Expenses {
		key := PeriodKey(e.Date, granularity)
		outflow[key] = outflow[key].Add(e.Amount)
	}

	points := make([]CashFlowPoint, 0, len(series))
	cumulative := decimal.Zero
	for _, period := range series {
		key := period.Date.Format("2006-01-02")
		in := income[key]
		out := outflow[key]
		net := in.Sub(out)
		cumulative = cumulative.Add(net)

		points = append(points, CashFlowPoint{
			PeriodLabel:    period.PeriodLabel,
			PeriodStart:    period.PeriodStart,
			Income:         in,
			Expenses:       out,
			NetFlow:        net,
			CumulativeFlow: cumulative,
		})
	}

	return points
}

// forecastFlows projects the observed per-period average income and expenses
// forward, continuing the cumulative chain from the last historical bucket.
func forecastFlows(points []CashFlowPoint, granularity Granularity) []CashFlowPoint {
	if len(points) == 0 {
		return []CashFlowPoint{}
	}

	n := decimal.NewFromInt(int64(len(points)))
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, p := range points {
		totalIncome = totalIncome.Add(p.Income)
		totalExpenses = totalExpenses.Add(p.Expenses)
	}
	avgIncome := totalIncome.Div(n).Round(2)
	avgExpenses := totalExpenses.Div(n).Round(2)
	avgNet := avgIncome.Sub(avgExpenses)

	last := points[len(points)-1]
	cumulative := last.CumulativeFlow
	current := last.PeriodStart

	forecast := make([]CashFlowPoint, 0, forecastPeriods)
	for i := 0; i < forecastPeriods; i++ {
		current = nextPeriodStart(current, granularity)
		cumulative = cumulative.Add(avgNet)
		forecast = append(forecast, CashFlowPoint{
			PeriodLabel:    PeriodLabel(current, granularity),
			PeriodStart:    current,
			Income:         avgIncome,
			Expenses:       avgExpenses,
			NetFlow:        avgNet,
			CumulativeFlow: cumulative,
			Projected:      true,
		})
	}

	return forecast
}

// nextPeriodStart advances a bucket start by one granularity step.
func nextPeriodStart(start time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityDaily:
		return start.AddDate(0, 0, 1)
	case GranularityWeekly:
		return start.AddDate(0, 0, 7)
	case GranularityMonthly:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// classifyTrends compares first-half and second-half averages of each series.
// Income and expenses read increasing/decreasing/stable; net flow reads
// improving/declining/stable.
func classifyTrends(points []CashFlowPoint) CashFlowTrend {
	if len(points) < 2 {
		return CashFlowTrend{Income: TrendStable, Expenses: TrendStable, NetFlow: TrendStable}
	}

	half := len(points) / 2
	firstIncome, firstExpenses, firstNet := averageFlows(points[:half])
	secondIncome, secondExpenses, secondNet := averageFlows(points[half:])

	return CashFlowTrend{
		Income:   classifySlope(firstIncome, secondIncome, TrendIncreasing, TrendDecreasing),
		Expenses: classifySlope(firstExpenses, secondExpenses, TrendIncreasing, TrendDecreasing),
		NetFlow:  classifySlope(firstNet, secondNet, TrendImproving, TrendDeclining),
	}
}

// averageFlows returns the mean income, expenses, and net flow of a slice of points.
func averageFlows(points []CashFlowPoint) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	n := decimal.NewFromInt(int64(len(points)))
	income := decimal.Zero
	expenses := decimal.Zero
	net := decimal.Zero
	for _, p := range points {
		income = income.Add(p.Income)
		expenses = expenses.Add(p.Expenses)
		net = net.Add(p.NetFlow)
	}
	return income.Div(n), expenses.Div(n), net.Div(n)
}

// classifySlope labels the change from first to second, treating relative
// moves under trendThreshold as stable. When the baseline is zero any
// movement at all decides the direction.
func classifySlope(first, second decimal.Decimal, up, down string) string {
	diff := second.Sub(first)

	if first.IsZero() {
		switch {
		case diff.IsPositive():
			return up
		case diff.IsNegative():
			return down
		default:
			return TrendStable
		}
	}

	relative := diff.Div(first.Abs())
	threshold := decimal.NewFromFloat(trendThreshold)
	switch {
	case relative.GreaterThan(threshold):
		return up
	case relative.LessThan(threshold.Neg()):
		return down
	default:
		return TrendStable
	}
}
