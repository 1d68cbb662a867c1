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

func TestCashFlowAnalysis_JanFebFixture(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	analysis, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:      uuid.New(),
		StartDate:   date(2025, time.January, 1),
		EndDate:     date(2025, time.February, 28),
		Granularity: GranularityMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Points) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(analysis.Points))
	}

	jan := analysis.Points[0]
	if !jan.Income.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("January income: expected 2000, got %s", jan.Income)
	}
	if !jan.Expenses.Equal(decimal.NewFromInt(300)) {
		t.Errorf("January expenses: expected 300, got %s", jan.Expenses)
	}
	if !jan.NetFlow.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("January net flow: expected 1700, got %s", jan.NetFlow)
	}
	if !jan.CumulativeFlow.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("January cumulative: expected 1700, got %s", jan.CumulativeFlow)
	}

	feb := analysis.Points[1]
	if !feb.Income.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("February income: expected 2000, got %s", feb.Income)
	}
	if !feb.Expenses.Equal(decimal.NewFromInt(150)) {
		t.Errorf("February expenses: expected 150, got %s", feb.Expenses)
	}
	if !feb.NetFlow.Equal(decimal.NewFromInt(1850)) {
		t.Errorf("February net flow: expected 1850, got %s", feb.NetFlow)
	}
	if !feb.CumulativeFlow.Equal(decimal.NewFromInt(3550)) {
		t.Errorf("February cumulative: expected 3550, got %s", feb.CumulativeFlow)
	}

	if !analysis.TotalNet.Equal(decimal.NewFromInt(3550)) {
		t.Errorf("expected total net 3550, got %s", analysis.TotalNet)
	}
	if !analysis.AverageFlow.Equal(decimal.NewFromInt(1775)) {
		t.Errorf("expected average flow 1775, got %s", analysis.AverageFlow)
	}
}

func TestCashFlowAnalysis_CumulativeIsPrefixSum(t *testing.T) {
	propertyID := uuid.New()
	payments := []*entity.Payment{
		pay(propertyID, 100, date(2025, time.January, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
		pay(propertyID, 700, date(2025, time.March, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	expenses := []*entity.Expense{
		spend(propertyID, 250, date(2025, time.February, 10), "maintenance", ""),
		spend(propertyID, 50, date(2025, time.April, 10), "supplies", ""),
	}
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	analysis, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:      uuid.New(),
		StartDate:   date(2025, time.January, 1),
		EndDate:     date(2025, time.April, 30),
		Granularity: GranularityMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	running := decimal.Zero
	for i, p := range analysis.Points {
		if !p.NetFlow.Equal(p.Income.Sub(p.Expenses)) {
			t.Errorf("bucket %d: net flow %s != income - expenses", i, p.NetFlow)
		}
		running = running.Add(p.NetFlow)
		if !p.CumulativeFlow.Equal(running) {
			t.Errorf("bucket %d: cumulative %s, expected prefix sum %s", i, p.CumulativeFlow, running)
		}
	}
}

func TestCashFlowAnalysis_ZeroFillsEmptyPeriods(t *testing.T) {
	propertyID := uuid.New()
	payments := []*entity.Payment{
		pay(propertyID, 500, date(2025, time.January, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
		pay(propertyID, 500, date(2025, time.March, 5), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
	}
	repo := &stubReportRepository{payments: payments}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	analysis, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:      uuid.New(),
		StartDate:   date(2025, time.January, 1),
		EndDate:     date(2025, time.March, 31),
		Granularity: GranularityMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Points) != 3 {
		t.Fatalf("expected 3 buckets including the empty February, got %d", len(analysis.Points))
	}
	feb := analysis.Points[1]
	if !feb.Income.IsZero() || !feb.Expenses.IsZero() {
		t.Errorf("expected zero-valued February bucket, got income=%s expenses=%s", feb.Income, feb.Expenses)
	}
	if !feb.CumulativeFlow.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected February to carry cumulative 500, got %s", feb.CumulativeFlow)
	}
}

func TestCashFlowAnalysis_ForecastSixPeriods(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	analysis, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:          uuid.New(),
		StartDate:       date(2025, time.January, 1),
		EndDate:         date(2025, time.February, 28),
		Granularity:     GranularityMonthly,
		IncludeForecast: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Forecast) != 6 {
		t.Fatalf("expected exactly 6 forecast periods, got %d", len(analysis.Forecast))
	}

	// Average income 2000, average expenses 225, net 1775 per projected month.
	last := analysis.Points[len(analysis.Points)-1].CumulativeFlow
	for i, p := range analysis.Forecast {
		if !p.Projected {
			t.Errorf("forecast bucket %d not flagged projected", i)
		}
		if !p.Income.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("forecast bucket %d: expected income 2000, got %s", i, p.Income)
		}
		if !p.Expenses.Equal(decimal.NewFromInt(225)) {
			t.Errorf("forecast bucket %d: expected expenses 225, got %s", i, p.Expenses)
		}
		last = last.Add(p.NetFlow)
		if !p.CumulativeFlow.Equal(last) {
			t.Errorf("forecast bucket %d: cumulative chain broken, got %s expected %s", i, p.CumulativeFlow, last)
		}
	}

	// First projected month continues March after February.
	if analysis.Forecast[0].PeriodLabel != "Mar 2025" {
		t.Errorf("expected forecast to start at Mar 2025, got %s", analysis.Forecast[0].PeriodLabel)
	}
}

func TestCashFlowAnalysis_InvalidGranularity(t *testing.T) {
	repo := &stubReportRepository{}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	_, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:      uuid.New(),
		StartDate:   date(2025, time.January, 1),
		EndDate:     date(2025, time.March, 31),
		Granularity: "quarterly",
	})

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a report error, got %v", err)
	}
	if reportErr.Code != domainerror.ErrCodeInvalidGranularity {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidGranularity, reportErr.Code)
	}
}

func TestCashFlowAnalysis_FetchFailurePropagates(t *testing.T) {
	repo := &stubReportRepository{err: errors.New("store unavailable")}
	uc := NewGenerateCashFlowAnalysisUseCase(repo)

	result, err := uc.Execute(context.Background(), GenerateCashFlowAnalysisInput{
		UserID:      uuid.New(),
		StartDate:   date(2025, time.January, 1),
		EndDate:     date(2025, time.March, 31),
		Granularity: GranularityMonthly,
	})
	if err == nil {
		t.Fatal("expected fetch failure to propagate")
	}
	if result != nil {
		t.Error("expected no partial result on fetch failure")
	}
}

func TestClassifyTrends(t *testing.T) {
	point := func(income, expenses float64) CashFlowPoint {
		in := decimal.NewFromFloat(income)
		out := decimal.NewFromFloat(expenses)
		return CashFlowPoint{Income: in, Expenses: out, NetFlow: in.Sub(out)}
	}

	tests := []struct {
		name     string
		points   []CashFlowPoint
		income   string
		expenses string
		netFlow  string
	}{
		{
			name:     "rising income improves net flow",
			points:   []CashFlowPoint{point(100, 50), point(100, 50), point(200, 50), point(200, 50)},
			income:   TrendIncreasing,
			expenses: TrendStable,
			netFlow:  TrendImproving,
		},
		{
			name:     "rising expenses decline net flow",
			points:   []CashFlowPoint{point(100, 10), point(100, 10), point(100, 80), point(100, 80)},
			income:   TrendStable,
			expenses: TrendIncreasing,
			netFlow:  TrendDeclining,
		},
		{
			name:     "flat flows are stable",
			points:   []CashFlowPoint{point(100, 40), point(100, 40), point(100, 40), point(100, 40)},
			income:   TrendStable,
			expenses: TrendStable,
			netFlow:  TrendStable,
		},
		{
			name:     "small wiggle under threshold is stable",
			points:   []CashFlowPoint{point(100, 40), point(100, 40), point(102, 41), point(102, 41)},
			income:   TrendStable,
			expenses: TrendStable,
			netFlow:  TrendStable,
		},
		{
			name:     "single point is stable",
			points:   []CashFlowPoint{point(100, 40)},
			income:   TrendStable,
			expenses: TrendStable,
			netFlow:  TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := classifyTrends(tt.points)
			if trend.Income != tt.income {
				t.Errorf("income trend: expected %s, got %s", tt.income, trend.Income)
			}
			if trend.Expenses != tt.expenses {
				t.Errorf("expenses trend: expected %s, got %s", tt.expenses, trend.Expenses)
			}
			if trend.NetFlow != tt.netFlow {
				t.Errorf("net flow trend: expected %s, got %s", tt.netFlow, trend.NetFlow)
			}
		})
	}
}
