package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProfitLossStatement_MonthlyLines(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateProfitLossStatementUseCase(repo)

	statement, err := uc.Execute(context.Background(), GenerateProfitLossStatementInput{
		UserID:    uuid.New(),
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.February, 28),
		GroupBy:   GranularityMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(statement.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(statement.Lines))
	}

	jan := statement.Lines[0]
	if !jan.Revenue.Equal(decimal.NewFromInt(2000)) || !jan.Expenses.Equal(decimal.NewFromInt(300)) {
		t.Errorf("January: expected 2000/300, got %s/%s", jan.Revenue, jan.Expenses)
	}
	if len(jan.Details) != 0 {
		t.Error("expected no details unless requested")
	}

	// Lines sum to the statement totals.
	revenue := decimal.Zero
	spendTotal := decimal.Zero
	for _, line := range statement.Lines {
		revenue = revenue.Add(line.Revenue)
		spendTotal = spendTotal.Add(line.Expenses)
	}
	if !revenue.Equal(statement.TotalRevenue) {
		t.Errorf("line revenue sum %s != total %s", revenue, statement.TotalRevenue)
	}
	if !spendTotal.Equal(statement.TotalExpenses) {
		t.Errorf("line expense sum %s != total %s", spendTotal, statement.TotalExpenses)
	}
}

func TestProfitLossStatement_Details(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateProfitLossStatementUseCase(repo)

	statement, err := uc.Execute(context.Background(), GenerateProfitLossStatementInput{
		UserID:         uuid.New(),
		StartDate:      date(2025, time.January, 1),
		EndDate:        date(2025, time.February, 28),
		GroupBy:        GranularityMonthly,
		IncludeDetails: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jan := statement.Lines[0]
	if len(jan.Details) != 2 {
		t.Fatalf("expected 2 January categories, got %d", len(jan.Details))
	}
	// maintenance 200 sorts before supplies 100.
	if jan.Details[0].Label != "maintenance" {
		t.Errorf("expected maintenance first, got %s", jan.Details[0].Label)
	}

	sum := decimal.Zero
	for _, d := range jan.Details {
		sum = sum.Add(d.Amount)
	}
	if !sum.Equal(jan.Expenses) {
		t.Errorf("detail sum %s != line expenses %s", sum, jan.Expenses)
	}
}

func TestProfitLossStatement_DefaultsToMonthly(t *testing.T) {
	propertyID := uuid.New()
	payments, expenses := janFebFixture(propertyID)
	repo := &stubReportRepository{payments: payments, expenses: expenses}
	uc := NewGenerateProfitLossStatementUseCase(repo)

	statement, err := uc.Execute(context.Background(), GenerateProfitLossStatementInput{
		UserID:    uuid.New(),
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.February, 28),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statement.GroupBy != GranularityMonthly {
		t.Errorf("expected monthly default, got %s", statement.GroupBy)
	}
}
