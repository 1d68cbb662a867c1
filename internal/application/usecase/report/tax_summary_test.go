package report

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

func taxUseCase(repo ReportRepository) *GenerateTaxSummaryUseCase {
	return NewGenerateTaxSummaryUseCase(repo, decimal.NewFromInt(50000))
}

func facts(purchase, land float64) PropertyFacts {
	p := decimal.NewFromFloat(purchase)
	l := decimal.NewFromFloat(land)
	return PropertyFacts{PropertyID: uuid.New(), Name: "test property", PurchasePrice: &p, LandValue: &l}
}

func TestTaxSummary_Depreciation(t *testing.T) {
	repo := &stubReportRepository{properties: []PropertyFacts{facts(300000, 60000)}}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{
		UserID:  uuid.New(),
		TaxYear: 2025,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (300000 - 60000) / 27.5 = 8727.27
	got, _ := summary.TotalDepreciation.Float64()
	if math.Abs(got-8727.27) > 0.01 {
		t.Errorf("expected depreciation 8727.27, got %v", got)
	}
	if len(summary.Depreciation) != 1 {
		t.Fatalf("expected 1 depreciation line, got %d", len(summary.Depreciation))
	}
	if !summary.Depreciation[0].CostBasis.Equal(decimal.NewFromInt(240000)) {
		t.Errorf("expected cost basis 240000, got %s", summary.Depreciation[0].CostBasis)
	}
}

func TestTaxSummary_DepreciationSkipsIncompleteProperties(t *testing.T) {
	price := decimal.NewFromInt(300000)
	repo := &stubReportRepository{properties: []PropertyFacts{
		facts(300000, 60000),
		{PropertyID: uuid.New(), Name: "no land value", PurchasePrice: &price},
	}}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Depreciation) != 1 {
		t.Errorf("expected incomplete property skipped, got %d lines", len(summary.Depreciation))
	}
}

func TestTaxSummary_TaxableIncomeNeverNegative(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		payments: []*entity.Payment{
			pay(propertyID, 1000, date(2025, time.June, 1), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodCash),
		},
		expenses: []*entity.Expense{
			spend(propertyID, 5000, date(2025, time.June, 2), "maintenance", "https://receipts.example.com/r.pdf"),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.NetRentalIncome.Equal(decimal.NewFromInt(-4000)) {
		t.Errorf("expected net rental income -4000, got %s", summary.NetRentalIncome)
	}
	if !summary.TaxableIncome.IsZero() {
		t.Errorf("expected taxable income clamped to 0, got %s", summary.TaxableIncome)
	}
}

func TestTaxSummary_ScheduleLineMapping(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		line       string
		deductible bool
	}{
		{name: "maintenance", category: "maintenance", line: "Repairs and maintenance", deductible: true},
		{name: "utilities", category: "Utilities", line: "Utilities", deductible: true},
		{name: "professional", category: "professional", line: "Legal and other professional fees", deductible: true},
		{name: "insurance", category: "insurance", line: "Insurance", deductible: true},
		{name: "personal is non-deductible", category: "personal", line: OtherExpensesLine, deductible: false},
		{name: "unknown maps to other expenses", category: "llama grooming", line: OtherExpensesLine, deductible: true},
		{name: "empty maps to other expenses", category: "", line: OtherExpensesLine, deductible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := LookupIRSScheduleLine(tt.category)
			if line.Line != tt.line {
				t.Errorf("expected line %q, got %q", tt.line, line.Line)
			}
			if line.Deductible != tt.deductible {
				t.Errorf("expected deductible=%v, got %v", tt.deductible, line.Deductible)
			}
		})
	}
}

func TestTaxSummary_UncategorizedBucket(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.May, 1), "", "https://receipts.example.com/r.pdf"),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(summary.Categories))
	}
	if summary.Categories[0].BusinessCategory != UncategorizedLabel {
		t.Errorf("expected uncategorized bucket, got %q", summary.Categories[0].BusinessCategory)
	}
	if summary.Categories[0].IRSScheduleLine != OtherExpensesLine {
		t.Errorf("expected Other expenses line, got %q", summary.Categories[0].IRSScheduleLine)
	}
}

func TestTaxSummary_NonDeductibleExcludedFromDeductions(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.May, 1), "maintenance", "https://receipts.example.com/1.pdf"),
			spend(propertyID, 900, date(2025, time.May, 2), "personal", "https://receipts.example.com/2.pdf"),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.TotalDeductions.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected only the deductible 100 counted, got %s", summary.TotalDeductions)
	}
}

func TestTaxSummary_MissingReceiptRecommendation(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		properties: []PropertyFacts{facts(300000, 60000)},
		expenses: []*entity.Expense{
			spend(propertyID, 150, date(2025, time.May, 1), "utilities", ""),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, rec := range summary.Recommendations {
		if rec.Type == RecommendationDocumentation {
			found = true
			if rec.Priority != PriorityHigh {
				t.Errorf("expected high priority documentation rec, got %s", rec.Priority)
			}
		}
	}
	if !found {
		t.Error("expected a documentation recommendation for the missing receipt")
	}
}

func TestTaxSummary_MissingDepreciationRecommendation(t *testing.T) {
	repo := &stubReportRepository{}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Recommendations) == 0 {
		t.Fatal("expected a recommendation for missing depreciation data")
	}
	first := summary.Recommendations[0]
	if first.Type != RecommendationDeduction || first.Priority != PriorityHigh {
		t.Errorf("expected high priority deduction rec first, got type=%s priority=%s", first.Type, first.Priority)
	}
}

func TestTaxSummary_ProfessionalAdviceRecommendation(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		properties: []PropertyFacts{facts(300000, 60000)},
		payments: []*entity.Payment{
			pay(propertyID, 60000, date(2025, time.March, 1), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodBankTransfer),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, rec := range summary.Recommendations {
		if rec.Type == RecommendationStrategy {
			found = true
		}
	}
	if !found {
		t.Error("expected a strategy recommendation for high income without professional fees")
	}

	// A professional-fees expense silences the check.
	repo.expenses = []*entity.Expense{
		spend(propertyID, 500, date(2025, time.April, 1), "accounting", "https://receipts.example.com/a.pdf"),
	}
	summary, err = uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range summary.Recommendations {
		if rec.Type == RecommendationStrategy {
			t.Error("expected no strategy recommendation once professional fees exist")
		}
	}
}

func TestTaxSummary_TimingRecommendation(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		properties: []PropertyFacts{facts(300000, 60000)},
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.January, 15), "supplies", "https://receipts.example.com/1.pdf"),
			spend(propertyID, 200, date(2025, time.March, 20), "maintenance", "https://receipts.example.com/2.pdf"),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, rec := range summary.Recommendations {
		if rec.Type == RecommendationTiming {
			found = true
			if rec.Priority != PriorityLow {
				t.Errorf("expected low priority timing rec, got %s", rec.Priority)
			}
		}
	}
	if !found {
		t.Error("expected a timing recommendation when every expense is in Q1")
	}

	// An expense after Q1 silences the check.
	repo.expenses = append(repo.expenses,
		spend(propertyID, 50, date(2025, time.September, 1), "supplies", "https://receipts.example.com/3.pdf"))
	summary, err = uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range summary.Recommendations {
		if rec.Type == RecommendationTiming {
			t.Error("expected no timing recommendation with year-round expenses")
		}
	}
}

func TestTaxSummary_RecommendationsSortedByPriority(t *testing.T) {
	propertyID := uuid.New()
	// No depreciation data (high), missing receipt (high), high income without
	// professional fees (medium), all expenses in Q1 (low).
	repo := &stubReportRepository{
		payments: []*entity.Payment{
			pay(propertyID, 60000, date(2025, time.February, 1), entity.PaymentTypeRent, entity.PaymentStatusCompleted, entity.PaymentMethodBankTransfer),
		},
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.January, 15), "supplies", ""),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(summary.Recommendations))
	}
	expected := []RecommendationPriority{PriorityHigh, PriorityHigh, PriorityMedium, PriorityLow}
	for i, rec := range summary.Recommendations {
		if rec.Priority != expected[i] {
			t.Errorf("recommendation %d: expected priority %s, got %s", i, expected[i], rec.Priority)
		}
	}
	// Stable within the same priority: depreciation check runs before receipts.
	if summary.Recommendations[0].Type != RecommendationDeduction {
		t.Errorf("expected deduction rec first, got %s", summary.Recommendations[0].Type)
	}
	if summary.Recommendations[1].Type != RecommendationDocumentation {
		t.Errorf("expected documentation rec second, got %s", summary.Recommendations[1].Type)
	}
}

func TestTaxSummary_SummaryFormatOmitsDetail(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		properties: []PropertyFacts{facts(300000, 60000)},
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.May, 1), "supplies", "https://receipts.example.com/1.pdf"),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{
		UserID:  uuid.New(),
		TaxYear: 2025,
		Format:  FormatSummary,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Categories) != 0 {
		t.Error("expected summary format to omit category detail")
	}
	if !summary.TotalDeductions.IsPositive() {
		t.Error("expected totals to survive in summary format")
	}
}

func TestTaxSummary_IncludeReceipts(t *testing.T) {
	propertyID := uuid.New()
	repo := &stubReportRepository{
		properties: []PropertyFacts{facts(300000, 60000)},
		expenses: []*entity.Expense{
			spend(propertyID, 100, date(2025, time.May, 1), "supplies", "https://receipts.example.com/1.pdf"),
			spend(propertyID, 50, date(2025, time.May, 2), "supplies", ""),
		},
	}
	uc := taxUseCase(repo)

	summary, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{
		UserID:          uuid.New(),
		TaxYear:         2025,
		IncludeReceipts: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(summary.Categories))
	}
	cat := summary.Categories[0]
	if cat.Count != 2 || cat.ReceiptsCount != 1 {
		t.Errorf("expected count=2 receipts=1, got count=%d receipts=%d", cat.Count, cat.ReceiptsCount)
	}
	if len(cat.Receipts) != 1 {
		t.Errorf("expected 1 receipt reference, got %d", len(cat.Receipts))
	}
}

func TestTaxSummary_InvalidYear(t *testing.T) {
	uc := taxUseCase(&stubReportRepository{})

	if _, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 0}); err == nil {
		t.Error("expected an error for tax year 0")
	}
}

func TestTaxSummary_FetchFailurePropagates(t *testing.T) {
	uc := taxUseCase(&stubReportRepository{err: errors.New("store unavailable")})

	result, err := uc.Execute(context.Background(), GenerateTaxSummaryInput{UserID: uuid.New(), TaxYear: 2025})
	if err == nil {
		t.Fatal("expected fetch failure to propagate")
	}
	if result != nil {
		t.Error("expected no partial result on fetch failure")
	}
}
