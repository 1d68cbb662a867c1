// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

// usefulLifeYears is the straight-line depreciation life for U.S. residential
// rental property.
var usefulLifeYears = decimal.NewFromFloat(27.5)

// ReportFormat selects how much detail a tax summary carries.
type ReportFormat string

const (
	FormatDetailed ReportFormat = "detailed"
	FormatSummary  ReportFormat = "summary"
)

// RecommendationType classifies a tax recommendation.
type RecommendationType string

const (
	RecommendationDeduction     RecommendationType = "deduction"
	RecommendationDocumentation RecommendationType = "documentation"
	RecommendationTiming        RecommendationType = "timing"
	RecommendationStrategy      RecommendationType = "strategy"
)

// RecommendationPriority orders recommendations for presentation.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// GenerateTaxSummaryInput represents the input for a tax summary.
type GenerateTaxSummaryInput struct {
	UserID          uuid.UUID
	PropertyID      *uuid.UUID
	TaxYear         int
	IncludeReceipts bool
	Format          ReportFormat
}

// ReceiptRef points to the receipt backing a deduction entry.
type ReceiptRef struct {
	ExpenseID   uuid.UUID       `json:"expense_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ReceiptURL  string          `json:"receipt_url"`
}

// TaxDeductionCategory is one Schedule E line with its aggregated amounts.
type TaxDeductionCategory struct {
	BusinessCategory string          `json:"business_category"`
	IRSScheduleLine  string          `json:"irs_schedule_line"`
	Deductible       bool            `json:"deductible"`
	Amount           decimal.Decimal `json:"amount"`
	Count            int             `json:"count"`
	ReceiptsCount    int             `json:"receipts_count"`
	Receipts         []ReceiptRef    `json:"receipts,omitempty"`
}

// PropertyDepreciation is the annual straight-line deduction for one property.
type PropertyDepreciation struct {
	PropertyID uuid.UUID       `json:"property_id"`
	Name       string          `json:"name"`
	CostBasis  decimal.Decimal `json:"cost_basis"`
	Annual     decimal.Decimal `json:"annual"`
}

// TaxRecommendation is a generated, never-persisted suggestion.
type TaxRecommendation struct {
	Type             RecommendationType     `json:"type"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Priority         RecommendationPriority `json:"priority"`
	PotentialSavings *decimal.Decimal       `json:"potential_savings,omitempty"`
}

// TaxSummary is the Schedule E oriented view of a tax year.
type TaxSummary struct {
	TaxYear           int                    `json:"tax_year"`
	Period            ReportPeriod           `json:"period"`
	TotalIncome       decimal.Decimal        `json:"total_income"`
	Categories        []TaxDeductionCategory `json:"categories,omitempty"`
	Depreciation      []PropertyDepreciation `json:"depreciation,omitempty"`
	TotalDepreciation decimal.Decimal        `json:"total_depreciation"`
	TotalDeductions   decimal.Decimal        `json:"total_deductions"`
	NetRentalIncome   decimal.Decimal        `json:"net_rental_income"`
	TaxableIncome     decimal.Decimal        `json:"taxable_income"`
	Recommendations   []TaxRecommendation    `json:"recommendations"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// GenerateTaxSummaryUseCase reclassifies a tax year's expenses into Schedule E
// lines, adds depreciation, and emits prioritized recommendations.
type GenerateTaxSummaryUseCase struct {
	reportRepo          ReportRepository
	highIncomeThreshold decimal.Decimal
}

// NewGenerateTaxSummaryUseCase creates a new GenerateTaxSummaryUseCase instance.
func NewGenerateTaxSummaryUseCase(reportRepo ReportRepository, highIncomeThreshold decimal.Decimal) *GenerateTaxSummaryUseCase {
	return &GenerateTaxSummaryUseCase{
		reportRepo:          reportRepo,
		highIncomeThreshold: highIncomeThreshold,
	}
}

// Execute builds the tax summary for the requested calendar year.
func (uc *GenerateTaxSummaryUseCase) Execute(
	ctx context.Context,
	input GenerateTaxSummaryInput,
) (*TaxSummary, error) {
	if input.TaxYear < 1900 || input.TaxYear > 2200 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTaxYear,
			"tax year is invalid",
			domainerror.ErrInvalidTaxYear,
		)
	}
	format := input.Format
	if format == "" {
		format = FormatDetailed
	}
	if format != FormatDetailed && format != FormatSummary {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			"format must be: detailed or summary",
			domainerror.ErrInvalidReportFormat,
		)
	}

	start := time.Date(input.TaxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(input.TaxYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	payments, err := uc.reportRepo.GetPaymentRecords(ctx, input.UserID, input.PropertyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment records: %w", err)
	}
	expenses, err := uc.reportRepo.GetExpenseRecords(ctx, input.UserID, input.PropertyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense records: %w", err)
	}
	properties, err := uc.reportRepo.GetPropertyFacts(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property facts: %w", err)
	}

	agg := Aggregate(payments, expenses, start, end)

	categories := categorizeDeductions(agg.Expenses, input.IncludeReceipts)
	depreciation, totalDepreciation := computeDepreciation(properties)

	totalDeductions := totalDepreciation
	for _, c := range categories {
		if c.Deductible {
			totalDeductions = totalDeductions.Add(c.Amount)
		}
	}

	netRentalIncome := agg.TotalRevenue.Sub(totalDeductions)
	taxableIncome := netRentalIncome
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	summary := &TaxSummary{
		TaxYear:           input.TaxYear,
		Period:            ReportPeriod{StartDate: start, EndDate: end},
		TotalIncome:       agg.TotalRevenue,
		TotalDepreciation: totalDepreciation,
		TotalDeductions:   totalDeductions,
		NetRentalIncome:   netRentalIncome,
		TaxableIncome:     taxableIncome,
		Recommendations:   uc.buildRecommendations(agg, properties, input.TaxYear),
		GeneratedAt:       time.Now().UTC(),
	}

	// Summary format keeps totals and recommendations only.
	if format == FormatDetailed {
		summary.Categories = categories
		summary.Depreciation = depreciation
	}

	return summary, nil
}

// categorizeDeductions groups the filtered expenses by Schedule E line.
func categorizeDeductions(expenses []*entity.Expense, includeReceipts bool) []TaxDeductionCategory {
	groups := make(map[string]*TaxDeductionCategory)
	for _, e := range expenses {
		label := NormalizeCategory(e.Category)
		entry, ok := groups[label]
		if !ok {
			line := LookupIRSScheduleLine(e.Category)
			entry = &TaxDeductionCategory{
				BusinessCategory: label,
				IRSScheduleLine:  line.Line,
				Deductible:       line.Deductible,
				Amount:           decimal.Zero,
			}
			groups[label] = entry
		}
		entry.Amount = entry.Amount.Add(e.Amount)
		entry.Count++
		if e.HasReceipt() {
			entry.ReceiptsCount++
			if includeReceipts {
				entry.Receipts = append(entry.Receipts, ReceiptRef{
					ExpenseID:   e.ID,
					Date:        e.Date,
					Amount:      e.Amount,
					Description: e.Description,
					ReceiptURL:  *e.ReceiptURL,
				})
			}
		}
	}

	categories := make([]TaxDeductionCategory, 0, len(groups))
	for _, entry := range groups {
		categories = append(categories, *entry)
	}
	sort.Slice(categories, func(i, j int) bool {
		cmp := categories[i].Amount.Cmp(categories[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return categories[i].BusinessCategory < categories[j].BusinessCategory
	})

	return categories
}

// computeDepreciation sums annual straight-line depreciation across every
// property with recorded purchase data. Properties without data contribute
// nothing.
func computeDepreciation(properties []PropertyFacts) ([]PropertyDepreciation, decimal.Decimal) {
	lines := make([]PropertyDepreciation, 0, len(properties))
	total := decimal.Zero

	for _, p := range properties {
		if !p.HasDepreciationData() {
			continue
		}
		costBasis := p.PurchasePrice.Sub(*p.LandValue)
		if !costBasis.IsPositive() {
			continue
		}
		annual := costBasis.Div(usefulLifeYears).Round(2)
		lines = append(lines, PropertyDepreciation{
			PropertyID: p.PropertyID,
			Name:       p.Name,
			CostBasis:  costBasis,
			Annual:     annual,
		})
		total = total.Add(annual)
	}

	return lines, total
}

// buildRecommendations runs the independent checks in a fixed order; the
// final list is sorted by priority with insertion order preserved on ties.
func (uc *GenerateTaxSummaryUseCase) buildRecommendations(
	agg Aggregation,
	properties []PropertyFacts,
	taxYear int,
) []TaxRecommendation {
	recs := make([]TaxRecommendation, 0, 4)

	if rec := checkMissingDepreciation(properties); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := checkMissingReceipts(agg.Expenses); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := uc.checkProfessionalAdvice(agg); rec != nil {
		recs = append(recs, *rec)
	}
	if rec := checkExpenseTiming(agg.Expenses, taxYear); rec != nil {
		recs = append(recs, *rec)
	}

	rank := map[RecommendationPriority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(recs, func(i, j int) bool {
		return rank[recs[i].Priority] < rank[recs[j].Priority]
	})

	return recs
}

// checkMissingDepreciation fires when no property carries purchase data.
func checkMissingDepreciation(properties []PropertyFacts) *TaxRecommendation {
	for _, p := range properties {
		if p.HasDepreciationData() {
			return nil
		}
	}
	return &TaxRecommendation{
		Type:     RecommendationDeduction,
		Title:    "Record purchase price and land value",
		Priority: PriorityHigh,
		Description: "No property has a purchase price and land value on file, so " +
			"depreciation cannot be claimed. Straight-line depreciation over 27.5 years " +
			"is usually the largest rental deduction available.",
	}
}

// checkMissingReceipts fires once when any deductible expense lacks a receipt.
func checkMissingReceipts(expenses []*entity.Expense) *TaxRecommendation {
	missing := 0
	var example *entity.Expense
	for _, e := range expenses {
		if !LookupIRSScheduleLine(e.Category).Deductible {
			continue
		}
		if !e.HasReceipt() {
			missing++
			if example == nil {
				example = e
			}
		}
	}
	if missing == 0 {
		return nil
	}
	return &TaxRecommendation{
		Type:     RecommendationDocumentation,
		Title:    "Attach missing receipts",
		Priority: PriorityHigh,
		Description: fmt.Sprintf(
			"%d deductible expense(s) have no receipt attached, e.g. %q on %s. "+
				"Deductions without documentation are at risk in an audit.",
			missing, example.Description, example.Date.Format("2006-01-02"),
		),
	}
}

// checkProfessionalAdvice fires when income exceeds the configured threshold
// and no professional-services expense exists.
func (uc *GenerateTaxSummaryUseCase) checkProfessionalAdvice(agg Aggregation) *TaxRecommendation {
	if agg.TotalRevenue.LessThanOrEqual(uc.highIncomeThreshold) {
		return nil
	}
	for _, e := range agg.Expenses {
		if LookupIRSScheduleLine(e.Category).Line == "Legal and other professional fees" {
			return nil
		}
	}
	return &TaxRecommendation{
		Type:     RecommendationStrategy,
		Title:    "Consider professional tax advice",
		Priority: PriorityMedium,
		Description: "Rental income is above the high-income threshold and no professional " +
			"fees are recorded. A tax professional can often identify deductions and " +
			"structuring opportunities that outweigh their cost.",
	}
}

// checkExpenseTiming fires when every expense lands in the first quarter.
func checkExpenseTiming(expenses []*entity.Expense, taxYear int) *TaxRecommendation {
	if len(expenses) == 0 {
		return nil
	}
	cutoff := time.Date(taxYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range expenses {
		if !e.Date.Before(cutoff) {
			return nil
		}
	}
	return &TaxRecommendation{
		Type:     RecommendationTiming,
		Title:    "Spread deductible purchases across the year",
		Priority: PriorityLow,
		Description: "All expenses fall in the first quarter. Spreading deductible " +
			"purchases toward year-end keeps deductions aligned with income and can " +
			"smooth estimated tax payments.",
	}
}
