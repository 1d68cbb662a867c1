// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coliving-manager/backend/internal/domain/entity"
)

// UncategorizedLabel is the bucket label for expenses with no category.
const UncategorizedLabel = "uncategorized"

// BreakdownEntry represents a single group in a category or payment-method
// breakdown.
type BreakdownEntry struct {
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// Aggregation is the single-pass reduction of a period's payment and expense
// records. It carries the filtered record sets so the cash-flow analyzer and
// tax categorizer can consume them without refetching.
type Aggregation struct {
	TotalRevenue  decimal.Decimal
	RentRevenue   decimal.Decimal
	OtherRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
	ProfitMargin  float64
	PaymentCount  int
	ExpenseCount  int

	CategoryBreakdown []BreakdownEntry
	MethodBreakdown   []BreakdownEntry

	// Filtered working sets: completed payments and all expenses inside the window.
	Payments []*entity.Payment
	Expenses []*entity.Expense
}

// Aggregate filters the given records to the [start, end] window and reduces
// them into totals and breakdowns. Income counts only completed payments.
// When total revenue is zero the profit margin is zero by convention, even if
// expenses produce a negative net income.
func Aggregate(payments []*entity.Payment, expenses []*entity.Expense, start, end time.Time) Aggregation {
	agg := Aggregation{
		TotalRevenue:  decimal.Zero,
		RentRevenue:   decimal.Zero,
		OtherRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, p := range payments {
		if p.Status != entity.PaymentStatusCompleted {
			continue
		}
		if !inWindow(p.Date, start, end) {
			continue
		}
		agg.Payments = append(agg.Payments, p)
		agg.TotalRevenue = agg.TotalRevenue.Add(p.Amount)
		if p.Type == entity.PaymentTypeRent {
			agg.RentRevenue = agg.RentRevenue.Add(p.Amount)
		} else {
			agg.OtherRevenue = agg.OtherRevenue.Add(p.Amount)
		}
	}
	agg.PaymentCount = len(agg.Payments)

	for _, e := range expenses {
		if !inWindow(e.Date, start, end) {
			continue
		}
		agg.Expenses = append(agg.Expenses, e)
		agg.TotalExpenses = agg.TotalExpenses.Add(e.Amount)
	}
	agg.ExpenseCount = len(agg.Expenses)

	agg.NetIncome = agg.TotalRevenue.Sub(agg.TotalExpenses)
	if agg.TotalRevenue.IsPositive() {
		margin := agg.NetIncome.Mul(decimal.NewFromInt(100)).Div(agg.TotalRevenue)
		agg.ProfitMargin, _ = margin.Round(2).Float64()
	}

	agg.CategoryBreakdown = expenseBreakdown(agg.Expenses, agg.TotalExpenses)
	agg.MethodBreakdown = methodBreakdown(agg.Payments, agg.TotalRevenue)

	return agg
}

// NormalizeCategory lower-cases and trims a free-form expense category,
// mapping the empty string to the uncategorized bucket.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return UncategorizedLabel
	}
	return c
}

// expenseBreakdown groups expenses by normalized category. An empty breakdown
// is returned when the total is zero so percentages never divide by zero.
func expenseBreakdown(expenses []*entity.Expense, total decimal.Decimal) []BreakdownEntry {
	if total.IsZero() {
		return []BreakdownEntry{}
	}

	groups := make(map[string]*BreakdownEntry)
	for _, e := range expenses {
		label := NormalizeCategory(e.Category)
		entry, ok := groups[label]
		if !ok {
			entry = &BreakdownEntry{Label: label, Amount: decimal.Zero}
			groups[label] = entry
		}
		entry.Amount = entry.Amount.Add(e.Amount)
		entry.Count++
	}

	return finishBreakdown(groups, total)
}

// methodBreakdown groups completed payments by payment method. An empty
// breakdown is returned when the total is zero.
func methodBreakdown(payments []*entity.Payment, total decimal.Decimal) []BreakdownEntry {
	if total.IsZero() {
		return []BreakdownEntry{}
	}

	groups := make(map[string]*BreakdownEntry)
	for _, p := range payments {
		label := string(p.Method)
		if label == "" {
			label = string(entity.PaymentMethodOther)
		}
		entry, ok := groups[label]
		if !ok {
			entry = &BreakdownEntry{Label: label, Amount: decimal.Zero}
			groups[label] = entry
		}
		entry.Amount = entry.Amount.Add(p.Amount)
		entry.Count++
	}

	return finishBreakdown(groups, total)
}

// finishBreakdown computes percentages and orders entries by amount
// descending, label ascending on ties, for deterministic output.
func finishBreakdown(groups map[string]*BreakdownEntry, total decimal.Decimal) []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(groups))
	for _, entry := range groups {
		pct := entry.Amount.Mul(decimal.NewFromInt(100)).Div(total)
		entry.Percentage, _ = pct.Round(2).Float64()
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].Amount.Cmp(entries[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].Label < entries[j].Label
	})

	return entries
}
