// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import "sort"

// IRSScheduleLine describes how a business expense category is reported on
// Schedule E for residential rental property.
type IRSScheduleLine struct {
	Line       string
	Deductible bool
}

// OtherExpensesLine is the catch-all Schedule E line for categories the static
// table does not know.
const OtherExpensesLine = "Other expenses"

// irsScheduleLines is the single static mapping from internal expense
// categories to Schedule E lines, shared by every reporting entry point.
// Keys are normalized (lower-case) categories.
var irsScheduleLines = map[string]IRSScheduleLine{
	"advertising":  {Line: "Advertising", Deductible: true},
	"cleaning":     {Line: "Cleaning and maintenance", Deductible: true},
	"maintenance":  {Line: "Repairs and maintenance", Deductible: true},
	"repairs":      {Line: "Repairs and maintenance", Deductible: true},
	"utilities":    {Line: "Utilities", Deductible: true},
	"insurance":    {Line: "Insurance", Deductible: true},
	"professional": {Line: "Legal and other professional fees", Deductible: true},
	"legal":        {Line: "Legal and other professional fees", Deductible: true},
	"accounting":   {Line: "Legal and other professional fees", Deductible: true},
	"management":   {Line: "Management fees", Deductible: true},
	"mortgage":     {Line: "Mortgage interest", Deductible: true},
	"interest":     {Line: "Mortgage interest", Deductible: true},
	"supplies":     {Line: "Supplies", Deductible: true},
	"taxes":        {Line: "Taxes", Deductible: true},
	"property_tax": {Line: "Taxes", Deductible: true},
	"travel":       {Line: "Auto and travel", Deductible: true},
	"commissions":  {Line: "Commissions", Deductible: true},
	"personal":     {Line: OtherExpensesLine, Deductible: false},
}

// LookupIRSScheduleLine maps a free-form expense category to its Schedule E
// line. The mapping is total: unknown categories land on "Other expenses" and
// stay deductible as ordinary operating costs.
func LookupIRSScheduleLine(category string) IRSScheduleLine {
	if line, ok := irsScheduleLines[NormalizeCategory(category)]; ok {
		return line
	}
	return IRSScheduleLine{Line: OtherExpensesLine, Deductible: true}
}

// KnownCategories returns the sorted list of categories the Schedule E
// mapping recognizes.
func KnownCategories() []string {
	categories := make([]string, 0, len(irsScheduleLines))
	for category := range irsScheduleLines {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
