// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest represents a request to suggest a category for an expense.
type CategorySuggestionRequest struct {
	Description string
	Vendor      string
	Amount      string
	Categories  []string
}

// CategorySuggestionResult represents the suggested category for an expense.
type CategorySuggestionResult struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggester defines the interface for AI-assisted expense categorization.
type CategorySuggester interface {
	// Suggest proposes a tax category for the expense description.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestionResult, error)

	// IsAvailable checks if the suggestion service is available and properly configured.
	IsAvailable() bool
}
