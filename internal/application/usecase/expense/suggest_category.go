package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/application/usecase/report"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for an expense category suggestion.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Description string
	Vendor      string
	Amount      string
}

// SuggestCategoryOutput represents the suggested expense category.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the AI service for a tax category matching an
// expense description. Suggestions are constrained to the categories the
// Schedule E mapping knows.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{suggester: suggester}
}

// Execute requests a category suggestion for the expense.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !uc.suggester.IsAvailable() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion unavailable",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	result, err := uc.suggester.Suggest(ctx, adapter.CategorySuggestionRequest{
		Description: input.Description,
		Vendor:      input.Vendor,
		Amount:      input.Amount,
		Categories:  report.KnownCategories(),
	})
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion failed",
			err,
		)
	}

	return &SuggestCategoryOutput{
		Category:   report.NormalizeCategory(result.Category),
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}, nil
}
