// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/coliving-manager/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggester interface using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest proposes a tax category for the expense description.
func (s *GeminiService) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp, request.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a bookkeeper for residential rental properties. ")
	sb.WriteString("Classify the expense below into exactly one of the allowed categories.\n\n")

	sb.WriteString("ALLOWED CATEGORIES:\n")
	for _, category := range request.Categories {
		sb.WriteString("- ")
		sb.WriteString(category)
		sb.WriteString("\n")
	}

	sb.WriteString("\nEXPENSE:\n")
	sb.WriteString(fmt.Sprintf("Description: %s\n", request.Description))
	if request.Vendor != "" {
		sb.WriteString(fmt.Sprintf("Vendor: %s\n", request.Vendor))
	}
	if request.Amount != "" {
		sb.WriteString(fmt.Sprintf("Amount: %s\n", request.Amount))
	}

	sb.WriteString(`
Respond with a single JSON object in this exact format:
{"category": "<one of the allowed categories>", "confidence": <0.0 to 1.0>, "reasoning": "<one short sentence>"}

Rules:
- The category MUST be one of the allowed categories, spelled exactly as listed.
- Use "personal" only when the expense is clearly not related to the rental business.
- Confidence below 0.5 means you are mostly guessing.`)

	return sb.String()
}

// geminiSuggestion is the JSON shape Gemini is asked to produce.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse extracts the suggestion from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, allowed []string) (*adapter.CategorySuggestionResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(raw.String()), &suggestion); err != nil {
		return nil, fmt.Errorf("invalid JSON from gemini: %w", err)
	}

	// Reject categories outside the allowed list rather than trusting the model.
	category := strings.ToLower(strings.TrimSpace(suggestion.Category))
	valid := false
	for _, c := range allowed {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("gemini suggested unknown category %q", suggestion.Category)
	}

	if suggestion.Confidence < 0 {
		suggestion.Confidence = 0
	}
	if suggestion.Confidence > 1 {
		suggestion.Confidence = 1
	}

	return &adapter.CategorySuggestionResult{
		Category:   category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}

// Ensure GeminiService implements adapter.CategorySuggester.
var _ adapter.CategorySuggester = (*GeminiService)(nil)
