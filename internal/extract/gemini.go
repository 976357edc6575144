// Package extract converts a raw utterance into a partial expense
// candidate using an LLM. One adapter exists per backing provider; all
// of them share the prompt and the lenient JSON decode, so the dialogue
// layer never sees provider differences.
package extract

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/pradnya8113/expenses/internal/category"
	"github.com/pradnya8113/expenses/internal/domain"
	"github.com/pradnya8113/expenses/internal/logger"
)

// DefaultGeminiModel is the Gemini model used unless overridden.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini extracts expense candidates with the Gemini API.
type Gemini struct {
	client     *genai.Client
	model      string
	categories *category.Registry
}

// NewGemini creates a Gemini-backed extractor. Credentials come from
// the environment (GEMINI_API_KEY / GOOGLE_API_KEY), the same way the
// genai client is configured everywhere else.
func NewGemini(ctx context.Context, model string, categories *category.Registry) (*Gemini, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGemini: create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, categories: categories}, nil
}

// Extract sends the utterance to Gemini and decodes the candidate. A
// malformed model response yields an empty candidate, not an error;
// only transport-level failures are returned.
func (g *Gemini) Extract(ctx context.Context, utterance, referenceDate string) (domain.Candidate, error) {
	prompt := buildPrompt(utterance, referenceDate, g.categories.List())

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("Gemini.Extract: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		log := logger.FromContext(ctx)
		log.Warn().Msg("gemini returned an empty response, treating as nothing learned")
		return domain.Candidate{}, nil
	}

	return decodeCandidate(rawText), nil
}
