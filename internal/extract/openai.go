package extract

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pradnya8113/expenses/internal/category"
	"github.com/pradnya8113/expenses/internal/domain"
	"github.com/pradnya8113/expenses/internal/logger"
)

// DefaultOpenAIModel is the OpenAI model used unless overridden.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAI extracts expense candidates with the OpenAI chat API. Same
// prompt and decode as the Gemini adapter, different transport.
type OpenAI struct {
	client     *openai.Client
	model      string
	categories *category.Registry
}

// NewOpenAI creates an OpenAI-backed extractor. baseURL may be empty
// for the public API, or point at any compatible endpoint.
func NewOpenAI(apiKey, baseURL, model string, categories *category.Registry) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAI{
		client:     openai.NewClientWithConfig(config),
		model:      model,
		categories: categories,
	}
}

// Extract sends the utterance as a single user message and decodes the
// candidate leniently.
func (o *OpenAI) Extract(ctx context.Context, utterance, referenceDate string) (domain.Candidate, error) {
	prompt := buildPrompt(utterance, referenceDate, o.categories.List())

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("OpenAI.Extract: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log := logger.FromContext(ctx)
		log.Warn().Msg("openai returned an empty response, treating as nothing learned")
		return domain.Candidate{}, nil
	}

	return decodeCandidate(resp.Choices[0].Message.Content), nil
}
