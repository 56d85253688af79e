package providers

import (
	"context"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/clients"
	"github.com/matpia/sentiment-api/internal/models"
	"github.com/matpia/sentiment-api/internal/sentiment"
)

const (
	ProviderOpenAI = "OPENAI"

	defaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIProvider classifies text through the chat completion API using the
// same output contract as the Anthropic provider.
type OpenAIProvider struct {
	client *clients.OpenAIClient
	model  string
}

func NewOpenAIProvider() *OpenAIProvider {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client: clients.GetOpenAIClient(),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	resp, err := p.client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentiment.SystemInstruction()},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		slog.Error("[OpenAIProvider] Completion request failed",
			slog.String("error", err.Error()))
		return models.AnalysisResult{}, apperrors.NewUpstreamError("Failed to get response from OpenAI API", err)
	}
	if len(resp.Choices) == 0 {
		return models.AnalysisResult{}, apperrors.NewUpstreamError("OpenAI reply carried no choices", nil)
	}

	result := sentiment.Normalize(resp.Choices[0].Message.Content)
	result.Text = text
	return result, nil
}
