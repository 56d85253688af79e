package providers

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/clients"
	"github.com/matpia/sentiment-api/internal/models"
	"github.com/matpia/sentiment-api/internal/sentiment"
)

const (
	ProviderAnthropic = "ANTHROPIC"

	defaultAnthropicModel = "claude-3-haiku-20240307"
	defaultMaxTokens      = 1000
)

// AnthropicProvider classifies text through the Anthropic messages API.
type AnthropicProvider struct {
	client    *clients.AnthropicClient
	model     string
	maxTokens int
}

func NewAnthropicProvider() *AnthropicProvider {
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = defaultAnthropicModel
	}

	maxTokens := defaultMaxTokens
	if raw := os.Getenv("ANTHROPIC_MAX_TOKENS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			slog.Warn("[AnthropicProvider] Invalid ANTHROPIC_MAX_TOKENS, using default",
				slog.String("value", raw))
		} else {
			maxTokens = parsed
		}
	}

	return &AnthropicProvider{
		client:    clients.GetAnthropicClient(),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

func (p *AnthropicProvider) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	payload := sentiment.BuildAnalysisRequest(p.model, p.maxTokens, text)

	reply, err := p.client.CreateMessage(ctx, payload)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	if len(reply.Content) == 0 {
		return models.AnalysisResult{}, apperrors.NewUpstreamError("Anthropic reply carried no content blocks", nil)
	}

	result := sentiment.Normalize(reply.Content[0].Text)
	result.Text = text
	return result, nil
}
