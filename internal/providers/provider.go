package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/matpia/sentiment-api/internal/models"
)

// Provider produces one normalized analysis per input text. Implementations
// must return results whose sentiment and primary emotion are members of the
// closed vocabularies; malformed provider output is a normalization concern,
// not an error.
type Provider interface {
	// Analyze classifies text. The only errors it may return are upstream
	// failures from the external service.
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
	// Name is the api_provider constant stamped on stored records.
	Name() string
}

// ForName returns the provider selected by the SENTIMENT_PROVIDER
// environment value. An empty name selects Anthropic.
func ForName(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "anthropic":
		return NewAnthropicProvider(), nil
	case "openai":
		return NewOpenAIProvider(), nil
	case "vader":
		return NewVADERProvider(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", name)
	}
}
