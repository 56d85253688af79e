package providers

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/matpia/sentiment-api/internal/models"
	"github.com/matpia/sentiment-api/internal/sentiment"
)

const ProviderVADER = "VADER"

// VADERProvider scores text with the local VADER lexicon. It needs no API
// key, which makes it the fallback for offline or keyless environments. The
// lexicon has no emotion model, so the primary emotion is always NONE and no
// score map is attached.
type VADERProvider struct{}

func NewVADERProvider() *VADERProvider {
	return &VADERProvider{}
}

func (p *VADERProvider) Name() string {
	return ProviderVADER
}

func (p *VADERProvider) Analyze(_ context.Context, text string) (models.AnalysisResult, error) {
	score, label := sentiment.AnalyzeWithVADER(text)

	return models.AnalysisResult{
		Text:           text,
		Sentiment:      label,
		Confidence:     math.Abs(score),
		Analysis:       fmt.Sprintf("VADER compound score %.4f", score),
		PrimaryEmotion: models.EmotionNone,
		Timestamp:      time.Now(),
	}, nil
}
