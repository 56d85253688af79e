package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matpia/sentiment-api/internal/models"
)

func TestRemoveLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Markdown link keeps anchor text",
			input: "check out [this review](https://example.com/review) today",
			want:  "check out this review today",
		},
		{
			name:  "Bare URL is stripped",
			input: "more at https://example.com/page right here",
			want:  "more at  right here",
		},
		{
			name:  "No links untouched",
			input: "nothing to strip here",
			want:  "nothing to strip here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveLinks(tt.input))
		})
	}
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Heading\n\nSome **bold** text")

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "**")
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "bold")
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  models.SentimentType
	}{
		{0.75, models.SentimentPositive},
		{0.20, models.SentimentPositive},
		{0.19, models.SentimentNeutral},
		{0.0, models.SentimentNeutral},
		{-0.19, models.SentimentNeutral},
		{-0.20, models.SentimentNegative},
		{-0.75, models.SentimentNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelForScore(tt.score), "score %v", tt.score)
	}
}

func TestAnalyzeWithVADER(t *testing.T) {
	score, label := AnalyzeWithVADER("I love this, it is absolutely wonderful and amazing!")
	assert.Greater(t, score, 0.0)
	assert.Equal(t, models.SentimentPositive, label)

	score, label = AnalyzeWithVADER("This is terrible, I hate it so much.")
	assert.Less(t, score, 0.0)
	assert.Equal(t, models.SentimentNegative, label)
}
