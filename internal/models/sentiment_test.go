package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSentimentType(t *testing.T) {
	tests := []struct {
		input  string
		want   SentimentType
		wantOK bool
	}{
		{"POSITIVE", SentimentPositive, true},
		{"negative", SentimentNegative, true},
		{"Neutral", SentimentNeutral, true},
		{"VERY_HAPPY", SentimentNeutral, false},
		{"", SentimentNeutral, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSentimentType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseEmotionType(t *testing.T) {
	tests := []struct {
		input  string
		want   EmotionType
		wantOK bool
	}{
		{"JOY", EmotionJoy, true},
		{"anticipation", EmotionAnticipation, true},
		{"None", EmotionNone, true},
		{"ECSTASY", EmotionNone, false},
		{"", EmotionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseEmotionType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestScoredEmotions(t *testing.T) {
	scored := ScoredEmotions()

	assert.Len(t, scored, 8)
	assert.NotContains(t, scored, EmotionNone)
}
