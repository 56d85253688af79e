package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matpia/sentiment-api/internal/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Bare JSON object",
			content: `{"sentiment":"POSITIVE"}`,
			want:    `{"sentiment":"POSITIVE"}`,
		},
		{
			name:    "Object wrapped in prose",
			content: `Here is my answer: {"sentiment":"NEGATIVE","confidence":0.87} Hope that helps!`,
			want:    `{"sentiment":"NEGATIVE","confidence":0.87}`,
		},
		{
			name:    "No braces falls back to defaults",
			content: "I cannot analyze that text.",
			want:    fallbackJSON,
		},
		{
			name:    "Closing brace before opening brace",
			content: "} nothing useful {",
			want:    fallbackJSON,
		},
		{
			name:    "Empty reply",
			content: "",
			want:    fallbackJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.content))
		})
	}
}

func TestNormalize_WellFormedReply(t *testing.T) {
	reply := `Here is my analysis: {
		"sentiment": "negative",
		"primaryEmotion": "ANGER",
		"confidence": 0.87,
		"analysis": "Strongly negative wording throughout.",
		"emotionScores": {"ANGER": 0.9, "SADNESS": 0.4}
	}`

	result := Normalize(reply)

	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.Equal(t, models.EmotionAnger, result.PrimaryEmotion)
	assert.Equal(t, 0.87, result.Confidence)
	assert.Equal(t, "Strongly negative wording throughout.", result.Analysis)
	assert.False(t, result.Timestamp.IsZero())

	require.Len(t, result.EmotionScores, len(models.ScoredEmotions()))
	assert.Equal(t, 0.9, result.EmotionScores[models.EmotionAnger])
	assert.Equal(t, 0.4, result.EmotionScores[models.EmotionSadness])
	assert.Zero(t, result.EmotionScores[models.EmotionJoy])
	assert.NotContains(t, result.EmotionScores, models.EmotionNone)
}

func TestNormalize_UnparseableReply(t *testing.T) {
	result := Normalize("The model refused to answer.")

	assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	assert.Equal(t, models.EmotionNone, result.PrimaryEmotion)
	assert.Equal(t, defaultConfidence, result.Confidence)
	assert.Equal(t, defaultAnalysis, result.Analysis)
	assert.Nil(t, result.EmotionScores)
}

func TestNormalize_FieldDefaults(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		check func(t *testing.T, result models.AnalysisResult)
	}{
		{
			name:  "Unknown sentiment defaults to NEUTRAL",
			reply: `{"sentiment":"VERY_HAPPY","confidence":0.9}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, models.SentimentNeutral, result.Sentiment)
				assert.Equal(t, 0.9, result.Confidence)
			},
		},
		{
			name:  "Unknown emotion defaults to NONE",
			reply: `{"sentiment":"POSITIVE","primaryEmotion":"ECSTASY"}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, models.SentimentPositive, result.Sentiment)
				assert.Equal(t, models.EmotionNone, result.PrimaryEmotion)
			},
		},
		{
			name:  "Lowercase enums are accepted",
			reply: `{"sentiment":"positive","primaryEmotion":"joy"}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, models.SentimentPositive, result.Sentiment)
				assert.Equal(t, models.EmotionJoy, result.PrimaryEmotion)
			},
		},
		{
			name:  "Non-numeric confidence defaults without touching other fields",
			reply: `{"sentiment":"POSITIVE","confidence":"high","analysis":"Upbeat."}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, models.SentimentPositive, result.Sentiment)
				assert.Equal(t, defaultConfidence, result.Confidence)
				assert.Equal(t, "Upbeat.", result.Analysis)
			},
		},
		{
			name:  "Out-of-range confidence passes through unclamped",
			reply: `{"confidence":3.2}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, 3.2, result.Confidence)
			},
		},
		{
			name:  "Non-string analysis defaults",
			reply: `{"analysis":42}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Equal(t, defaultAnalysis, result.Analysis)
			},
		},
		{
			name:  "Missing emotionScores yields nil map",
			reply: `{"sentiment":"POSITIVE"}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Nil(t, result.EmotionScores)
			},
		},
		{
			name:  "Null emotionScores yields nil map",
			reply: `{"emotionScores":null}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Nil(t, result.EmotionScores)
			},
		},
		{
			name:  "Non-object emotionScores yields nil map",
			reply: `{"emotionScores":[0.1,0.2]}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				assert.Nil(t, result.EmotionScores)
			},
		},
		{
			name:  "Empty emotionScores object zero-fills every emotion",
			reply: `{"emotionScores":{}}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				require.Len(t, result.EmotionScores, len(models.ScoredEmotions()))
				for _, emotion := range models.ScoredEmotions() {
					assert.Zero(t, result.EmotionScores[emotion])
				}
			},
		},
		{
			name:  "Non-numeric score entry falls back to zero independently",
			reply: `{"emotionScores":{"JOY":"lots","TRUST":0.6}}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				require.Len(t, result.EmotionScores, len(models.ScoredEmotions()))
				assert.Zero(t, result.EmotionScores[models.EmotionJoy])
				assert.Equal(t, 0.6, result.EmotionScores[models.EmotionTrust])
			},
		},
		{
			name:  "Unknown score keys are dropped",
			reply: `{"emotionScores":{"EUPHORIA":0.8,"JOY":0.3}}`,
			check: func(t *testing.T, result models.AnalysisResult) {
				require.Len(t, result.EmotionScores, len(models.ScoredEmotions()))
				assert.Equal(t, 0.3, result.EmotionScores[models.EmotionJoy])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Normalize(tt.reply))
		})
	}
}
