package sentiment

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/matpia/sentiment-api/internal/models"
)

const (
	defaultConfidence = 0.5
	defaultAnalysis   = "No analysis provided"

	// fallbackJSON stands in when the reply carries no extractable JSON
	// object; parsing it yields the fully-defaulted result.
	fallbackJSON = `{"sentiment":"NEUTRAL","confidence":0.5,"analysis":"No analysis provided","primaryEmotion":"NONE"}`
)

// rawAnalysis holds the model reply fields before any validation. Every field
// stays raw so one malformed value cannot poison the others.
type rawAnalysis struct {
	Sentiment      json.RawMessage `json:"sentiment"`
	PrimaryEmotion json.RawMessage `json:"primaryEmotion"`
	Confidence     json.RawMessage `json:"confidence"`
	Analysis       json.RawMessage `json:"analysis"`
	EmotionScores  json.RawMessage `json:"emotionScores"`
}

// ExtractJSON slices the first top-level JSON object out of a model reply,
// which often wraps the object in prose or trailing commentary. When no
// bracket pair exists the hardcoded fallback object is returned.
func ExtractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")

	if start >= 0 && end >= 0 && end > start {
		return content[start : end+1]
	}

	return fallbackJSON
}

// Normalize converts an untrusted model reply into a fully-defaulted
// AnalysisResult. It never fails: parse problems degrade to per-field
// defaults, and a warning log is the only trace.
func Normalize(raw string) models.AnalysisResult {
	var fields rawAnalysis
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &fields); err != nil {
		slog.Warn("[Normalizer] Reply is not a JSON object, using defaults",
			slog.String("error", err.Error()))
		fields = rawAnalysis{}
	}

	return models.AnalysisResult{
		Sentiment:      normalizeSentiment(fields.Sentiment),
		PrimaryEmotion: normalizePrimaryEmotion(fields.PrimaryEmotion),
		Confidence:     normalizeConfidence(fields.Confidence),
		Analysis:       normalizeAnalysis(fields.Analysis),
		EmotionScores:  normalizeEmotionScores(fields.EmotionScores),
		Timestamp:      time.Now(),
	}
}

func normalizeSentiment(raw json.RawMessage) models.SentimentType {
	var value string
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return models.SentimentNeutral
	}
	sentiment, ok := models.ParseSentimentType(value)
	if !ok {
		slog.Warn("[Normalizer] Invalid sentiment value received, defaulting to NEUTRAL",
			slog.String("value", value))
	}
	return sentiment
}

func normalizePrimaryEmotion(raw json.RawMessage) models.EmotionType {
	var value string
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return models.EmotionNone
	}
	emotion, ok := models.ParseEmotionType(value)
	if !ok {
		slog.Warn("[Normalizer] Invalid emotion value received, defaulting to NONE",
			slog.String("value", value))
	}
	return emotion
}

func normalizeConfidence(raw json.RawMessage) float64 {
	var value float64
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return defaultConfidence
	}
	// Out-of-range scores pass through unchanged.
	return value
}

func normalizeAnalysis(raw json.RawMessage) string {
	var value string
	if len(raw) == 0 || json.Unmarshal(raw, &value) != nil {
		return defaultAnalysis
	}
	return value
}

// normalizeEmotionScores returns nil unless the reply carried an emotionScores
// object. When it did, every scored emotion gets an entry; keys the model
// omitted or mangled fall back to zero independently. Key lookup is exact:
// the prompt demands uppercase emotion names.
func normalizeEmotionScores(raw json.RawMessage) map[models.EmotionType]float64 {
	if len(raw) == 0 {
		return nil
	}

	var src map[string]json.RawMessage
	if err := json.Unmarshal(raw, &src); err != nil || src == nil {
		return nil
	}

	scores := make(map[models.EmotionType]float64, len(models.ScoredEmotions()))
	for _, emotion := range models.ScoredEmotions() {
		var score float64
		if rawScore, ok := src[string(emotion)]; ok {
			if json.Unmarshal(rawScore, &score) != nil {
				score = 0
			}
		}
		scores[emotion] = score
	}
	return scores
}
