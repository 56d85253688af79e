package sentiment

import "github.com/matpia/sentiment-api/internal/models"

// systemInstruction spells out the closed vocabularies, the numeric ranges,
// and the exact JSON field names the model must emit. The normalizer depends
// on those field names, so keep both in sync.
const systemInstruction = `You are a sentiment and emotion analysis expert. Analyze the text and provide:
1. Overall sentiment (POSITIVE, NEGATIVE, or NEUTRAL)
2. Primary emotion (choose one: JOY, SADNESS, ANGER, FEAR, SURPRISE, DISGUST, TRUST, ANTICIPATION, or NONE)
3. Emotion scores - rate each emotion (JOY, SADNESS, ANGER, FEAR, SURPRISE, DISGUST, TRUST, ANTICIPATION) from 0-1
4. Confidence score for overall sentiment (0-1)
5. Brief analysis explaining the emotional tone

Format response as JSON with fields: sentiment, primaryEmotion, emotionScores, confidence, analysis.`

// SystemInstruction returns the classification contract shared by every
// provider that prompts a model.
func SystemInstruction() string {
	return systemInstruction
}

// BuildAnalysisRequest constructs the outbound Anthropic payload for one
// text. Each call is stateless: a single user turn, no chat history.
func BuildAnalysisRequest(model string, maxTokens int, text string) models.AnthropicRequest {
	return models.AnthropicRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemInstruction,
		Messages: []models.AnthropicMessage{
			{Role: "user", Content: text},
		},
	}
}
