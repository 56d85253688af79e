package models

import "time"

// AnalysisRequest is one text submitted for classification.
type AnalysisRequest struct {
	Text   string `json:"text" binding:"required,min=1,max=5000"`
	Source string `json:"source,omitempty"`
}

// BatchAnalysisRequest carries up to ten texts analyzed sequentially in
// submission order.
type BatchAnalysisRequest struct {
	Requests []AnalysisRequest `json:"requests" binding:"required,min=1,max=10,dive"`
}

// AnalysisResult is the normalized output of one classification call.
// EmotionScores is nil when the model reply carried no emotionScores object;
// when the object was present the map holds every scored emotion, zero-filled
// for keys the model omitted.
type AnalysisResult struct {
	Text           string                  `json:"text"`
	Sentiment      SentimentType           `json:"sentiment"`
	Confidence     float64                 `json:"confidence"`
	Analysis       string                  `json:"analysis"`
	PrimaryEmotion EmotionType             `json:"primary_emotion"`
	EmotionScores  map[EmotionType]float64 `json:"emotion_scores,omitempty"`
	Timestamp      time.Time               `json:"timestamp"`
}

// BatchSummary aggregates one batch run. It is computed fresh per batch call
// and never persisted.
type BatchSummary struct {
	TotalRequests     int           `json:"total_requests"`
	ProcessedRequests int           `json:"processed_requests"`
	PositiveCount     int           `json:"positive_count"`
	NegativeCount     int           `json:"negative_count"`
	NeutralCount      int           `json:"neutral_count"`
	DominantSentiment SentimentType `json:"dominant_sentiment"`
	DominantEmotion   EmotionType   `json:"dominant_emotion"`
	AverageConfidence float64       `json:"average_confidence"`
}

type BatchAnalysisResponse struct {
	Results   []AnalysisResult `json:"results"`
	Summary   BatchSummary     `json:"summary"`
	Timestamp time.Time        `json:"timestamp"`
}

// AnalysisRecord is the persisted shape of one analysis. EmotionScores is a
// serialized JSON blob so the stored item stays flat.
type AnalysisRecord struct {
	ID             string        `dynamodbav:"id"`
	Text           string        `dynamodbav:"text"`
	Sentiment      SentimentType `dynamodbav:"sentiment"`
	Confidence     float64       `dynamodbav:"confidence"`
	Analysis       string        `dynamodbav:"analysis"`
	PrimaryEmotion EmotionType   `dynamodbav:"primary_emotion"`
	EmotionScores  string        `dynamodbav:"emotion_scores"`
	CreatedAt      int64         `dynamodbav:"created_at"`
	Source         string        `dynamodbav:"source"`
	APIProvider    string        `dynamodbav:"api_provider"`
}

// AnalysisDTO is the API-facing view of a stored analysis.
type AnalysisDTO struct {
	ID             string                  `json:"id"`
	Text           string                  `json:"text"`
	Sentiment      SentimentType           `json:"sentiment"`
	Confidence     float64                 `json:"confidence"`
	Analysis       string                  `json:"analysis"`
	PrimaryEmotion EmotionType             `json:"primary_emotion"`
	EmotionScores  map[EmotionType]float64 `json:"emotion_scores,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	Source         string                  `json:"source,omitempty"`
	APIProvider    string                  `json:"api_provider"`
}
