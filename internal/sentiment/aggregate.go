package sentiment

import "github.com/matpia/sentiment-api/internal/models"

// Aggregate computes summary statistics over already-normalized results in a
// single pass. totalSubmitted is the batch input size, which can exceed the
// number of processed items.
//
// Dominant values are picked by a strictly-greater max scan over the count
// maps: on tied counts the winner is whichever entry the map scan surfaces
// first, so ties are not deterministic. An empty input yields all-zero counts
// with the NEUTRAL/NONE defaults.
func Aggregate(results []models.AnalysisResult, totalSubmitted int) models.BatchSummary {
	summary := models.BatchSummary{
		TotalRequests:     totalSubmitted,
		ProcessedRequests: len(results),
		DominantSentiment: models.SentimentNeutral,
		DominantEmotion:   models.EmotionNone,
	}

	sentimentCounts := make(map[models.SentimentType]int)
	emotionCounts := make(map[models.EmotionType]int)
	var totalConfidence float64

	for _, result := range results {
		switch result.Sentiment {
		case models.SentimentPositive:
			summary.PositiveCount++
		case models.SentimentNegative:
			summary.NegativeCount++
		case models.SentimentNeutral:
			summary.NeutralCount++
		}

		sentimentCounts[result.Sentiment]++
		emotionCounts[result.PrimaryEmotion]++
		totalConfidence += result.Confidence
	}

	best := 0
	for sentiment, count := range sentimentCounts {
		if count > best {
			best = count
			summary.DominantSentiment = sentiment
		}
	}

	best = 0
	for emotion, count := range emotionCounts {
		if count > best {
			best = count
			summary.DominantEmotion = emotion
		}
	}

	if summary.ProcessedRequests > 0 {
		summary.AverageConfidence = totalConfidence / float64(summary.ProcessedRequests)
	}

	return summary
}
