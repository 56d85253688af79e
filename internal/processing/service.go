package processing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/models"
	"github.com/matpia/sentiment-api/internal/providers"
	"github.com/matpia/sentiment-api/internal/sentiment"
	"github.com/matpia/sentiment-api/internal/utils"
)

// Store is the persistence surface the service depends on.
type Store interface {
	PutAnalysis(ctx context.Context, record models.AnalysisRecord) error
	GetAnalysisByID(ctx context.Context, id string) (models.AnalysisRecord, error)
	ListAnalyses(ctx context.Context) ([]models.AnalysisRecord, error)
	ListBySentiment(ctx context.Context, sentiment models.SentimentType) ([]models.AnalysisRecord, error)
	ListByEmotion(ctx context.Context, emotion models.EmotionType) ([]models.AnalysisRecord, error)
	ListBySentimentAndEmotion(ctx context.Context, sentiment models.SentimentType, emotion models.EmotionType) ([]models.AnalysisRecord, error)
	ListBySource(ctx context.Context, source string) ([]models.AnalysisRecord, error)
}

// Publisher announces persisted records to downstream consumers.
type Publisher interface {
	Publish(record models.AnalysisRecord) error
}

// Service orchestrates one analysis: provider call, persistence, optional
// publish. Each request is handled synchronously with no shared mutable
// state, so a single Service serves concurrent requests.
type Service struct {
	provider  providers.Provider
	store     Store
	publisher Publisher
}

// NewService wires the orchestrator. publisher may be nil, which disables
// result publishing.
func NewService(provider providers.Provider, store Store, publisher Publisher) *Service {
	return &Service{
		provider:  provider,
		store:     store,
		publisher: publisher,
	}
}

// AnalyzeText classifies one text and persists the outcome. Analysis and
// storage succeed or fail together; a publish failure is logged but does not
// fail the request.
func (s *Service) AnalyzeText(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	slog.Info("[SentimentService] Analyzing text",
		slog.String("provider", s.provider.Name()),
		slog.Int("text_length", len(req.Text)))

	result, err := s.provider.Analyze(ctx, req.Text)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	record := recordFromResult(result, req.Source, s.provider.Name())
	if err := s.store.PutAnalysis(ctx, record); err != nil {
		return models.AnalysisResult{}, apperrors.NewInternalError("Failed to persist analysis result", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(record); err != nil {
			slog.Warn("[SentimentService] Failed to publish analysis result",
				slog.String("id", record.ID),
				slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// AnalyzeBatch processes the batch sequentially in submission order, one
// upstream call per text. A failure on any item aborts the whole batch;
// items analyzed before the failure stay persisted.
func (s *Service) AnalyzeBatch(ctx context.Context, batch models.BatchAnalysisRequest) (models.BatchAnalysisResponse, error) {
	slog.Info("[SentimentService] Processing batch analysis",
		slog.Int("batch_size", len(batch.Requests)))

	results := make([]models.AnalysisResult, 0, len(batch.Requests))
	for _, req := range batch.Requests {
		result, err := s.AnalyzeText(ctx, req)
		if err != nil {
			return models.BatchAnalysisResponse{}, err
		}
		results = append(results, result)
	}

	summary := sentiment.Aggregate(results, len(batch.Requests))

	slog.Info("[SentimentService] Completed batch analysis",
		slog.String("dominant_sentiment", string(summary.DominantSentiment)),
		slog.String("dominant_emotion", string(summary.DominantEmotion)))

	return models.BatchAnalysisResponse{
		Results:   results,
		Summary:   summary,
		Timestamp: time.Now(),
	}, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (models.AnalysisDTO, error) {
	record, err := s.store.GetAnalysisByID(ctx, id)
	if err != nil {
		return models.AnalysisDTO{}, err
	}
	return dtoFromRecord(record), nil
}

func (s *Service) FindAll(ctx context.Context) ([]models.AnalysisDTO, error) {
	records, err := s.store.ListAnalyses(ctx)
	if err != nil {
		return nil, err
	}
	return dtosFromRecords(records), nil
}

func (s *Service) FindBySentiment(ctx context.Context, sentiment models.SentimentType) ([]models.AnalysisDTO, error) {
	records, err := s.store.ListBySentiment(ctx, sentiment)
	if err != nil {
		return nil, err
	}
	return dtosFromRecords(records), nil
}

func (s *Service) FindByEmotion(ctx context.Context, emotion models.EmotionType) ([]models.AnalysisDTO, error) {
	records, err := s.store.ListByEmotion(ctx, emotion)
	if err != nil {
		return nil, err
	}
	return dtosFromRecords(records), nil
}

func (s *Service) FindBySentimentAndEmotion(ctx context.Context, sentiment models.SentimentType, emotion models.EmotionType) ([]models.AnalysisDTO, error) {
	records, err := s.store.ListBySentimentAndEmotion(ctx, sentiment, emotion)
	if err != nil {
		return nil, err
	}
	return dtosFromRecords(records), nil
}

func (s *Service) FindBySource(ctx context.Context, source string) ([]models.AnalysisDTO, error) {
	records, err := s.store.ListBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	return dtosFromRecords(records), nil
}

func recordFromResult(result models.AnalysisResult, source, provider string) models.AnalysisRecord {
	var blob string
	if result.EmotionScores != nil {
		if data, err := utils.SerializeToJSON(result.EmotionScores); err == nil {
			blob = string(data)
		}
	}

	return models.AnalysisRecord{
		ID:             uuid.NewString(),
		Text:           result.Text,
		Sentiment:      result.Sentiment,
		Confidence:     result.Confidence,
		Analysis:       result.Analysis,
		PrimaryEmotion: result.PrimaryEmotion,
		EmotionScores:  blob,
		CreatedAt:      result.Timestamp.Unix(),
		Source:         source,
		APIProvider:    provider,
	}
}

// dtoFromRecord hydrates the stored emotion blob back into a typed map.
// Unknown emotion keys in stored data are skipped with a warning rather than
// failing the read.
func dtoFromRecord(record models.AnalysisRecord) models.AnalysisDTO {
	var scores map[models.EmotionType]float64

	if record.EmotionScores != "" {
		var rawScores map[string]float64
		if err := utils.DeserializeFromJSON([]byte(record.EmotionScores), &rawScores); err != nil {
			slog.Error("[SentimentService] Failed to parse stored emotion scores",
				slog.String("id", record.ID),
				slog.String("error", err.Error()))
		} else {
			scores = make(map[models.EmotionType]float64, len(rawScores))
			for key, value := range rawScores {
				emotion, ok := models.ParseEmotionType(key)
				if !ok {
					slog.Warn("[SentimentService] Unknown emotion type in stored data",
						slog.String("emotion", key))
					continue
				}
				scores[emotion] = value
			}
		}
	}

	return models.AnalysisDTO{
		ID:             record.ID,
		Text:           record.Text,
		Sentiment:      record.Sentiment,
		Confidence:     record.Confidence,
		Analysis:       record.Analysis,
		PrimaryEmotion: record.PrimaryEmotion,
		EmotionScores:  scores,
		CreatedAt:      time.Unix(record.CreatedAt, 0).UTC(),
		Source:         record.Source,
		APIProvider:    record.APIProvider,
	}
}

func dtosFromRecords(records []models.AnalysisRecord) []models.AnalysisDTO {
	dtos := make([]models.AnalysisDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, dtoFromRecord(record))
	}
	return dtos
}
