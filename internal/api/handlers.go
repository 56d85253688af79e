package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/models"
)

// SentimentService is the orchestration surface the handlers delegate to.
type SentimentService interface {
	AnalyzeText(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, batch models.BatchAnalysisRequest) (models.BatchAnalysisResponse, error)
	FindAll(ctx context.Context) ([]models.AnalysisDTO, error)
	FindByID(ctx context.Context, id string) (models.AnalysisDTO, error)
	FindBySentiment(ctx context.Context, sentiment models.SentimentType) ([]models.AnalysisDTO, error)
	FindByEmotion(ctx context.Context, emotion models.EmotionType) ([]models.AnalysisDTO, error)
	FindBySentimentAndEmotion(ctx context.Context, sentiment models.SentimentType, emotion models.EmotionType) ([]models.AnalysisDTO, error)
	FindBySource(ctx context.Context, source string) ([]models.AnalysisDTO, error)
}

// ErrorResponse is the client-visible failure envelope.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func analyzeText(service SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidationError("Invalid request parameters", err))
			return
		}

		slog.Info("[API] Received sentiment analysis request",
			slog.Int("text_length", len(req.Text)))

		result, err := service.AnalyzeText(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func analyzeBatch(service SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var batch models.BatchAnalysisRequest
		if err := c.ShouldBindJSON(&batch); err != nil {
			respondError(c, apperrors.NewValidationError("Invalid request parameters", err))
			return
		}

		slog.Info("[API] Received batch sentiment analysis request",
			slog.Int("batch_size", len(batch.Requests)))

		response, err := service.AnalyzeBatch(c.Request.Context(), batch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// history lists stored analyses, optionally filtered through query
// parameters: type, emotion (combinable) or source.
func history(service SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		typeParam := c.Query("type")
		emotionParam := c.Query("emotion")
		sourceParam := c.Query("source")

		var sentimentFilter models.SentimentType
		if typeParam != "" {
			parsed, ok := models.ParseSentimentType(typeParam)
			if !ok {
				respondError(c, apperrors.NewValidationError(
					fmt.Sprintf("Unknown sentiment type %q", typeParam), nil))
				return
			}
			sentimentFilter = parsed
		}

		var emotionFilter models.EmotionType
		if emotionParam != "" {
			parsed, ok := models.ParseEmotionType(emotionParam)
			if !ok {
				respondError(c, apperrors.NewValidationError(
					fmt.Sprintf("Unknown emotion type %q", emotionParam), nil))
				return
			}
			emotionFilter = parsed
		}

		var (
			results []models.AnalysisDTO
			err     error
		)
		ctx := c.Request.Context()
		switch {
		case typeParam != "" && emotionParam != "":
			results, err = service.FindBySentimentAndEmotion(ctx, sentimentFilter, emotionFilter)
		case typeParam != "":
			results, err = service.FindBySentiment(ctx, sentimentFilter)
		case emotionParam != "":
			results, err = service.FindByEmotion(ctx, emotionFilter)
		case sourceParam != "":
			results, err = service.FindBySource(ctx, sourceParam)
		default:
			results, err = service.FindAll(ctx)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

func historyByID(service SentimentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result, err := service.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)

	slog.Error("[API] Request failed",
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", appErr.StatusCode),
		slog.String("error", appErr.Error()))

	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		Timestamp: time.Now(),
		Status:    appErr.StatusCode,
		Error:     statusTitle(appErr.Type),
		Message:   appErr.Message,
		Path:      c.Request.URL.Path,
	})
}

func statusTitle(errorType apperrors.ErrorType) string {
	switch errorType {
	case apperrors.ErrorTypeValidation:
		return "Validation Error"
	case apperrors.ErrorTypeUpstream:
		return "External API Error"
	case apperrors.ErrorTypeNotFound:
		return "Not Found"
	default:
		return "Internal Server Error"
	}
}
