package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/matpia/sentiment-api/internal/apperrors"
	"github.com/matpia/sentiment-api/internal/models"
)

const ANALYSES_TABLE_NAME = "SentimentAnalyses"

// AnalysisStore persists and queries analysis records in DynamoDB.
type AnalysisStore struct {
	client *dynamodb.Client
}

func NewAnalysisStore(client *dynamodb.Client) *AnalysisStore {
	return &AnalysisStore{client: client}
}

// RecordToDynamoDBItem builds the stored item. Optional attributes are
// omitted rather than written empty.
func RecordToDynamoDBItem(record models.AnalysisRecord) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["id"] = &types.AttributeValueMemberS{Value: record.ID}
	item["text"] = &types.AttributeValueMemberS{Value: record.Text}
	item["sentiment"] = &types.AttributeValueMemberS{Value: string(record.Sentiment)}
	item["confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", record.Confidence)}
	item["analysis"] = &types.AttributeValueMemberS{Value: record.Analysis}
	item["primary_emotion"] = &types.AttributeValueMemberS{Value: string(record.PrimaryEmotion)}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", record.CreatedAt)}
	item["api_provider"] = &types.AttributeValueMemberS{Value: record.APIProvider}

	if record.EmotionScores != "" {
		item["emotion_scores"] = &types.AttributeValueMemberS{Value: record.EmotionScores}
	}
	if record.Source != "" {
		item["source"] = &types.AttributeValueMemberS{Value: record.Source}
	}

	return item
}

func (s *AnalysisStore) PutAnalysis(ctx context.Context, record models.AnalysisRecord) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ANALYSES_TABLE_NAME),
		Item:      RecordToDynamoDBItem(record),
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store analysis: %w", err)
	}

	slog.Info("[DynamoDB] Stored analysis result",
		slog.String("id", record.ID),
		slog.String("sentiment", string(record.Sentiment)))
	return nil
}

func (s *AnalysisStore) GetAnalysisByID(ctx context.Context, id string) (models.AnalysisRecord, error) {
	var record models.AnalysisRecord

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(ANALYSES_TABLE_NAME),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return record, fmt.Errorf("[DynamoDB] Failed to fetch analysis: %w", err)
	}
	if out.Item == nil {
		return record, apperrors.NewNotFoundError(fmt.Sprintf("No sentiment analysis found with id %q", id))
	}

	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return record, fmt.Errorf("[DynamoDB] Failed to unmarshal analysis: %w", err)
	}
	return record, nil
}

func (s *AnalysisStore) ListAnalyses(ctx context.Context) ([]models.AnalysisRecord, error) {
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(ANALYSES_TABLE_NAME),
	})
}

func (s *AnalysisStore) ListBySentiment(ctx context.Context, sentiment models.SentimentType) ([]models.AnalysisRecord, error) {
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(ANALYSES_TABLE_NAME),
		FilterExpression: aws.String("#sentiment = :sentiment"),
		ExpressionAttributeNames: map[string]string{
			"#sentiment": "sentiment",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sentiment": &types.AttributeValueMemberS{Value: string(sentiment)},
		},
	})
}

func (s *AnalysisStore) ListByEmotion(ctx context.Context, emotion models.EmotionType) ([]models.AnalysisRecord, error) {
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(ANALYSES_TABLE_NAME),
		FilterExpression: aws.String("#primary_emotion = :emotion"),
		ExpressionAttributeNames: map[string]string{
			"#primary_emotion": "primary_emotion",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":emotion": &types.AttributeValueMemberS{Value: string(emotion)},
		},
	})
}

func (s *AnalysisStore) ListBySentimentAndEmotion(ctx context.Context, sentiment models.SentimentType, emotion models.EmotionType) ([]models.AnalysisRecord, error) {
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(ANALYSES_TABLE_NAME),
		FilterExpression: aws.String("#sentiment = :sentiment AND #primary_emotion = :emotion"),
		ExpressionAttributeNames: map[string]string{
			"#sentiment":       "sentiment",
			"#primary_emotion": "primary_emotion",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sentiment": &types.AttributeValueMemberS{Value: string(sentiment)},
			":emotion":   &types.AttributeValueMemberS{Value: string(emotion)},
		},
	})
}

// ListBySource filters on the caller-supplied source tag. "source" is a
// DynamoDB reserved word, hence the name placeholder.
func (s *AnalysisStore) ListBySource(ctx context.Context, source string) ([]models.AnalysisRecord, error) {
	return s.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(ANALYSES_TABLE_NAME),
		FilterExpression: aws.String("#source = :source"),
		ExpressionAttributeNames: map[string]string{
			"#source": "source",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":source": &types.AttributeValueMemberS{Value: source},
		},
	})
}

// Ping verifies the table is reachable; used by the health monitor.
func (s *AnalysisStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(ANALYSES_TABLE_NAME),
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to describe analyses table: %w", err)
	}
	return nil
}

func (s *AnalysisStore) scan(ctx context.Context, input *dynamodb.ScanInput) ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord

	paginator := dynamodb.NewScanPaginator(s.client, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for analyses failed: %w", err)
		}
		var page []models.AnalysisRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal current analysis page",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved analyses", slog.Int("count", len(records)))
	return records, nil
}
