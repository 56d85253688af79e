package clients

import (
	"log/slog"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/matpia/sentiment-api/internal/models"
	"github.com/matpia/sentiment-api/internal/utils"
)

// Kafka topic every persisted analysis is announced on.
const KafkaResultsTopic = "sentiment-analysis-results"

// ResultsPublisher publishes persisted analysis records for downstream
// consumers. Publishing is best-effort: a publish failure never fails the
// originating request.
type ResultsPublisher struct {
	producer *kafka.Producer
}

// InitResultsPublisher builds the publisher when KAFKA_BROKER is configured;
// it returns (nil, nil) when publishing is disabled.
func InitResultsPublisher() (*ResultsPublisher, error) {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		slog.Info("[KafkaClient] KAFKA_BROKER not set, result publishing disabled")
		return nil, nil
	}

	slog.Info("[KafkaClient] Connecting to Kafka", slog.String("broker", broker))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   broker,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
	})
	if err != nil {
		return nil, err
	}

	slog.Info("[KafkaClient] Kafka Producer initialized")
	return &ResultsPublisher{producer: p}, nil
}

func (rp *ResultsPublisher) Close() {
	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := rp.producer.Flush(5000); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	rp.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}

// Publish sends one stored analysis record, keyed by record id.
func (rp *ResultsPublisher) Publish(record models.AnalysisRecord) error {
	jsonData, err := utils.SerializeToJSON(record)
	if err != nil {
		return err
	}

	topic := KafkaResultsTopic
	err = rp.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(record.ID),
		Value:          jsonData,
	}, nil)
	if err != nil {
		return err
	}

	slog.Info("[KafkaClient] Published analysis result",
		slog.String("id", record.ID),
		slog.String("sentiment", string(record.Sentiment)))
	return nil
}
