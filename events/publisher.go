package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mapyourmemory/memorymap/config"
	"github.com/mapyourmemory/memorymap/models"

	kafka "github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// MemoryCreated is the payload published after a successful ingestion.
// Downstream consumers (notifications, analytics) key on the memory id.
type MemoryCreated struct {
	MemoryID   string   `json:"memory_id"`
	MemoryName string   `json:"memory_name"`
	UserID     string   `json:"user_id"`
	Place      string   `json:"place"`
	Visibility string   `json:"visibility"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	CreatedAt  string   `json:"created_at"`
}

type Publisher interface {
	PublishMemoryCreated(ctx context.Context, record *models.MemoryRecord)
	Close() error
}

// NewPublisher returns a Kafka-backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher(cfg config.KafkaConfig) Publisher {
	if cfg.Brokers == "" || cfg.Topic == "" {
		log.Info("Kafka publisher disabled (missing config)")
		return NoopPublisher{}
	}
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  strings.Split(cfg.Brokers, ","),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	})
	return &KafkaPublisher{writer: w}
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// PublishMemoryCreated is fire-and-forget: ingestion already succeeded, so a
// broker failure is logged and never surfaced to the caller.
func (p *KafkaPublisher) PublishMemoryCreated(ctx context.Context, record *models.MemoryRecord) {
	event := MemoryCreated{
		MemoryID:   record.MemoryID.String(),
		MemoryName: record.MemoryName,
		UserID:     record.UserID,
		Place:      record.Place,
		Visibility: record.Visibility,
		Latitude:   record.Latitude,
		Longitude:  record.Longitude,
		CreatedAt:  record.CreatedAt.Format(time.RFC3339),
	}
	value, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("marshal memory.created event")
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(wctx, kafka.Message{
		Key:   []byte(event.MemoryID),
		Value: value,
	}); err != nil {
		log.WithError(err).WithField("memory_id", event.MemoryID).Error("publish memory.created event")
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) PublishMemoryCreated(context.Context, *models.MemoryRecord) {}

func (NoopPublisher) Close() error { return nil }
