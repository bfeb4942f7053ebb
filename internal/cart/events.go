package cart

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/reservecold/storefront/pkg/kafka"
)

// Kafka topic constants for cart domain events.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
)

// Aggregate type constant.
const AggregateTypeCart = "cart"

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// UpdatedData is the payload for a cart.updated event.
type UpdatedData struct {
	SessionID string  `json:"session_id"`
	Items     []Entry `json:"items"`
	ItemCount int     `json:"item_count"`
	Total     int64   `json:"total"`
}

// ClearedData is the payload for a cart.cleared event.
type ClearedData struct {
	SessionID string `json:"session_id"`
}

// Producer publishes cart domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for cart events.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUpdated publishes a cart.updated event.
func (p *Producer) PublishUpdated(ctx context.Context, sess *Session) error {
	data := UpdatedData{
		SessionID: sess.SessionID,
		Items:     sess.State.Items,
		ItemCount: sess.State.ItemCount,
		Total:     sess.State.Total,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, sess.SessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", sess.SessionID),
		slog.Int("item_count", sess.State.ItemCount),
	)

	return nil
}

// PublishCleared publishes a cart.cleared event.
func (p *Producer) PublishCleared(ctx context.Context, sessionID string) error {
	data := ClearedData{SessionID: sessionID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("session_id", sessionID),
	)

	return nil
}
