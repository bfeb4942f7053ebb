package checkout

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/reservecold/storefront/pkg/kafka"
)

// TopicOrderPlaced is the Kafka topic for placed-order events.
const TopicOrderPlaced = "storefront.order.placed"

// Aggregate type constant.
const AggregateTypeOrder = "order"

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	Order Order `json:"order"`
}

// Producer publishes checkout domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for checkout events.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishOrderPlaced publishes an order.placed event keyed by order number.
func (p *Producer) PublishOrderPlaced(ctx context.Context, order *Order) error {
	event, err := pkgkafka.NewEvent(TopicOrderPlaced, order.Number, AggregateTypeOrder, SourceStorefront, OrderPlacedData{Order: *order})
	if err != nil {
		return fmt.Errorf("create order.placed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderPlaced, event); err != nil {
		return fmt.Errorf("publish order.placed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.placed event",
		slog.String("order_number", order.Number),
		slog.Int64("total", order.Total),
	)

	return nil
}
