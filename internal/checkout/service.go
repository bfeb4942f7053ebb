package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reservecold/storefront/internal/cart"
	apperrors "github.com/reservecold/storefront/pkg/errors"
)

// DefaultProcessingDelay is the artificial delay simulating payment
// processing before the order confirmation is returned.
const DefaultProcessingDelay = 2 * time.Second

// PlaceOrderInput holds the customer form for placing an order.
type PlaceOrderInput struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=6,max=32"`
	City    string `json:"city" validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"required,min=5,max=500"`
	Comment string `json:"comment" validate:"max=1000"`
}

// Service implements the simulated checkout flow on top of the cart service.
type Service struct {
	carts    *cart.Service
	producer *Producer
	logger   *slog.Logger
	delay    time.Duration
}

// NewService creates a checkout service. A non-positive delay falls back to
// DefaultProcessingDelay.
func NewService(carts *cart.Service, producer *Producer, logger *slog.Logger, delay time.Duration) *Service {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &Service{
		carts:    carts,
		producer: producer,
		logger:   logger,
		delay:    delay,
	}
}

// PlaceOrder runs the simulated checkout for the session's cart: it
// snapshots the cart, waits the processing delay, clears the cart, and
// returns the order confirmation. An empty cart cannot be checked out. The
// delay respects context cancellation so an abandoned request does not
// clear the cart.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*Order, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	sess, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart for checkout: %w", err)
	}
	if len(sess.State.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	order := &Order{
		Number:    NewOrderNumber(),
		SessionID: sessionID,
		Customer: Customer{
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			City:    input.City,
			Address: input.Address,
			Comment: input.Comment,
		},
		Items:     sess.State.Items,
		ItemCount: sess.State.ItemCount,
		Total:     sess.State.Total,
		PlacedAt:  time.Now().UTC(),
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}

	if err := s.producer.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.Number),
		slog.String("session_id", sessionID),
		slog.Int("item_count", order.ItemCount),
		slog.Int64("total", order.Total),
	)

	return order, nil
}
