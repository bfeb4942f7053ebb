package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/reservecold/storefront/internal/catalog"
	apperrors "github.com/reservecold/storefront/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse. The state transitions
// themselves are total; these guards live at the service boundary only.
const (
	// MaxQuantityPerItem is the maximum quantity allowed for a single cart entry.
	MaxQuantityPerItem = 99
	// MaxItemsPerCart is the maximum number of distinct entries allowed in a cart.
	MaxItemsPerCart = 50
)

// Service implements the business logic for cart operations. Product
// snapshots are taken from the catalog at add time, so clients send only
// product ids and cannot tamper with prices.
type Service struct {
	repo     Repository
	catalog  *catalog.Catalog
	producer *Producer
	logger   *slog.Logger
	ttl      time.Duration
}

// NewService creates a new cart service.
func NewService(repo Repository, cat *catalog.Catalog, producer *Producer, logger *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:     repo,
		catalog:  cat,
		producer: producer,
		logger:   logger,
		ttl:      ttl,
	}
}

// Get retrieves the cart for a session. If no cart exists, returns an empty one.
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptySession(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return sess, nil
}

// AddItem adds one unit of a catalog product to the session's cart. Adding
// a product already in the cart increments its quantity and keeps the
// originally stored snapshot.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, apperrors.NotFound("product", productID)
	}

	sess, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.State.IsInCart(productID) && len(sess.State.Items) >= MaxItemsPerCart {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d items", MaxItemsPerCart))
	}
	if sess.State.QuantityOf(productID) >= MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	cmd := Add{Product: ProductSnapshot{
		ID:       product.ID,
		SKU:      product.SKU,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
		Volume:   product.Volume,
	}}

	sess, err = s.saveTransition(ctx, sess, cmd)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Int("quantity", sess.State.QuantityOf(productID)),
	)

	return sess, nil
}

// SetQuantity sets the quantity of a cart entry to an absolute value. A
// non-positive quantity removes the entry. Setting the quantity of a
// product not in the cart changes nothing and is not an error.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	sess, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.State.IsInCart(productID) {
		return sess, nil
	}

	sess, err = s.saveTransition(ctx, sess, SetQuantity{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return sess, nil
}

// RemoveItem removes an entry from the cart. Removing a product not in the
// cart changes nothing and is not an error.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	sess, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.State.IsInCart(productID) {
		return sess, nil
	}

	sess, err = s.saveTransition(ctx, sess, Remove{ProductID: productID})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return sess, nil
}

// Clear removes the session's cart entirely.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// Merge folds entries from another cart into the session's cart:
// quantities combine for shared product ids, unknown ids append. Used to
// fold a guest cart into the account cart after sign-in. Entries with
// non-positive quantities are dropped and combined quantities are capped
// at MaxQuantityPerItem.
func (s *Service) Merge(ctx context.Context, sessionID string, items []Entry) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	sess, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items = capQuantities(sess.State, items)

	merged := Apply(sess.State, Merge{Items: items})
	if len(merged.Items) > MaxItemsPerCart {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d items", MaxItemsPerCart))
	}

	sess, err = s.saveTransition(ctx, sess, Merge{Items: items})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart merged",
		slog.String("session_id", sessionID),
		slog.Int("incoming_items", len(items)),
		slog.Int("item_count", sess.State.ItemCount),
	)

	return sess, nil
}

// capQuantities clamps incoming merge entries so no combined quantity can
// exceed MaxQuantityPerItem. Entries with no room left are dropped. Handles
// duplicate product ids in the incoming list.
func capQuantities(s State, items []Entry) []Entry {
	capped := make([]Entry, 0, len(items))
	total := make(map[string]int, len(items))
	for _, e := range items {
		if e.Quantity < 1 {
			continue
		}
		id := e.Product.ID
		if _, ok := total[id]; !ok {
			total[id] = s.QuantityOf(id)
		}
		room := MaxQuantityPerItem - total[id]
		if room <= 0 {
			continue
		}
		if e.Quantity > room {
			e.Quantity = room
		}
		total[id] += e.Quantity
		capped = append(capped, e)
	}
	return capped
}

// saveTransition applies the command, persists the result with optimistic
// locking, and publishes the updated event. Publish failures are logged,
// never surfaced: the cart write is the source of truth.
func (s *Service) saveTransition(ctx context.Context, sess *Session, cmd Command) (*Session, error) {
	expectedVersion := sess.Version

	sess.State = Apply(sess.State, cmd)

	now := time.Now().UTC()
	sess.UpdatedAt = now
	sess.ExpiresAt = now.Add(s.ttl)

	ok, err := s.repo.SaveIfVersion(ctx, sess, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	if !ok {
		return nil, apperrors.Conflict("cart was modified concurrently, please retry")
	}

	if err := s.producer.PublishUpdated(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", sess.SessionID),
			slog.String("error", err.Error()),
		)
	}

	return sess, nil
}

// getOrCreateSession retrieves the session's cart, creating an empty one if
// it does not exist.
func (s *Service) getOrCreateSession(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptySession(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return sess, nil
}

func (s *Service) newEmptySession(sessionID string) *Session {
	now := time.Now().UTC()
	return &Session{
		SessionID: sessionID,
		State:     Empty(),
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
}
