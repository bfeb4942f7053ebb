// Package redisrepo implements cart.Repository using Redis. Sessions are
// stored as JSON blobs keyed by session ID with a sliding TTL.
package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reservecold/storefront/internal/cart"
	apperrors "github.com/reservecold/storefront/pkg/errors"
)

const keyPrefix = "cart:"

// Repository is a Redis-backed cart session store.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed cart repository with the given session TTL.
func New(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cart session by session ID.
func (r *Repository) Get(ctx context.Context, sessionID string) (*cart.Session, error) {
	key := keyPrefix + sessionID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("cart", sessionID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var sess cart.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return &sess, nil
}

// SaveIfVersion persists the session only when the stored version still
// equals expected. A missing key counts as version 0, so a brand-new
// session saves with expected=0. The check-and-set runs under WATCH so a
// concurrent write between read and EXEC aborts the transaction.
func (r *Repository) SaveIfVersion(ctx context.Context, sess *cart.Session, expected int) (bool, error) {
	key := keyPrefix + sess.SessionID

	var saved bool
	txf := func(tx *redis.Tx) error {
		current := 0
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// No stored cart, current stays 0.
		case err != nil:
			return fmt.Errorf("redis get cart: %w", err)
		default:
			var stored cart.Session
			if err := json.Unmarshal(data, &stored); err != nil {
				return fmt.Errorf("unmarshal cart: %w", err)
			}
			current = stored.Version
		}

		if current != expected {
			return nil
		}

		sess.Version = expected + 1
		payload, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("marshal cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = true
		return nil
	}

	if err := r.client.Watch(ctx, txf, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return false, nil
		}
		return false, fmt.Errorf("redis save cart: %w", err)
	}

	return saved, nil
}

// Delete removes a cart session by session ID.
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	key := keyPrefix + sessionID

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}
