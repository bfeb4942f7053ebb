package cart

import "context"

// Repository defines the interface for cart session persistence.
type Repository interface {
	// Get retrieves a cart session by its session ID.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// SaveIfVersion persists the session only when the stored version still
	// equals expected (a missing key counts as version 0). On success the
	// session's version is bumped to expected+1 and the first return value
	// is true; a version mismatch returns (false, nil).
	SaveIfVersion(ctx context.Context, sess *Session, expected int) (bool, error)

	// Delete removes a cart session from the store.
	Delete(ctx context.Context, sessionID string) error
}
