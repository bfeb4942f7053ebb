package account

import (
	"context"
	"time"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by their ID.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update modifies an existing user.
	Update(ctx context.Context, u *User) error
}

// RefreshTokenRepository defines the interface for refresh token persistence.
type RefreshTokenRepository interface {
	// Create stores a new refresh token hash.
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// GetByHash retrieves a refresh token record by its hash.
	GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// Revoke revokes a specific refresh token by its hash.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeByUserID revokes all refresh tokens for the given user.
	RevokeByUserID(ctx context.Context, userID string) error
}

// PasswordResetTokenRepository defines the interface for reset token persistence.
type PasswordResetTokenRepository interface {
	// Create stores a new password reset token hash.
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// GetByHash retrieves a reset token record by its hash.
	GetByHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)

	// MarkUsed marks a reset token as consumed so it cannot be replayed.
	MarkUsed(ctx context.Context, tokenHash string) error
}
