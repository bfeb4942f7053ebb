package avatar

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reservecold/storefront/internal/account"
	apperrors "github.com/reservecold/storefront/pkg/errors"
)

// Service implements the business logic for profile avatars. Keys are
// deterministic per user, so re-uploading replaces the previous blob.
type Service struct {
	storage  Storage
	accounts *account.Service
	logger   *slog.Logger
}

// NewService creates a new avatar service.
func NewService(storage Storage, accounts *account.Service, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		accounts: accounts,
		logger:   logger,
	}
}

// avatarKey returns the storage key for a user's avatar.
func avatarKey(userID string) string {
	return "avatars/" + userID
}

// Upload validates and stores a new avatar for the user, replacing any
// existing one, and records the URL on the profile.
func (s *Service) Upload(ctx context.Context, userID, contentType string, size int64, data io.Reader) (*account.User, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if !IsAllowedContentType(contentType) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("content type %q is not allowed", contentType))
	}
	if size <= 0 {
		return nil, apperrors.InvalidInput("avatar file is empty")
	}
	if size > MaxFileSize {
		return nil, apperrors.InvalidInput(fmt.Sprintf("file size %d exceeds maximum allowed size of %d bytes", size, MaxFileSize))
	}

	result, err := s.storage.Upload(ctx, &UploadInput{
		Key:         avatarKey(userID),
		ContentType: contentType,
		Size:        size,
		Data:        io.LimitReader(data, MaxFileSize),
	})
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	user, err := s.accounts.SetAvatarURL(ctx, userID, result.URL)
	if err != nil {
		return nil, fmt.Errorf("record avatar url: %w", err)
	}

	s.logger.InfoContext(ctx, "avatar uploaded",
		slog.String("user_id", userID),
		slog.String("key", result.Key),
		slog.Int64("size", size),
	)

	return user, nil
}

// Delete removes the user's avatar blob and clears the URL on the profile.
// A missing blob is tolerated: the profile URL is cleared either way.
func (s *Service) Delete(ctx context.Context, userID string) (*account.User, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	if err := s.storage.Delete(ctx, avatarKey(userID)); err != nil {
		s.logger.WarnContext(ctx, "avatar blob delete failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	user, err := s.accounts.SetAvatarURL(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("clear avatar url: %w", err)
	}

	s.logger.InfoContext(ctx, "avatar removed",
		slog.String("user_id", userID),
	)

	return user, nil
}
