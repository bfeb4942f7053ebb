// Package avatar manages profile pictures: upload, replacement, and
// removal against a pluggable blob store.
package avatar

import (
	"context"
	"io"
)

// MaxFileSize is the maximum allowed avatar size in bytes (2 MiB).
const MaxFileSize int64 = 2 * 1024 * 1024

// AllowedContentTypes is the set of accepted avatar image types.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedContentType checks whether the given content type is allowed.
func IsAllowedContentType(contentType string) bool {
	return AllowedContentTypes[contentType]
}

// Storage defines the interface for avatar blob operations.
type Storage interface {
	// Upload stores a blob and returns its key and public URL.
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)

	// Delete removes a blob by its key. Deleting an absent key is an error.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for the given key.
	GetURL(ctx context.Context, key string) (string, error)
}

// UploadInput holds the parameters for uploading a blob.
type UploadInput struct {
	Key         string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult holds the result of a successful upload.
type UploadResult struct {
	Key string
	URL string
}
