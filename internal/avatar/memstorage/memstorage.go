// Package memstorage implements avatar.Storage on an in-memory map. It
// backs local development and tests; production wires an object store with
// the same interface.
package memstorage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/reservecold/storefront/internal/avatar"
)

type blob struct {
	key         string
	contentType string
	data        []byte
	url         string
}

// Storage implements avatar.Storage using an in-memory map.
type Storage struct {
	mu      sync.RWMutex
	blobs   map[string]*blob
	baseURL string
}

// New creates a new in-memory avatar storage instance.
func New(baseURL string) *Storage {
	return &Storage{
		blobs:   make(map[string]*blob),
		baseURL: baseURL,
	}
}

// Upload stores the blob bytes in memory and returns the generated URL.
func (s *Storage) Upload(_ context.Context, input *avatar.UploadInput) (*avatar.UploadResult, error) {
	data, err := io.ReadAll(input.Data)
	if err != nil {
		return nil, fmt.Errorf("read avatar data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	url := fmt.Sprintf("%s/%s", s.baseURL, input.Key)
	s.blobs[input.Key] = &blob{
		key:         input.Key,
		contentType: input.ContentType,
		data:        data,
		url:         url,
	}

	return &avatar.UploadResult{
		Key: input.Key,
		URL: url,
	}, nil
}

// Delete removes the blob from memory.
func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blobs[key]; !exists {
		return fmt.Errorf("blob not found: %s", key)
	}

	delete(s.blobs, key)
	return nil
}

// GetURL returns the URL for the given key.
func (s *Storage) GetURL(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, exists := s.blobs[key]
	if !exists {
		return "", fmt.Errorf("blob not found: %s", key)
	}

	return b.url, nil
}

// Len reports the number of stored blobs.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
