package catalog

import (
	"context"
	"log/slog"

	apperrors "github.com/reservecold/storefront/pkg/errors"
)

// Service exposes catalog reads to the HTTP layer.
type Service struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewService creates a catalog service over the given catalog.
func NewService(catalog *Catalog, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog returns the underlying catalog, used by collaborators that need
// product lookups (cart snapshots, filter decoding).
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// List returns the filtered, sorted product projection for the given state.
func (s *Service) List(ctx context.Context, f FilterState) []Product {
	products := s.catalog.Apply(f)

	s.logger.DebugContext(ctx, "catalog listed",
		slog.String("category", f.Category),
		slog.String("strength", f.Strength),
		slog.String("sort", string(f.Sort)),
		slog.Int("results", len(products)),
	)

	return products
}

// Get returns a single product by id.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return Product{}, apperrors.NotFound("product", id)
	}
	return p, nil
}

// Featured returns the products flagged for the home page.
func (s *Service) Featured(ctx context.Context) []Product {
	return s.catalog.Featured()
}
