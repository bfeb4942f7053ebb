package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reservecold/storefront/pkg/httputil"
)

// Handler serves the catalog HTTP endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a catalog HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the catalog routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/featured", h.Featured)
		r.Get("/{productID}", h.Get)
	})
}

// ListResponse is the payload for the filtered product list. Filter echoes
// the canonical state so the client can sync its URL to it.
type ListResponse struct {
	Filter   FilterState `json:"filter"`
	Query    string      `json:"query"`
	Products []Product   `json:"products"`
}

// List handles GET /api/v1/products?category=...&strength=...&sort=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := h.service.Catalog().DecodeFilter(r.URL.Query())
	products := h.service.List(r.Context(), filter)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ListResponse{
		Filter:   filter,
		Query:    filter.Encode(),
		Products: products,
	}})
}

// Get handles GET /api/v1/products/{productID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Featured handles GET /api/v1/products/featured
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: h.service.Featured(r.Context()),
	})
}
