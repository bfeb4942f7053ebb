package cart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/reservecold/storefront/pkg/errors"
	"github.com/reservecold/storefront/pkg/httputil"
	"github.com/reservecold/storefront/pkg/validator"
)

// SessionHeader carries the cart session identity. Guests get one from the
// frontend on first visit; signed-in clients reuse their account session.
const SessionHeader = "X-Session-ID"

// Handler serves the cart HTTP endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a cart HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the cart routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)

		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.SetQuantity)
		r.Delete("/items/{productID}", h.RemoveItem)

		r.Post("/merge", h.Merge)
	})
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding a product to the cart.
// The snapshot (name, price) is resolved server-side from the catalog.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetQuantityRequest is the JSON request body for setting an entry's
// quantity. Any non-positive value removes the entry.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// MergeRequest is the JSON request body for folding a saved cart into the
// current session's cart.
type MergeRequest struct {
	Items []Entry `json:"items"`
}

func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		return "", apperrors.InvalidInput(SessionHeader + " header is required")
	}
	return id, nil
}

// Get handles GET /api/v1/cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	sess, err := h.service.Get(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// AddItem handles POST /api/v1/cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.AddItem(r.Context(), sid, req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// SetQuantity handles PUT /api/v1/cart/items/{productID}
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req SetQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.SetQuantity(r.Context(), sid, chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productID}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	sess, err := h.service.RemoveItem(r.Context(), sid, chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}

// Clear handles DELETE /api/v1/cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if err := h.service.Clear(r.Context(), sid); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Merge handles POST /api/v1/cart/merge
func (h *Handler) Merge(w http.ResponseWriter, r *http.Request) {
	sid, err := sessionID(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var req MergeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := h.service.Merge(r.Context(), sid, req.Items)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess})
}
