package checkout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reservecold/storefront/internal/cart"
	apperrors "github.com/reservecold/storefront/pkg/errors"
	"github.com/reservecold/storefront/pkg/httputil"
	"github.com/reservecold/storefront/pkg/validator"
)

// Handler serves the checkout HTTP endpoint.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a checkout HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the checkout route on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/v1/checkout", h.PlaceOrder)
}

// PlaceOrder handles POST /api/v1/checkout
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid := r.Header.Get(cart.SessionHeader)
	if sid == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput(cart.SessionHeader+" header is required"), h.logger)
		return
	}

	var input PlaceOrderInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), sid, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
