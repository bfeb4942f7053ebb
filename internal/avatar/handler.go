package avatar

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reservecold/storefront/internal/account"
	"github.com/reservecold/storefront/pkg/httputil"
)

// Handler serves the profile avatar HTTP endpoints.
type Handler struct {
	service    *Service
	jwtManager *account.JWTManager
	logger     *slog.Logger
}

// NewHandler creates an avatar HTTP handler.
func NewHandler(service *Service, jwtManager *account.JWTManager, logger *slog.Logger) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register mounts the avatar routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(account.RequireAuth(h.jwtManager))
		r.Post("/api/v1/profile/avatar", h.UploadAvatar)
		r.Delete("/api/v1/profile/avatar", h.DeleteAvatar)
	})
}

// UploadAvatar handles POST /api/v1/profile/avatar (multipart/form-data).
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	maxSize := MaxFileSize + (1 << 20) // form field overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "failed to parse multipart form: " + err.Error()},
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "file is required: " + err.Error()},
		})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	user, err := h.service.Upload(r.Context(), account.UserIDFromContext(r.Context()), contentType, header.Size, file)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: user})
}

// DeleteAvatar handles DELETE /api/v1/profile/avatar.
func (h *Handler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Delete(r.Context(), account.UserIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: user})
}
