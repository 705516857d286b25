package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kotoba-backend/internal/service/review"
)

type progressService interface {
	GetProgress(ctx context.Context) (*review.ProgressSummary, error)
	SetTimezone(ctx context.Context, input review.SetTimezoneInput) error
	ResetProgress(ctx context.Context) error
}

// ProgressHandler serves streak and XP endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

// Get handles GET /api/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(summary))
}

// SetTimezone handles PUT /api/progress/timezone.
func (h *ProgressHandler) SetTimezone(w http.ResponseWriter, r *http.Request) {
	var req setTimezoneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetTimezone(r.Context(), review.SetTimezoneInput{Timezone: req.Timezone}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reset handles DELETE /api/progress.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetProgress(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
