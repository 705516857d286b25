package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
)

type reminderRunner interface {
	CheckOverdue(ctx context.Context) (int, error)
}

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	reminders reminderRunner
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler. reminders may be nil when
// reminders are disabled.
func NewAdminHandler(reminders reminderRunner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reminders: reminders,
		log:       logger.With("handler", "admin"),
	}
}

type runRemindersResponse struct {
	Notified int `json:"notified"`
}

// RunReminders triggers one overdue-review check.
// POST /api/admin/reminders/run
func (h *AdminHandler) RunReminders(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if h.reminders == nil {
		writeError(w, http.StatusNotFound, "reminders are disabled")
		return
	}

	n, err := h.reminders.CheckOverdue(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "reminders run manually", slog.Int("notified", n))
	writeJSON(w, http.StatusOK, runRemindersResponse{Notified: n})
}
