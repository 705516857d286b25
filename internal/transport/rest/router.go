package rest

import (
	"net/http"

	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Review   *ReviewHandler
	Progress *ProgressHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

// NewRouter registers all routes. /api routes require an authenticated
// caller; probes are public. global wraps the whole mux.
func NewRouter(h Handlers, global middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/lessons/{lessonID}/review", middleware.Protected(h.Review.Submit))
	mux.Handle("GET /api/lessons/{lessonID}/review", middleware.Protected(h.Review.Get))
	mux.Handle("GET /api/reviews", middleware.Protected(h.Review.List))
	mux.Handle("GET /api/reviews/due", middleware.Protected(h.Review.Due))
	mux.Handle("GET /api/reviews/history", middleware.Protected(h.Review.History))

	mux.Handle("GET /api/progress", middleware.Protected(h.Progress.Get))
	mux.Handle("DELETE /api/progress", middleware.Protected(h.Progress.Reset))
	mux.Handle("PUT /api/progress/timezone", middleware.Protected(h.Progress.SetTimezone))

	mux.Handle("POST /api/admin/reminders/run", middleware.Protected(h.Admin.RunReminders))

	if global == nil {
		return mux
	}
	return global(mux)
}
