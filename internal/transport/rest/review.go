package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/review"
)

type reviewService interface {
	SubmitReview(ctx context.Context, input review.SubmitReviewInput) (*review.ReviewOutcome, error)
	GetLessonReview(ctx context.Context, lessonID uuid.UUID) (*domain.ReviewState, error)
	ListReviews(ctx context.Context) ([]domain.ReviewState, error)
	GetDueReviews(ctx context.Context, input review.DueReviewsInput) ([]domain.ReviewState, error)
	GetReviewHistory(ctx context.Context, input review.HistoryInput) ([]domain.ReviewLog, error)
}

// ReviewHandler serves lesson review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
	now func() time.Time
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review"), now: time.Now}
}

// Submit handles POST /api/lessons/{lessonID}/review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathUUID(r, "lessonID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.OverallPerformance == nil {
		handleError(h.log, w, r, domain.NewValidationError("overallPerformance", "required"))
		return
	}

	outcome, err := h.svc.SubmitReview(r.Context(), review.SubmitReviewInput{
		LessonID:    lessonID,
		Performance: *req.OverallPerformance,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewOutcomeResponse(outcome, h.now()))
}

// Get handles GET /api/lessons/{lessonID}/review. A lesson that was never
// reviewed yields 204.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathUUID(r, "lessonID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	state, err := h.svc.GetLessonReview(r.Context(), lessonID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if state == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toReviewStateResponse(*state, h.now()))
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.ListReviews(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewStateResponses(states, h.now()))
}

// Due handles GET /api/reviews/due?limit=.
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	states, err := h.svc.GetDueReviews(r.Context(), review.DueReviewsInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewStateResponses(states, h.now()))
}

// History handles GET /api/reviews/history?lessonId=&from=&to=&limit=.
func (h *ReviewHandler) History(w http.ResponseWriter, r *http.Request) {
	var (
		input review.HistoryInput
		err   error
	)
	if input.LessonID, err = queryUUID(r, "lessonId"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.From, err = queryTime(r, "from"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.To, err = queryTime(r, "to"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs, err := h.svc.GetReviewHistory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewLogResponses(logs))
}
