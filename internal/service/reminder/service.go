package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

type reviewStateRepo interface {
	OverdueByUser(ctx context.Context, now time.Time) ([]domain.OverdueSummary, error)
}

type notifier interface {
	Notify(ctx context.Context, summary domain.OverdueSummary) error
}

// Service finds users with overdue reviews and notifies them.
type Service struct {
	states   reviewStateRepo
	notifier notifier
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new reminder service.
func NewService(log *slog.Logger, states reviewStateRepo, n notifier) *Service {
	return &Service{
		states:   states,
		notifier: n,
		log:      log.With("service", "reminder"),
		now:      time.Now,
	}
}

// CheckOverdue notifies every user that has at least one review due now.
// A user whose notification fails is logged and skipped. Returns the number
// of users notified.
func (s *Service) CheckOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()

	summaries, err := s.states.OverdueByUser(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue: %w", err)
	}

	notified := 0
	for _, summary := range summaries {
		if err := ctx.Err(); err != nil {
			return notified, err
		}
		if summary.DueCount <= 0 {
			continue
		}
		if err := s.notifier.Notify(ctx, summary); err != nil {
			s.log.ErrorContext(ctx, "notify overdue reviews",
				slog.String("user_id", summary.UserID.String()),
				slog.Int("due_count", summary.DueCount),
				slog.String("error", err.Error()),
			)
			continue
		}
		notified++
	}

	s.log.InfoContext(ctx, "overdue reminders sent",
		slog.Int("users", len(summaries)),
		slog.Int("notified", notified),
	)
	return notified, nil
}
