package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// MaxSubmitAttempts bounds how often SubmitReview re-runs the read-compute-write
// cycle after a concurrent write to the same review state or progress row.
const MaxSubmitAttempts = 3

// SubmitReview records one review of a lesson by the current user: it
// reschedules the lesson, appends the review log, and updates streak, XP,
// level and completed lessons in a single transaction.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*ReviewOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lesson, err := s.lessons.GetByID(ctx, input.LessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}

	now := s.now().UTC()

	var outcome *ReviewOutcome
	for attempt := 1; ; attempt++ {
		outcome, err = s.submitOnce(ctx, userID, lesson, input.Performance, now)
		if err == nil {
			break
		}
		if !isWriteConflict(err) || attempt >= MaxSubmitAttempts {
			return nil, err
		}
		s.log.WarnContext(ctx, "review write conflict, retrying",
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lesson.ID.String()),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "lesson reviewed",
		slog.String("user_id", userID.String()),
		slog.String("lesson_id", lesson.ID.String()),
		slog.Int("performance", input.Performance),
		slog.String("state", outcome.State.State.String()),
		slog.Time("next_review", outcome.NextReview),
		slog.Int("xp_gained", outcome.XPGained),
		slog.Int("streak", outcome.CurrentStreak),
		slog.Bool("leveled_up", outcome.LeveledUp),
	)

	return outcome, nil
}

// submitOnce is one read-compute-write cycle. Both writes are guarded by the
// version read at the start of the cycle.
func (s *Service) submitOnce(ctx context.Context, userID uuid.UUID, lesson *domain.Lesson, performance int, now time.Time) (*ReviewOutcome, error) {
	var outcome ReviewOutcome

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		progress, err := s.loadProgress(txCtx, userID)
		if err != nil {
			return err
		}

		existing, err := s.states.Get(txCtx, userID, lesson.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("get review state: %w", err)
			}
			existing = nil
		}

		next, due, err := ScheduleReview(existing, performance, now)
		if err != nil {
			return err
		}

		var saved *domain.ReviewState
		if existing == nil {
			next.ID = uuid.New()
			next.UserID = userID
			next.LessonID = lesson.ID
			saved, err = s.states.Create(txCtx, next)
		} else {
			saved, err = s.states.Update(txCtx, next)
		}
		if err != nil {
			return fmt.Errorf("save review state: %w", err)
		}

		if err := s.logs.Create(txCtx, domain.ReviewLog{
			ID:         uuid.New(),
			UserID:     userID,
			LessonID:   lesson.ID,
			Rating:     performance,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		streak, lastActivity := UpdateStreak(progress.CurrentStreak, progress.LastActivityDate, progress.Timezone, now)

		alreadyCompleted := progress.HasCompleted(lesson.ID)
		reward := XPReward(lesson.Category, alreadyCompleted)
		xp, level, leveledUp := AddXP(progress.XP, progress.Level, reward)

		progress.CurrentStreak = streak
		progress.LastActivityDate = &lastActivity
		progress.XP = xp
		progress.Level = level
		if !alreadyCompleted {
			progress.CompletedLessons = append(progress.CompletedLessons, lesson.ID)
		}

		if progress.Version == 0 {
			_, err = s.progress.Create(txCtx, *progress)
		} else {
			_, err = s.progress.Update(txCtx, *progress)
		}
		if err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		outcome = ReviewOutcome{
			XPGained:        reward,
			NewXP:           xp,
			NewLevel:        level,
			LeveledUp:       leveledUp,
			CurrentStreak:   streak,
			FirstCompletion: !alreadyCompleted,
			NextReview:      due,
			State:           *saved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

// loadProgress returns the stored progress, or fresh defaults with version 0
// for a user that has none yet.
func (s *Service) loadProgress(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	p, err := s.progress.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		fresh := domain.NewUserProgress(userID)
		return &fresh, nil
	}
	return nil, fmt.Errorf("get progress: %w", err)
}

// isWriteConflict reports whether err came from a lost version check or from
// two first reviews racing to create the same row.
func isWriteConflict(err error) bool {
	return errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrAlreadyExists)
}
