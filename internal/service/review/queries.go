package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// GetLessonReview returns the current user's review state for a lesson,
// or nil if the lesson was never reviewed.
func (s *Service) GetLessonReview(ctx context.Context, lessonID uuid.UUID) (*domain.ReviewState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if lessonID == uuid.Nil {
		return nil, domain.NewValidationError("lesson_id", "required")
	}

	rs, err := s.states.Get(ctx, userID, lessonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review state: %w", err)
	}
	return rs, nil
}

// ListReviews returns all review states of the current user.
func (s *Service) ListReviews(ctx context.Context) ([]domain.ReviewState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	states, err := s.states.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list review states: %w", err)
	}
	return states, nil
}

// GetDueReviews returns the current user's lessons due for review now.
func (s *Service) GetDueReviews(ctx context.Context, input DueReviewsInput) ([]domain.ReviewState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	states, err := s.states.ListDue(ctx, userID, s.now().UTC(), input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list due reviews: %w", err)
	}
	return states, nil
}

// GetReviewHistory returns the current user's review log, newest first.
func (s *Service) GetReviewHistory(ctx context.Context, input HistoryInput) ([]domain.ReviewLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logs.History(ctx, userID, domain.ReviewHistoryFilter{
		LessonID: input.LessonID,
		From:     input.From,
		To:       input.To,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get review history: %w", err)
	}
	return logs, nil
}

// GetProgress returns the current user's streak, XP and level together with
// today's review count and the number of due lessons.
func (s *Service) GetProgress(ctx context.Context) (*ProgressSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	progress, err := s.loadProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	loc := ParseTimezone(progress.Timezone)
	dayStart := DayStart(now, loc)

	var reviewsToday, dueCount int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.logs.CountSince(gctx, userID, dayStart)
		if err != nil {
			return fmt.Errorf("count reviews today: %w", err)
		}
		reviewsToday = n
		return nil
	})
	g.Go(func() error {
		n, err := s.states.CountDue(gctx, userID, now)
		if err != nil {
			return fmt.Errorf("count due reviews: %w", err)
		}
		dueCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	required := XPRequiredForLevel(progress.Level)
	summary := &ProgressSummary{
		Progress:      *progress,
		XPRequired:    required,
		XPToNextLevel: required - progress.XP,
		StreakActive:  progress.CurrentStreak > 0 && !StreakBroken(progress.LastActivityDate, progress.Timezone, now),
		ReviewsToday:  reviewsToday,
		DueCount:      dueCount,
	}
	if progress.LastActivityDate != nil {
		// The day after the last active day is the last one that continues the streak.
		expires := NextDayStart(NextDayStart(*progress.LastActivityDate, loc), loc)
		summary.StreakExpiresAt = &expires
	}
	return summary, nil
}
