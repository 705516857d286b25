package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// SetTimezone stores the IANA timezone used for the current user's streak days.
func (s *Service) SetTimezone(ctx context.Context, input SetTimezoneInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	tz := strings.TrimSpace(input.Timezone)
	if err := s.progress.SetTimezone(ctx, userID, tz); err != nil {
		return fmt.Errorf("set timezone: %w", err)
	}

	s.log.InfoContext(ctx, "timezone updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone", tz),
	)
	return nil
}

// ResetProgress deletes the current user's review states and history and
// zeroes streak, XP, level and completed lessons.
func (s *Service) ResetProgress(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var states, logs int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if states, err = s.states.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("delete review states: %w", err)
		}
		if logs, err = s.logs.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("delete review logs: %w", err)
		}
		if err := s.progress.Reset(txCtx, userID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "progress reset",
		slog.String("user_id", userID.String()),
		slog.Int("review_states", states),
		slog.Int("review_logs", logs),
	)
	return nil
}
