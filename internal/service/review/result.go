package review

import (
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ReviewOutcome is the gamification and scheduling delta of one submitted review.
type ReviewOutcome struct {
	XPGained        int
	NewXP           int
	NewLevel        int
	LeveledUp       bool
	CurrentStreak   int
	FirstCompletion bool
	NextReview      time.Time
	State           domain.ReviewState
}

// ProgressSummary is the user's progress with derived read-side values.
type ProgressSummary struct {
	Progress      domain.UserProgress
	XPRequired    int
	XPToNextLevel int
	StreakActive  bool
	ReviewsToday  int
	DueCount      int

	// StreakExpiresAt is when the streak breaks without another review; nil without activity.
	StreakExpiresAt *time.Time
}
