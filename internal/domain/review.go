package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewState is the memory-model state of one (user, lesson) pair.
// It is created on the first review and mutated on every later one.
type ReviewState struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LessonID   uuid.UUID
	State      CardState
	Step       int
	Stability  float64
	Difficulty float64
	Due        time.Time
	LastReview *time.Time
	Reps       int
	Lapses     int
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsDue returns true if the lesson should be reviewed at the given time.
func (s *ReviewState) IsDue(now time.Time) bool {
	return !s.Due.After(now)
}

// ReviewLog records a single submitted review. Immutable once written.
type ReviewLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LessonID   uuid.UUID
	Rating     int
	ReviewedAt time.Time
}

// ReviewHistoryFilter narrows a user's review history. Nil fields are not applied.
type ReviewHistoryFilter struct {
	LessonID *uuid.UUID
	From     *time.Time
	To       *time.Time
	// Limit caps the number of returned logs; 0 means the repository default.
	Limit int
}
