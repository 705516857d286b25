package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is used for users that never set a timezone.
const DefaultTimezone = "UTC"

// UserProgress holds the gamification fields of a user record.
type UserProgress struct {
	UserID           uuid.UUID
	Timezone         string
	CurrentStreak    int
	LastActivityDate *time.Time
	XP               int
	Level            int
	CompletedLessons []uuid.UUID
	Version          int
	UpdatedAt        time.Time
}

// NewUserProgress returns the progress of a user that has never reviewed anything.
func NewUserProgress(userID uuid.UUID) UserProgress {
	return UserProgress{
		UserID:           userID,
		Timezone:         DefaultTimezone,
		Level:            1,
		CompletedLessons: []uuid.UUID{},
	}
}

// HasCompleted reports whether the lesson is in the completed set.
func (p *UserProgress) HasCompleted(lessonID uuid.UUID) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// OverdueSummary is the number of lessons a user has overdue for review.
type OverdueSummary struct {
	UserID    uuid.UUID
	DueCount  int
	OldestDue time.Time
}
