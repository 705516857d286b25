package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is the read model of a lesson as needed by the review flow.
type Lesson struct {
	ID         uuid.UUID
	Title      string
	Category   LessonCategory
	SectionID  *uuid.UUID
	OrderIndex int
	CreatedAt  time.Time
}
