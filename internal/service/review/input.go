package review

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// SubmitReviewInput holds one review event. Performance is the overall
// performance 1..4; other values are accepted and scored as a lapse.
type SubmitReviewInput struct {
	LessonID    uuid.UUID
	Performance int
}

// Validate reports every invalid field at once.
func (i *SubmitReviewInput) Validate() error {
	var v domain.ValidationError

	if i.LessonID == uuid.Nil {
		v.Add("lesson_id", "required")
	}

	return v.Err()
}

// DueReviewsInput holds the parameters for listing due reviews.
type DueReviewsInput struct {
	Limit int
}

// Validate reports every invalid field at once.
func (i *DueReviewsInput) Validate() error {
	var v domain.ValidationError

	if i.Limit < 0 || i.Limit > 200 {
		v.Add("limit", "must be between 0 and 200")
	}

	return v.Err()
}

// HistoryInput holds the parameters for fetching review history.
type HistoryInput struct {
	LessonID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
}

// Validate reports every invalid field at once.
func (i *HistoryInput) Validate() error {
	var v domain.ValidationError

	if i.LessonID != nil && *i.LessonID == uuid.Nil {
		v.Add("lesson_id", "must not be empty")
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		v.Add("from", "must be before to")
	}
	if i.Limit < 0 || i.Limit > 500 {
		v.Add("limit", "must be between 0 and 500")
	}

	return v.Err()
}

// SetTimezoneInput holds the user's IANA timezone.
type SetTimezoneInput struct {
	Timezone string
}

// Validate reports every invalid field at once.
func (i *SetTimezoneInput) Validate() error {
	var v domain.ValidationError

	tz := strings.TrimSpace(i.Timezone)
	switch {
	case tz == "":
		v.Add("timezone", "required")
	case strings.EqualFold(tz, "local"):
		v.Add("timezone", "must be an IANA timezone")
	default:
		if _, err := time.LoadLocation(tz); err != nil {
			v.Add("timezone", "unknown timezone")
		}
	}

	return v.Err()
}
