package fsrs

import (
	"fmt"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Record is the flat persisted form of a Card: floats, the state as a string
// and RFC 3339 timestamps.
type Record struct {
	State      string  `json:"state"`
	Step       int     `json:"step"`
	Stability  float64 `json:"stability"`
	Difficulty float64 `json:"difficulty"`
	Due        string  `json:"due"`
	LastReview *string `json:"last_review"`
	Reps       int     `json:"reps"`
	Lapses     int     `json:"lapses"`
}

// ToRecord flattens the card. Timestamps are written in UTC.
func (c Card) ToRecord() Record {
	rec := Record{
		State:      c.State.String(),
		Step:       c.Step,
		Stability:  c.Stability,
		Difficulty: c.Difficulty,
		Due:        c.Due.UTC().Format(time.RFC3339Nano),
		Reps:       c.Reps,
		Lapses:     c.Lapses,
	}
	if c.LastReview != nil {
		s := c.LastReview.UTC().Format(time.RFC3339Nano)
		rec.LastReview = &s
	}
	return rec
}

// FromRecord rebuilds a Card from its persisted form.
func FromRecord(rec Record) (Card, error) {
	state := domain.CardState(rec.State)
	if !state.IsValid() {
		return Card{}, fmt.Errorf("card record: unknown state %q", rec.State)
	}

	due, err := time.Parse(time.RFC3339Nano, rec.Due)
	if err != nil {
		return Card{}, fmt.Errorf("card record: due: %w", err)
	}

	card := Card{
		State:      state,
		Step:       rec.Step,
		Stability:  rec.Stability,
		Difficulty: rec.Difficulty,
		Due:        due.UTC(),
		Reps:       rec.Reps,
		Lapses:     rec.Lapses,
	}

	if rec.LastReview != nil {
		lr, err := time.Parse(time.RFC3339Nano, *rec.LastReview)
		if err != nil {
			return Card{}, fmt.Errorf("card record: last_review: %w", err)
		}
		lr = lr.UTC()
		card.LastReview = &lr
	}

	return card, nil
}
