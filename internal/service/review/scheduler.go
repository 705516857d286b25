package review

import (
	"fmt"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/review/fsrs"
)

// RatingFromPerformance maps the submitted overall performance (1..4) to a
// memory-model rating. Any other value is treated as a lapse.
func RatingFromPerformance(performance int) fsrs.Rating {
	switch performance {
	case 4:
		return fsrs.Easy
	case 3:
		return fsrs.Good
	case 2:
		return fsrs.Hard
	default:
		return fsrs.Again
	}
}

// ScheduleReview applies one review to the existing state of a (user, lesson)
// pair, or to a brand-new card when existing is nil. It does not deduplicate:
// callers must submit each logical review once.
func ScheduleReview(existing *domain.ReviewState, performance int, now time.Time) (domain.ReviewState, time.Time, error) {
	var (
		next domain.ReviewState
		card fsrs.Card
	)

	if existing == nil {
		card = fsrs.NewCard(now)
	} else {
		next = *existing
		card = toFSRSCard(existing)
	}

	reviewed, err := fsrs.ReviewCard(card, RatingFromPerformance(performance), now)
	if err != nil {
		return domain.ReviewState{}, time.Time{}, fmt.Errorf("review card: %w", err)
	}

	applyFSRSCard(&next, reviewed)
	return next, reviewed.Due, nil
}

// Retrievability is the estimated probability that the lesson is still
// recalled at now.
func Retrievability(s domain.ReviewState, now time.Time) float64 {
	return toFSRSCard(&s).Retrievability(now)
}

func toFSRSCard(s *domain.ReviewState) fsrs.Card {
	card := fsrs.Card{
		State:      s.State,
		Step:       s.Step,
		Stability:  s.Stability,
		Difficulty: s.Difficulty,
		Due:        s.Due,
		Reps:       s.Reps,
		Lapses:     s.Lapses,
	}
	if s.LastReview != nil {
		t := *s.LastReview
		card.LastReview = &t
	}
	return card
}

func applyFSRSCard(s *domain.ReviewState, c fsrs.Card) {
	s.State = c.State
	s.Step = c.Step
	s.Stability = c.Stability
	s.Difficulty = c.Difficulty
	s.Due = c.Due
	s.Reps = c.Reps
	s.Lapses = c.Lapses
	s.LastReview = nil
	if c.LastReview != nil {
		t := *c.LastReview
		s.LastReview = &t
	}
}
