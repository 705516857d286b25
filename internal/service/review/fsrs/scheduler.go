package fsrs

import (
	"fmt"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Card holds the FSRS state of one (user, lesson) pair.
type Card struct {
	State      domain.CardState
	Step       int
	Stability  float64
	Difficulty float64
	Due        time.Time
	LastReview *time.Time
	Reps       int
	Lapses     int
}

// NewCard returns a card that has never been reviewed.
func NewCard(now time.Time) Card {
	return Card{State: domain.CardStateNew, Due: now.UTC()}
}

// Parameters holds the scheduler configuration. The application always runs
// with DefaultParameters; tests disable fuzz to get exact intervals.
type Parameters struct {
	W               [19]float64
	EnableFuzz      bool
	LearningSteps   []time.Duration
	RelearningSteps []time.Duration
}

// DefaultParameters returns the fixed production parameters.
func DefaultParameters() Parameters {
	return Parameters{
		W:               DefaultWeights,
		EnableFuzz:      true,
		LearningSteps:   []time.Duration{time.Minute, 10 * time.Minute},
		RelearningSteps: []time.Duration{10 * time.Minute},
	}
}

// Validate rejects weights the model cannot use and non-positive steps.
func (p Parameters) Validate() error {
	if err := ValidateWeights(p.W); err != nil {
		return fmt.Errorf("invalid FSRS weights: %w", err)
	}
	for _, steps := range [][]time.Duration{p.LearningSteps, p.RelearningSteps} {
		for _, s := range steps {
			if s <= 0 {
				return fmt.Errorf("invalid FSRS step %v: must be positive", s)
			}
		}
	}
	return nil
}

// ReviewCard applies a rating observed at now and returns the updated card.
// Card.Due of the result is always strictly after now.
func ReviewCard(card Card, rating Rating, now time.Time) (Card, error) {
	return DefaultParameters().ReviewCard(card, rating, now)
}

// ReviewCard applies a rating with these parameters.
func (p Parameters) ReviewCard(card Card, rating Rating, now time.Time) (Card, error) {
	if !rating.IsValid() {
		return Card{}, fmt.Errorf("rating %d: %w", int(rating), domain.ErrInvalidRating)
	}
	if err := p.Validate(); err != nil {
		return Card{}, err
	}

	now = now.UTC()
	elapsed := elapsedDays(card.LastReview, now)

	var (
		delay        time.Duration
		intervalDays int
	)

	switch card.State {
	case domain.CardStateNew:
		card.Stability = InitialStability(p.W, rating)
		card.Difficulty = InitialDifficulty(p.W, rating)
		card.State = domain.CardStateLearning
		card.Step = 0
		delay, intervalDays = p.stepCard(&card, rating, p.LearningSteps)

	case domain.CardStateLearning:
		p.updateMemory(&card, rating, elapsed)
		delay, intervalDays = p.stepCard(&card, rating, p.LearningSteps)

	case domain.CardStateRelearning:
		p.updateMemory(&card, rating, elapsed)
		delay, intervalDays = p.stepCard(&card, rating, p.RelearningSteps)

	case domain.CardStateReview:
		p.updateMemory(&card, rating, elapsed)
		if rating == Again {
			card.Lapses++
			if len(p.RelearningSteps) == 0 {
				intervalDays = NextInterval(card.Stability)
			} else {
				card.State = domain.CardStateRelearning
				card.Step = 0
				delay = p.RelearningSteps[0]
			}
		} else {
			intervalDays = NextInterval(card.Stability)
		}

	default:
		return Card{}, fmt.Errorf("unknown card state: %q", card.State)
	}

	card.Reps++
	card.LastReview = &now

	if intervalDays > 0 {
		if p.EnableFuzz && card.State == domain.CardStateReview {
			seed := FuzzSeed(now, card.Reps, card.Difficulty, card.Stability)
			intervalDays = applyFuzz(intervalDays, seed)
		}
		card.Due = now.Add(time.Duration(intervalDays) * 24 * time.Hour)
	} else {
		card.Due = now.Add(delay)
	}

	return card, nil
}

// Retrievability returns the card's probability of recall at now.
// Cards that were never reviewed report 0.
func (c Card) Retrievability(now time.Time) float64 {
	if c.State == domain.CardStateNew || c.LastReview == nil {
		return 0
	}
	return Retrievability(elapsedDays(c.LastReview, now.UTC()), c.Stability)
}

// updateMemory refreshes stability and difficulty of an already-initialized card.
// Reviews less than a day apart use the short-term stability formula.
func (p Parameters) updateMemory(card *Card, rating Rating, elapsed int) {
	if elapsed < 1 {
		card.Stability = ShortTermStability(p.W, card.Stability, rating)
	} else {
		r := Retrievability(elapsed, card.Stability)
		card.Stability = NextStability(p.W, card.Stability, card.Difficulty, r, rating)
	}
	card.Difficulty = NextDifficulty(p.W, card.Difficulty, rating)
}

// stepCard advances a (re)learning card through its steps. It returns either
// the short delay until the next step or, when the card graduates to REVIEW,
// the interval in days.
func (p Parameters) stepCard(card *Card, rating Rating, steps []time.Duration) (time.Duration, int) {
	if len(steps) == 0 || (card.Step >= len(steps) && rating != Again) {
		return 0, graduate(card)
	}

	switch rating {
	case Again:
		card.Step = 0
		return steps[0], 0

	case Hard:
		switch {
		case card.Step == 0 && len(steps) == 1:
			return steps[0] * 3 / 2, 0
		case card.Step == 0:
			return (steps[0] + steps[1]) / 2, 0
		default:
			return steps[min(card.Step, len(steps)-1)], 0
		}

	case Good:
		if card.Step+1 >= len(steps) {
			return 0, graduate(card)
		}
		card.Step++
		return steps[card.Step], 0

	default: // Easy
		return 0, graduate(card)
	}
}

// graduate moves a card to REVIEW and returns its first day interval.
func graduate(card *Card) int {
	card.State = domain.CardStateReview
	card.Step = 0
	return NextInterval(card.Stability)
}

// elapsedDays returns whole days between lastReview and now; 0 if never reviewed
// or if now precedes lastReview.
func elapsedDays(lastReview *time.Time, now time.Time) int {
	if lastReview == nil {
		return 0
	}
	days := int(now.Sub(*lastReview).Hours() / 24)
	return max(0, days)
}
