// Package fsrs implements the FSRS-5 memory model used to schedule lesson reviews.
// Formulas and default weights follow the reference FSRS-5 scheduler.
package fsrs

import (
	"fmt"
	"math"
)

const (
	// Decay is the exponent of the power forgetting curve.
	Decay = -0.5
	// Factor is chosen so that R(t=S, S) == 0.9: 0.9^(1/Decay) - 1 == 19/81.
	Factor = 19.0 / 81.0

	// DesiredRetention is the target probability of recall at the due date.
	// It is fixed for the whole application and is not user-configurable.
	DesiredRetention = 0.9

	// MaximumInterval caps any scheduled interval, in days.
	MaximumInterval = 36500

	// MinStability is the floor for stability values.
	MinStability = 0.01

	minDifficulty = 1.0
	maxDifficulty = 10.0
)

// DefaultWeights are the default FSRS-5 model weights (w[0]..w[18]).
var DefaultWeights = [19]float64{
	0.40255,  // w0  - initial stability for Again
	1.18385,  // w1  - initial stability for Hard
	3.173,    // w2  - initial stability for Good
	15.69105, // w3  - initial stability for Easy
	7.1949,   // w4  - initial difficulty for Again
	0.5345,   // w5  - initial difficulty slope
	1.4604,   // w6  - difficulty delta per grade
	0.0046,   // w7  - difficulty mean reversion weight
	1.54575,  // w8  - recall stability: exp(w8)
	0.1192,   // w9  - recall stability: S^(-w9)
	1.01925,  // w10 - recall stability: exp(w10*(1-R)) - 1
	1.9395,   // w11 - forget stability: multiplier
	0.11,     // w12 - forget stability: D^(-w12)
	0.29605,  // w13 - forget stability: (S+1)^w13 - 1
	2.2698,   // w14 - forget stability: exp(w14*(1-R))
	0.2315,   // w15 - recall stability: hard penalty
	2.9898,   // w16 - recall stability: easy bonus
	0.51655,  // w17 - short-term stability
	0.6621,   // w18 - short-term stability
}

// Rating represents the user's recall quality.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

// IsValid reports whether r is one of Again, Hard, Good, Easy.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	switch r {
	case Again:
		return "AGAIN"
	case Hard:
		return "HARD"
	case Good:
		return "GOOD"
	case Easy:
		return "EASY"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// Retrievability calculates the probability of recall after elapsedDays.
//
//	R(t, S) = (1 + Factor * t / S)^Decay
func Retrievability(elapsedDays int, stability float64) float64 {
	if stability <= 0 {
		return 0
	}
	t := math.Max(0, float64(elapsedDays))
	return math.Pow(1+Factor*t/stability, Decay)
}

// NextInterval converts stability to an interval in days at DesiredRetention.
//
//	I(S) = round(S / Factor * (r^(1/Decay) - 1)), clamped to [1, MaximumInterval]
func NextInterval(stability float64) int {
	interval := stability / Factor * (math.Pow(DesiredRetention, 1/Decay) - 1)
	return clampInterval(int(math.Round(interval)))
}

// InitialStability returns the starting stability for a given first rating.
//
//	S0(G) = w[G-1]
func InitialStability(w [19]float64, rating Rating) float64 {
	return math.Max(MinStability, w[int(rating)-1])
}

// InitialDifficulty returns the starting difficulty for a given first rating.
//
//	D0(G) = w4 - exp(w5 * (G - 1)) + 1, clamped to [1, 10]
func InitialDifficulty(w [19]float64, rating Rating) float64 {
	d := w[4] - math.Exp(w[5]*float64(rating-1)) + 1
	return clampDifficulty(d)
}

// NextDifficulty calculates the new difficulty after a review.
//
//	ΔD = -w6 * (G - 3)
//	D' = D + ΔD * (10 - D) / 9
//	D'' = w7 * D0(Easy) + (1 - w7) * D'
//
// The linear damping slows growth near the upper bound; mean reversion
// pulls difficulty toward D0(Easy).
func NextDifficulty(w [19]float64, d float64, rating Rating) float64 {
	delta := -w[6] * (float64(rating) - 3)
	damped := d + delta*(10-d)/9
	newD := w[7]*InitialDifficulty(w, Easy) + (1-w[7])*damped
	return clampDifficulty(newD)
}

// StabilityAfterRecall calculates post-recall stability (rating >= Hard).
//
//	S'r = S * (e^w8 * (11-D) * S^(-w9) * (e^(w10*(1-R)) - 1) * hardPenalty * easyBonus + 1)
func StabilityAfterRecall(w [19]float64, s, d, r float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}

	growth := math.Exp(w[8]) * (11 - d) * math.Pow(s, -w[9])
	recall := math.Exp(w[10]*(1-r)) - 1
	newS := s * (growth*recall*hardPenalty*easyBonus + 1)

	return math.Max(MinStability, newS)
}

// StabilityAfterForgetting calculates post-lapse stability (rating == Again),
// capped so that a lapse never yields more than S / e^(w17*w18).
//
//	S'f = min(w11 * D^(-w12) * ((S+1)^w13 - 1) * e^(w14*(1-R)), S / e^(w17*w18))
func StabilityAfterForgetting(w [19]float64, s, d, r float64) float64 {
	longTerm := w[11] *
		math.Pow(d, -w[12]) *
		(math.Pow(s+1, w[13]) - 1) *
		math.Exp(w[14]*(1-r))
	shortTerm := s / math.Exp(w[17]*w[18])
	return math.Max(MinStability, math.Min(longTerm, shortTerm))
}

// ShortTermStability calculates stability for same-day reviews.
//
//	S'st = S * e^(w17 * (G - 3 + w18))
func ShortTermStability(w [19]float64, s float64, rating Rating) float64 {
	newS := s * math.Exp(w[17]*(float64(rating)-3+w[18]))
	return math.Max(MinStability, newS)
}

// NextStability picks the forgetting or recall update for a long-term review.
func NextStability(w [19]float64, s, d, r float64, rating Rating) float64 {
	if rating == Again {
		return StabilityAfterForgetting(w, s, d, r)
	}
	return StabilityAfterRecall(w, s, d, r, rating)
}

// ValidateWeights checks that all 19 FSRS weights are finite and non-NaN.
func ValidateWeights(w [19]float64) error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight w[%d] is invalid: %v", i, v)
		}
	}
	if w[0] <= 0 || w[1] <= 0 || w[2] <= 0 || w[3] <= 0 {
		return fmt.Errorf("initial stability weights w[0]-w[3] must be positive")
	}
	return nil
}

func clampDifficulty(d float64) float64 {
	return math.Max(minDifficulty, math.Min(maxDifficulty, d))
}

func clampInterval(interval int) int {
	if interval < 1 {
		return 1
	}
	if interval > MaximumInterval {
		return MaximumInterval
	}
	return interval
}
