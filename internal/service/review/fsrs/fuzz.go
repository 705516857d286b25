package fsrs

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// FuzzRange defines a tier for the 3-tier fuzz system.
type FuzzRange struct {
	Start  float64
	End    float64
	Factor float64
}

// fuzzRanges matches the reference scheduler's 3-tier fuzz.
var fuzzRanges = []FuzzRange{
	{Start: 2.5, End: 7.0, Factor: 0.15},
	{Start: 7.0, End: 20.0, Factor: 0.10},
	{Start: 20.0, End: math.MaxFloat64, Factor: 0.05},
}

// getFuzzRange returns the min and max interval bounds after fuzz.
func getFuzzRange(interval int) (minIvl, maxIvl int) {
	ivl := float64(interval)

	delta := 1.0
	for _, r := range fuzzRanges {
		delta += r.Factor * math.Max(math.Min(ivl, r.End)-r.Start, 0.0)
	}

	minIvl = max(2, int(math.Round(ivl-delta)))
	maxIvl = min(int(math.Round(ivl+delta)), MaximumInterval)
	minIvl = min(minIvl, maxIvl)

	return minIvl, maxIvl
}

// applyFuzz spreads an interval within its fuzz range using a deterministic seed,
// so reviews done together do not all come due on the same day.
// Intervals below 2.5 days are returned unchanged.
func applyFuzz(interval int, seed int64) int {
	if float64(interval) < 2.5 {
		return interval
	}

	minIvl, maxIvl := getFuzzRange(interval)
	if minIvl == maxIvl {
		return minIvl
	}

	//nolint:gosec // deterministic fuzz, not cryptographic
	rng := rand.New(rand.NewSource(seed))
	return minIvl + rng.Intn(maxIvl-minIvl+1)
}

// FuzzSeed generates a deterministic seed from card state using FNV-1a hash.
func FuzzSeed(now time.Time, reps int, difficulty, stability float64) int64 {
	h := fnv.New64a()
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(now.Unix()))
	h.Write(b)
	binary.LittleEndian.PutUint64(b, uint64(reps))
	h.Write(b)
	binary.LittleEndian.PutUint64(b, math.Float64bits(difficulty))
	h.Write(b)
	binary.LittleEndian.PutUint64(b, math.Float64bits(stability))
	h.Write(b)
	return int64(h.Sum64())
}
