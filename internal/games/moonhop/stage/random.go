package stage

import "math"

// Seed derivation constants: seed = stage*SeedStride + SeedOffset (mod 2^32).
const (
	SeedStride uint32 = 7919
	SeedOffset uint32 = 104729
)

// Random is a Mulberry32 generator over a 32-bit state. It has no hidden
// entropy: two generators built from the same seed yield the same sequence.
type Random struct {
	state uint32
	seed  uint32
}

// NewRandom creates a generator seeded with seed.
func NewRandom(seed uint32) *Random {
	return &Random{state: seed, seed: seed}
}

// StageSeed derives the generator seed for a stage number.
func StageSeed(stageNumber int) uint32 {
	return uint32(stageNumber)*SeedStride + SeedOffset //#nosec G115 -- wraparound is part of the derivation
}

// Seed returns the seed the generator was created with.
func (r *Random) Seed() uint32 {
	return r.seed
}

// Reset rewinds the generator to its initial seed.
func (r *Random) Reset() {
	r.state = r.seed
}

// Next returns the next float in [0, 1).
func (r *Random) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Int returns an integer in the inclusive range [min, max], computed as
// floor(Next()*(max-min+1)) + min. Inverted bounds are swapped.
func (r *Random) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// Range returns a float in [min, max), computed as Next()*(max-min) + min.
// Inverted bounds are swapped.
func (r *Random) Range(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return r.Next()*(max-min) + min
}

// Sign returns -1 or +1 with equal probability.
func (r *Random) Sign() int {
	if r.Next() < 0.5 {
		return -1
	}
	return 1
}
