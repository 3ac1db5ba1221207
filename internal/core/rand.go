package core

import "math/rand"

// Rand is the random source scenes draw from. *rand.Rand satisfies it,
// so tests can pass a seeded generator.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a float uniformly from [min, max).
func Uniform(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// UniformInt draws an integer uniformly from [min, max], inclusive.
func UniformInt(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
