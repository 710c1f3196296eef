// Package rng provides the randomness sources used for shuffling and seating.
package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded is a reproducible generator. Two Seeded values built from the same seed
// return the same sequence.
type Seeded struct {
	seed int64
	r    *mrand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    mrand.New(mrand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Seed returns the seed the generator was built from
func (s *Seeded) Seed() int64 {
	return s.seed
}

// New returns a seeded generator when seed is non-zero, otherwise a crypto generator
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
