package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/osse101/MuForge_Go/internal/domain"
)

// RandomInt returns a random integer between min and max (inclusive) drawn from r
func RandomInt(r domain.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return r.IntN(max-min+1) + min
}

// Choose picks one element of items uniformly.
// Panics on an empty slice, like rand.IntN(0).
func Choose[T any](r domain.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewRand returns a PCG-backed source for the given seed.
// The stream argument lets callers derive independent sources from one seed.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream)) //nolint:gosec // Game logic randomness, not security critical
}
