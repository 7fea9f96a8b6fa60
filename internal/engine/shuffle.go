package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed draws a high-entropy seed for NewRandShuffler.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRandShuffler returns a Shuffler that is deterministic for a given seed.
func NewRandShuffler(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // chaos fold, not security sensitive
}
