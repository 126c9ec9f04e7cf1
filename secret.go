package cask

import "crypto/rand"

const minSeedLength = 32 // 256 bits

// NewSeed returns new random seed material with the given length
// (minimum 32 bytes).
func NewSeed(length int) []byte {
	// Enforce minimum of 32 bytes.
	if length < minSeedLength {
		length = minSeedLength
	}

	seed := make([]byte, length)
	if _, err := rand.Read(seed); err != nil {
		// This should never happen with crypto/rand, but handle it defensively.
		panic("failed to generate random seed: " + err.Error())
	}
	return seed
}
