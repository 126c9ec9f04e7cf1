package cask

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Hash selects a fixed-output-length cryptographic hash algorithm.
type Hash string

const (
	SHA2_256 Hash = "SHA2_256"
	SHA2_384 Hash = "SHA2_384"
	SHA2_512 Hash = "SHA2_512"

	SHA3_256 Hash = "SHA3_256"

	BLAKE2s_256 Hash = "BLAKE2s_256"
	BLAKE2b_256 Hash = "BLAKE2b_256"

	BLAKE3 Hash = "BLAKE3"
)

func AllHashes() []Hash {
	return []Hash{
		SHA2_256,
		SHA2_384,
		SHA2_512,
		SHA3_256,
		BLAKE2s_256,
		BLAKE2b_256,
		BLAKE3,
	}
}

func (h Hash) IsValid() bool {
	switch h {
	case SHA2_256, SHA2_384, SHA2_512,
		SHA3_256,
		BLAKE2s_256, BLAKE2b_256,
		BLAKE3:
		return true
	}
	return false
}

// New returns a new hasher of the selected algorithm.
// It panics on an invalid selector, as hashing must never silently degrade.
func (h Hash) New() hash.Hash {
	switch h {
	case SHA2_256:
		return sha256.New()
	case SHA2_384:
		return sha512.New384()
	case SHA2_512:
		return sha512.New()
	case SHA3_256:
		return sha3.New256()
	case BLAKE2s_256:
		hasher, _ := blake2s.New256(nil)
		return hasher
	case BLAKE2b_256:
		hasher, _ := blake2b.New256(nil)
		return hasher
	case BLAKE3:
		return blake3.New()
	default:
		panic(fmt.Sprintf("invalid hash algorithm: %q", string(h)))
	}
}

// Digest returns the digest of the given data.
func (h Hash) Digest(data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// Size returns the fixed digest size of the algorithm in bytes.
func (h Hash) Size() int {
	return h.New().Size()
}

// Verify checks the given digest against the data in constant time.
func (h Hash) Verify(data, sum []byte) error {
	comparison := h.Digest(data)
	if subtle.ConstantTimeCompare(sum, comparison) != 1 {
		return ErrChecksumMismatch
	}
	return nil
}

func (h Hash) String() string {
	return string(h)
}
