package cask

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
)

const nonceCounterSize = 8

// NonceSequence produces unique nonces for an AEAD: a random prefix
// followed by a big-endian 64-bit counter. One sequence must be used per
// key and direction; it is safe for concurrent use.
type NonceSequence struct {
	prefix []byte
	seq    atomic.Uint64
}

// NewNonceSequence returns a new nonce sequence for the given AEAD.
func NewNonceSequence(aead AuthenticatedEncryption) (*NonceSequence, error) {
	prefix := make([]byte, aead.NonceSize()-nonceCounterSize)
	if _, err := rand.Read(prefix); err != nil {
		return nil, err
	}
	return &NonceSequence{prefix: prefix}, nil
}

// Next returns the next nonce in the sequence.
func (ns *NonceSequence) Next() []byte {
	nonce := make([]byte, len(ns.prefix)+nonceCounterSize)
	copy(nonce, ns.prefix)
	binary.BigEndian.PutUint64(nonce[len(ns.prefix):], ns.seq.Add(1))
	return nonce
}
