package cask

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// KeyAgreement is a DH-like key-agreement capability.
// Implementations are process-wide shared, read-only values that cipher
// suites reference by pointer; they hold no per-call state and may be used
// concurrently without locking.
type KeyAgreement interface {
	// Name returns the name of the key agreement algorithm.
	Name() string

	// PrivateKeySize returns the required private key scalar size in bytes.
	PrivateKeySize() int

	// PublicKeySize returns the encoded public key size in bytes.
	PublicKeySize() int

	// PrivateKeyFromBytes validates the given bytes as a private key scalar
	// of the group. It fails on invalid length and on scalar values the
	// group forbids.
	PrivateKeyFromBytes(scalar []byte) (*DhPrivateKey, error)

	// DerivePublicKey computes the public key matching the given private
	// key. It is deterministic and cannot fail for a validated private key.
	DerivePublicKey(privKey *DhPrivateKey) *DhPublicKey

	// PublicKeyFromBytes parses an encoded public key.
	PublicKeyFromBytes(data []byte) (*DhPublicKey, error)

	// GenerateKeyPair creates a new key pair from random.
	GenerateKeyPair() (*DhKeyPair, error)

	// SharedSecret runs the key agreement between the own private key and
	// the remote public key.
	SharedSecret(privKey *DhPrivateKey, remote *DhPublicKey) ([]byte, error)
}

// Shared key agreement instances used by the cipher suite registry.
var (
	KeyAgreementX25519 KeyAgreement = &ecdhKeyAgreement{
		name:     "X25519",
		curve:    ecdh.X25519(),
		privSize: 32,
		pubSize:  32,
	}
	KeyAgreementP256 KeyAgreement = &ecdhKeyAgreement{
		name:     "P256",
		curve:    ecdh.P256(),
		privSize: 32,
		pubSize:  65,
	}
)

// DhPrivateKey is an opaque key agreement private key.
// Its representation is owned by the key agreement capability that
// created it.
type DhPrivateKey struct {
	key *ecdh.PrivateKey
}

// Bytes returns the private key scalar bytes.
func (privKey *DhPrivateKey) Bytes() []byte {
	return privKey.key.Bytes()
}

// Equal reports whether both private keys hold the same scalar.
// It runs in constant time.
func (privKey *DhPrivateKey) Equal(other *DhPrivateKey) bool {
	return privKey.key.Equal(other.key)
}

// DhPublicKey is an opaque key agreement public key.
type DhPublicKey struct {
	key *ecdh.PublicKey
}

// Bytes returns the encoded public key.
func (pubKey *DhPublicKey) Bytes() []byte {
	return pubKey.key.Bytes()
}

// Equal reports whether both public keys are the same.
func (pubKey *DhPublicKey) Equal(other *DhPublicKey) bool {
	return subtle.ConstantTimeCompare(pubKey.key.Bytes(), other.key.Bytes()) == 1
}

// DhKeyPair is a key agreement key pair. Pairs are created fresh per
// derivation or generation call and are owned by the caller.
type DhKeyPair struct {
	Public  *DhPublicKey
	Private *DhPrivateKey
}

type ecdhKeyAgreement struct {
	name     string
	curve    ecdh.Curve
	privSize int
	pubSize  int
}

func (ka *ecdhKeyAgreement) Name() string {
	return ka.name
}

func (ka *ecdhKeyAgreement) PrivateKeySize() int {
	return ka.privSize
}

func (ka *ecdhKeyAgreement) PublicKeySize() int {
	return ka.pubSize
}

func (ka *ecdhKeyAgreement) PrivateKeyFromBytes(scalar []byte) (*DhPrivateKey, error) {
	if len(scalar) != ka.privSize {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidPrivateKey, ka.name, ka.privSize, len(scalar))
	}

	key, err := ka.curve.NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return &DhPrivateKey{key: key}, nil
}

func (ka *ecdhKeyAgreement) DerivePublicKey(privKey *DhPrivateKey) *DhPublicKey {
	return &DhPublicKey{key: privKey.key.PublicKey()}
}

func (ka *ecdhKeyAgreement) PublicKeyFromBytes(data []byte) (*DhPublicKey, error) {
	key, err := ka.curve.NewPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return &DhPublicKey{key: key}, nil
}

func (ka *ecdhKeyAgreement) GenerateKeyPair() (*DhKeyPair, error) {
	key, err := ka.curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &DhKeyPair{
		Public:  &DhPublicKey{key: key.PublicKey()},
		Private: &DhPrivateKey{key: key},
	}, nil
}

func (ka *ecdhKeyAgreement) SharedSecret(privKey *DhPrivateKey, remote *DhPublicKey) ([]byte, error) {
	return privKey.key.ECDH(remote.key)
}
