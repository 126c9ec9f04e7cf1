package cask

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keyMakerBaseContext = "cask key mkr"

	keyMakerMinKeySize = 16
)

// KeyMaker derives context-bound keys from a shared secret.
type KeyMaker interface {
	// Suite returns the cipher suite the key maker derives for.
	Suite() *CipherSuite

	// DeriveKey derives a new key of the given length for the given context
	// and party.
	DeriveKey(keyContext, keyParty string, keyLength int) ([]byte, error)

	// DeriveKeyInto derives a new key for the given context and party into dst.
	DeriveKeyInto(keyContext, keyParty string, dst []byte) error

	// Burn wipes the underlying secret. The key maker must not be used
	// afterwards.
	Burn()
}

// KeyMaker returns a key maker that expands the given secret with
// HKDF over the suite hash. The secret is referenced, not copied.
func (s *CipherSuite) KeyMaker(secret []byte) KeyMaker {
	return &hkdfKeyMaker{
		suite:    s,
		material: secret,
	}
}

type hkdfKeyMaker struct {
	suite    *CipherSuite
	material []byte
}

func (km *hkdfKeyMaker) Suite() *CipherSuite {
	return km.suite
}

func (km *hkdfKeyMaker) DeriveKey(keyContext, keyParty string, keyLength int) ([]byte, error) {
	dst := make([]byte, keyLength)
	return dst, km.DeriveKeyInto(keyContext, keyParty, dst)
}

func (km *hkdfKeyMaker) DeriveKeyInto(keyContext, keyParty string, dst []byte) error {
	if len(dst) < keyMakerMinKeySize {
		return ErrRequestedKeyLengthTooSmall
	}

	expand := hkdf.New(
		km.suite.hash.New,
		km.material,
		nil,
		[]byte(keyMakerBaseContext+keyContext+keyParty),
	)
	if _, err := io.ReadFull(expand, dst); err != nil {
		return fmt.Errorf("derive %d bytes: %w", len(dst), err)
	}
	return nil
}

func (km *hkdfKeyMaker) Burn() {
	clear(km.material)
}
