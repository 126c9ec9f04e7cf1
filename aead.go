package cask

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AuthenticatedEncryption is an AEAD capability.
// Implementations are process-wide shared, read-only values that cipher
// suites reference by pointer; keys are passed per call.
type AuthenticatedEncryption interface {
	// Name returns the name of the AEAD algorithm.
	Name() string

	// KeySize returns the required key size in bytes.
	KeySize() int

	// NonceSize returns the required nonce size in bytes.
	NonceSize() int

	// Overhead returns the authentication tag overhead in bytes.
	Overhead() int

	// Seal encrypts and authenticates the plaintext, authenticating the
	// additional data alongside it.
	Seal(key, nonce, additionalData, plaintext []byte) ([]byte, error)

	// Open decrypts and verifies the ciphertext. On any authentication
	// failure it returns an error and no partial plaintext.
	Open(key, nonce, additionalData, ciphertext []byte) ([]byte, error)
}

// Shared AEAD instances used by the cipher suite registry.
var (
	AES128GCM AuthenticatedEncryption = &aeadCipher{
		name:    "AES128GCM",
		keySize: 16,
		newAEAD: newAESGCM,
	}
	ChaCha20Poly1305 AuthenticatedEncryption = &aeadCipher{
		name:    "CHACHA20POLY1305",
		keySize: chacha20poly1305.KeySize,
		newAEAD: chacha20poly1305.New,
	}
)

type aeadCipher struct {
	name    string
	keySize int
	newAEAD func(key []byte) (cipher.AEAD, error)
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (ac *aeadCipher) Name() string {
	return ac.name
}

func (ac *aeadCipher) KeySize() int {
	return ac.keySize
}

func (ac *aeadCipher) NonceSize() int {
	return 12
}

func (ac *aeadCipher) Overhead() int {
	return 16
}

func (ac *aeadCipher) instance(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != ac.keySize {
		return nil, fmt.Errorf("%w: %s needs a %d byte key, got %d", ErrInvalidFormat, ac.name, ac.keySize, len(key))
	}
	if len(nonce) != ac.NonceSize() {
		return nil, fmt.Errorf("%w: %s needs a %d byte nonce, got %d", ErrInvalidFormat, ac.name, ac.NonceSize(), len(nonce))
	}
	return ac.newAEAD(key)
}

func (ac *aeadCipher) Seal(key, nonce, additionalData, plaintext []byte) ([]byte, error) {
	aead, err := ac.instance(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, additionalData), nil
}

func (ac *aeadCipher) Open(key, nonce, additionalData, ciphertext []byte) ([]byte, error) {
	aead, err := ac.instance(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthCodeInvalid, err)
	}
	return plaintext, nil
}
