package cask

import (
	"bytes"
	"errors"
	"testing"
)

var aeadTestData = []byte("The quick brown fox jumps over the lazy dog.")

func allAEADs() []AuthenticatedEncryption {
	return []AuthenticatedEncryption{
		AES128GCM,
		ChaCha20Poly1305,
	}
}

func TestAEADSealOpen(t *testing.T) {
	t.Parallel()

	for _, aead := range allAEADs() {
		t.Run(aead.Name(), func(t *testing.T) {
			key := NewSeed(aead.KeySize())[:aead.KeySize()]
			nonce := make([]byte, aead.NonceSize())
			additionalData := []byte("header")

			ciphertext, err := aead.Seal(key, nonce, additionalData, aeadTestData)
			if err != nil {
				t.Fatal(err)
			}
			if len(ciphertext) != len(aeadTestData)+aead.Overhead() {
				t.Fatalf(
					"ciphertext has %d bytes, want %d",
					len(ciphertext), len(aeadTestData)+aead.Overhead(),
				)
			}

			plaintext, err := aead.Open(key, nonce, additionalData, ciphertext)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(plaintext, aeadTestData) {
				t.Fatal("opened plaintext differs")
			}
		})
	}
}

func TestAEADOpenFailsAtomically(t *testing.T) {
	t.Parallel()

	for _, aead := range allAEADs() {
		t.Run(aead.Name(), func(t *testing.T) {
			key := NewSeed(aead.KeySize())[:aead.KeySize()]
			nonce := make([]byte, aead.NonceSize())

			ciphertext, err := aead.Seal(key, nonce, nil, aeadTestData)
			if err != nil {
				t.Fatal(err)
			}

			// Flipped ciphertext bit.
			tampered := bytes.Clone(ciphertext)
			tampered[0] ^= 0x01
			plaintext, err := aead.Open(key, nonce, nil, tampered)
			if !errors.Is(err, ErrAuthCodeInvalid) {
				t.Fatalf("expected auth failure, got %v", err)
			}
			if plaintext != nil {
				t.Fatal("got partial plaintext on auth failure")
			}

			// Mismatched additional data.
			if _, err := aead.Open(key, nonce, []byte("other"), ciphertext); !errors.Is(err, ErrAuthCodeInvalid) {
				t.Fatalf("expected auth failure on AD mismatch, got %v", err)
			}

			// Wrong key and nonce sizes are rejected outright.
			if _, err := aead.Seal(key[:aead.KeySize()-1], nonce, nil, aeadTestData); err == nil {
				t.Fatal("expected error for short key")
			}
			if _, err := aead.Seal(key, nonce[:aead.NonceSize()-1], nil, aeadTestData); err == nil {
				t.Fatal("expected error for short nonce")
			}
		})
	}
}
