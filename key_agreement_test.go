package cask

import (
	"bytes"
	"errors"
	"testing"
)

func allKeyAgreements() []KeyAgreement {
	return []KeyAgreement{
		KeyAgreementX25519,
		KeyAgreementP256,
	}
}

func TestKeyAgreementGenerateAndDH(t *testing.T) {
	t.Parallel()

	for _, ka := range allKeyAgreements() {
		t.Run(ka.Name(), func(t *testing.T) {
			alice, err := ka.GenerateKeyPair()
			if err != nil {
				t.Fatal(err)
			}
			bob, err := ka.GenerateKeyPair()
			if err != nil {
				t.Fatal(err)
			}

			// Both sides must agree on the shared secret.
			aliceSecret, err := ka.SharedSecret(alice.Private, bob.Public)
			if err != nil {
				t.Fatal(err)
			}
			bobSecret, err := ka.SharedSecret(bob.Private, alice.Public)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(aliceSecret, bobSecret) {
				t.Fatal("shared secrets differ")
			}

			// Encoded sizes match the declared sizes.
			if len(alice.Public.Bytes()) != ka.PublicKeySize() {
				t.Fatalf(
					"public key has %d bytes, want %d",
					len(alice.Public.Bytes()), ka.PublicKeySize(),
				)
			}
			if len(alice.Private.Bytes()) != ka.PrivateKeySize() {
				t.Fatalf(
					"private key has %d bytes, want %d",
					len(alice.Private.Bytes()), ka.PrivateKeySize(),
				)
			}
		})
	}
}

func TestPrivateKeyFromBytesRejectsBadLength(t *testing.T) {
	t.Parallel()

	for _, ka := range allKeyAgreements() {
		t.Run(ka.Name(), func(t *testing.T) {
			for _, length := range []int{0, 16, 31, 33, 64} {
				_, err := ka.PrivateKeyFromBytes(make([]byte, length))
				if !errors.Is(err, ErrInvalidPrivateKey) {
					t.Fatalf("expected invalid private key error for %d bytes, got %v", length, err)
				}
			}
		})
	}
}

func TestPrivateKeyFromBytesRejectsForbiddenScalars(t *testing.T) {
	t.Parallel()

	// Zero is not a valid P-256 scalar, and all-ones exceeds the group order.
	zero := make([]byte, 32)
	ones := bytes.Repeat([]byte{0xff}, 32)

	for _, scalar := range [][]byte{zero, ones} {
		if _, err := KeyAgreementP256.PrivateKeyFromBytes(scalar); !errors.Is(err, ErrInvalidPrivateKey) {
			t.Fatalf("expected P256 to reject scalar %x, got %v", scalar, err)
		}
	}
}

func TestPublicKeyFromBytesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ka := range allKeyAgreements() {
		t.Run(ka.Name(), func(t *testing.T) {
			kp, err := ka.GenerateKeyPair()
			if err != nil {
				t.Fatal(err)
			}

			parsed, err := ka.PublicKeyFromBytes(kp.Public.Bytes())
			if err != nil {
				t.Fatal(err)
			}
			if !parsed.Equal(kp.Public) {
				t.Fatal("parsed public key differs")
			}

			if _, err := ka.PublicKeyFromBytes([]byte{0x01, 0x02}); !errors.Is(err, ErrInvalidPublicKey) {
				t.Fatalf("expected invalid public key error, got %v", err)
			}
		})
	}
}

func TestDerivePublicKeyIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, ka := range allKeyAgreements() {
		t.Run(ka.Name(), func(t *testing.T) {
			kp, err := ka.GenerateKeyPair()
			if err != nil {
				t.Fatal(err)
			}

			first := ka.DerivePublicKey(kp.Private)
			second := ka.DerivePublicKey(kp.Private)
			if !first.Equal(second) || !first.Equal(kp.Public) {
				t.Fatal("public key derivation is not deterministic")
			}
		})
	}
}
