package cask

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// SignatureScheme selects a credential signing algorithm. Signing keys are
// independent of the cipher suites, so the scheme is chosen separately.
type SignatureScheme string

const (
	SignatureSchemeEd25519 SignatureScheme = "ED25519"
)

func AllSignatureSchemes() []SignatureScheme {
	return []SignatureScheme{
		SignatureSchemeEd25519,
	}
}

func (ss SignatureScheme) IsValid() bool {
	switch ss {
	case SignatureSchemeEd25519:
		return true
	}
	return false
}

func (ss SignatureScheme) String() string {
	return string(ss)
}

// SigningKeyPair signs and verifies credential data.
type SigningKeyPair interface {
	Scheme() SignatureScheme

	HasPrivate() bool
	ToPublic() SigningKeyPair

	Sign(data []byte) (sig []byte, err error)
	Verify(data, sig []byte) error

	Export() (*StoredKey, error)
	Burn()
}

// New generates a new signing key pair of the scheme.
func (ss SignatureScheme) New() (SigningKeyPair, error) {
	if !ss.IsValid() {
		return nil, fmt.Errorf("invalid signature scheme: %q", ss)
	}

	switch ss {
	case SignatureSchemeEd25519:
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &Ed25519KeyPair{
			pubKey:  pub,
			privKey: priv,
		}, nil

	default:
		return nil, fmt.Errorf("signature scheme %s not yet implemented", ss)
	}
}

// LoadSigningKeyPair loads a signing key pair from its stored form.
func LoadSigningKeyPair(stored *StoredKey) (SigningKeyPair, error) {
	scheme, ok := FindStoredKeyType(stored, AllSignatureSchemes())
	if !ok {
		return nil, fmt.Errorf("%w: unknown signature scheme %q", ErrInvalidFormat, stored.Type)
	}

	switch scheme {
	case SignatureSchemeEd25519:
		key := &Ed25519KeyPair{}
		if stored.IsPrivate {
			if len(stored.Key) != ed25519.PrivateKeySize {
				return nil, ErrInvalidPrivateKey
			}
			key.privKey = stored.Key
			key.pubKey = key.privKey.Public().(ed25519.PublicKey)
		} else {
			if len(stored.Key) != ed25519.PublicKeySize {
				return nil, ErrInvalidPublicKey
			}
			key.pubKey = stored.Key
		}
		return key, nil

	default:
		return nil, fmt.Errorf("signature scheme %s not yet implemented", scheme)
	}
}

type Ed25519KeyPair struct {
	pubKey  ed25519.PublicKey
	privKey ed25519.PrivateKey
}

func (edkp *Ed25519KeyPair) Scheme() SignatureScheme {
	return SignatureSchemeEd25519
}

func (edkp *Ed25519KeyPair) HasPrivate() bool {
	return edkp.privKey != nil
}

func (edkp *Ed25519KeyPair) ToPublic() SigningKeyPair {
	return &Ed25519KeyPair{
		pubKey: edkp.pubKey,
	}
}

func (edkp *Ed25519KeyPair) Sign(data []byte) (sig []byte, err error) {
	if edkp.privKey == nil {
		return nil, ErrNoPrivateKey
	}
	return edkp.privKey.Sign(rand.Reader, data, &ed25519.Options{})
}

func (edkp *Ed25519KeyPair) Verify(data, sig []byte) error {
	if edkp.pubKey == nil {
		return ErrNoPublicKey
	}
	return ed25519.VerifyWithOptions(edkp.pubKey, data, sig, &ed25519.Options{})
}

func (edkp *Ed25519KeyPair) Export() (*StoredKey, error) {
	stored := &StoredKey{
		Type:      string(edkp.Scheme()),
		IsPrivate: edkp.HasPrivate(),
	}
	if stored.IsPrivate {
		stored.Key = edkp.privKey
	} else {
		if edkp.pubKey == nil {
			return nil, ErrNoPublicKey
		}
		stored.Key = edkp.pubKey
	}
	return stored, nil
}

func (edkp *Ed25519KeyPair) Burn() {
	// TODO: Use guaranteed memory wiping as soon as Go supports it.
	clear(edkp.privKey)
	clear(edkp.pubKey)
	edkp.privKey = nil
	edkp.pubKey = nil
}
