package cask

import "fmt"

// CipherSuite binds a key agreement algorithm, a hash algorithm, and an
// authenticated encryption algorithm into one named unit. Protocol code
// references suites by identity and never wires primitives individually.
//
// Suites are defined once as package-level values and are read-only for
// the process lifetime. They may be used concurrently without locking.
type CipherSuite struct {
	name         string
	keyAgreement KeyAgreement
	aead         AuthenticatedEncryption
	hash         Hash
}

// X25519SHA256AES128GCM is the X25519-SHA256-AES128GCM cipher suite.
var X25519SHA256AES128GCM = &CipherSuite{
	name:         "X25519_SHA256_AES128GCM",
	keyAgreement: KeyAgreementX25519,
	aead:         AES128GCM,
	hash:         SHA2_256,
}

// X25519SHA256ChaCha20Poly1305 is the X25519-SHA256-CHACHA20POLY1305
// cipher suite.
var X25519SHA256ChaCha20Poly1305 = &CipherSuite{
	name:         "X25519_SHA256_CHACHA20POLY1305",
	keyAgreement: KeyAgreementX25519,
	aead:         ChaCha20Poly1305,
	hash:         SHA2_256,
}

// P256SHA256AES128GCM is the P256-SHA256-AES128GCM cipher suite.
// It is reserved for internal protocol use and is not advertised to peers.
var P256SHA256AES128GCM = &CipherSuite{
	name:         "P256_SHA256_AES128GCM",
	keyAgreement: KeyAgreementP256,
	aead:         AES128GCM,
	hash:         SHA2_256,
}

// Suites returns all registered cipher suites.
// Registry construction keeps suite names unique and pairs every hash with
// a key agreement group whose private key size equals the digest size.
func Suites() []*CipherSuite {
	return []*CipherSuite{
		X25519SHA256AES128GCM,
		X25519SHA256ChaCha20Poly1305,
		P256SHA256AES128GCM,
	}
}

// AdvertisedSuites returns the cipher suites that may be offered to peers
// during suite negotiation.
func AdvertisedSuites() []*CipherSuite {
	return []*CipherSuite{
		X25519SHA256AES128GCM,
		X25519SHA256ChaCha20Poly1305,
	}
}

// SuiteByName returns the registered cipher suite with the given name.
// Names are the wire-visible suite identifiers and must match byte-exact.
func SuiteByName(name string) (suite *CipherSuite, ok bool) {
	for _, suite := range Suites() {
		if suite.name == name {
			return suite, true
		}
	}
	return nil, false
}

// Name returns the name of the cipher suite.
// The name is the sole identity of the suite and its wire-visible
// identifier in negotiation lists.
func (s *CipherSuite) Name() string {
	return s.name
}

// KeyAgreement returns the key agreement capability of this suite.
func (s *CipherSuite) KeyAgreement() KeyAgreement {
	return s.keyAgreement
}

// AEAD returns the authenticated encryption capability of this suite.
func (s *CipherSuite) AEAD() AuthenticatedEncryption {
	return s.aead
}

// Hash returns the hash algorithm of this suite.
func (s *CipherSuite) Hash() Hash {
	return s.hash
}

// Equal reports whether both suites have the same name.
// Equality deliberately ignores the wired capabilities so that suite lists
// can be deduplicated by identifier alone. Nothing here enforces that two
// suites with the same name are wired identically; keeping names unique is
// the registry's responsibility.
func (s *CipherSuite) Equal(other *CipherSuite) bool {
	return s.name == other.name
}

// DeriveKeyPair deterministically derives a key agreement key pair from
// the given bytes: the suite hash of the input becomes the private key
// scalar, and the public key follows from it.
//
// The same input always yields the same pair under the same suite. This is
// meant for turning a known seed or shared value into a reproducible key
// pair; use the key agreement's own key generation when random keys are
// required.
func (s *CipherSuite) DeriveKeyPair(material []byte) (*DhKeyPair, error) {
	digest := s.hash.Digest(material)

	privKey, err := s.keyAgreement.PrivateKeyFromBytes(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	pubKey := s.keyAgreement.DerivePublicKey(privKey)

	return &DhKeyPair{
		Public:  pubKey,
		Private: privKey,
	}, nil
}

// String returns the suite name and nothing else.
// Wired capabilities must never leak into log output, as implementations
// may hold key material.
func (s *CipherSuite) String() string {
	return s.name
}

// GoString returns the suite name, keeping %#v output as safe as %v.
func (s *CipherSuite) GoString() string {
	return s.name
}
