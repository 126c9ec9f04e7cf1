package cask

import (
	"crypto/hmac"
	"crypto/subtle"
	"hash"
)

// NewMAC returns a keyed HMAC over the suite hash.
func (s *CipherSuite) NewMAC(key []byte) hash.Hash {
	return hmac.New(s.hash.New, key)
}

// MAC computes the HMAC of the given data under the given key, using the
// suite hash.
func (s *CipherSuite) MAC(key, data []byte) []byte {
	mac := s.NewMAC(key)
	mac.Write(data)
	return mac.Sum(nil)
}

// VerifyMAC checks the given authentication code in constant time.
func (s *CipherSuite) VerifyMAC(key, data, code []byte) error {
	comparison := s.MAC(key, data)
	if subtle.ConstantTimeCompare(code, comparison) != 1 {
		return ErrAuthCodeInvalid
	}
	return nil
}
