package cask

import "errors"

var (
	ErrAuthCodeInvalid            = errors.New("invalid message authentication code")
	ErrChecksumMismatch           = errors.New("checksum mismatch")
	ErrInvalidFormat              = errors.New("invalid format")
	ErrInvalidPrivateKey          = errors.New("invalid private key")
	ErrInvalidPublicKey           = errors.New("invalid public key")
	ErrKeyDerivation              = errors.New("key derivation failed")
	ErrNoPrivateKey               = errors.New("no private key available")
	ErrNoPublicKey                = errors.New("no public key available")
	ErrRequestedKeyLengthTooSmall = errors.New("requested key length too small")
	ErrUnknownSuite               = errors.New("unknown cipher suite")
)
