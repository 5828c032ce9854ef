package services

import (
	"crypto/subtle"
	"errors"

	"github.com/dmitrijs2005/loankeeper/internal/cryptox"
)

// SecretCodec turns a password into the secret kept in the credential
// store and checks passwords against stored secrets.
type SecretCodec interface {
	Encode(password string) (string, error)
	Matches(secret, password string) (bool, error)
}

// PlainCodec stores passwords as given.
type PlainCodec struct{}

func (PlainCodec) Encode(password string) (string, error) { return password, nil }

func (PlainCodec) Matches(secret, password string) (bool, error) {
	return matchSecret(secret, password)
}

// Argon2Codec stores argon2id-derived verifiers (see cryptox.HashPassword).
type Argon2Codec struct{}

func (Argon2Codec) Encode(password string) (string, error) {
	return cryptox.HashPassword([]byte(password)), nil
}

func (Argon2Codec) Matches(secret, password string) (bool, error) {
	return matchSecret(secret, password)
}

// matchSecret accepts both secret forms so that switching codecs never
// locks out users registered under the other one.
func matchSecret(secret, password string) (bool, error) {
	if cryptox.IsHashed(secret) {
		ok, err := cryptox.VerifyPassword(secret, []byte(password))
		if !errors.Is(err, cryptox.ErrMalformedSecret) {
			return ok, err
		}
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1, nil
}

// NewSecretCodec maps a config name ("plain" or "argon2") to a codec.
func NewSecretCodec(name string) (SecretCodec, error) {
	switch name {
	case "", "plain":
		return PlainCodec{}, nil
	case "argon2":
		return Argon2Codec{}, nil
	}
	return nil, errors.New("unknown password hashing: " + name)
}
