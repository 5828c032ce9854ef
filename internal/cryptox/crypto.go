// Package cryptox holds the key-derivation primitives used to protect
// password secrets at rest.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/loankeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes used as an argon2 salt.
const SaltSize = 32

const argon2Prefix = "argon2id"

// ErrMalformedSecret is returned when a stored secret cannot be decoded.
var ErrMalformedSecret = errors.New("malformed password secret")

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself is never stored.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword returns a self-describing secret of the form
// argon2id$<salt-hex>$<verifier-hex>.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	return strings.Join([]string{
		argon2Prefix,
		hex.EncodeToString(salt),
		hex.EncodeToString(MakeVerifier(key)),
	}, "$")
}

// VerifyPassword checks password against a secret produced by HashPassword.
func VerifyPassword(secret string, password []byte) (bool, error) {
	parts := strings.Split(secret, "$")
	if len(parts) != 3 || parts[0] != argon2Prefix {
		return false, ErrMalformedSecret
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedSecret
	}
	verifier, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedSecret
	}

	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	return subtle.ConstantTimeCompare(verifier, MakeVerifier(key)) == 1, nil
}

// IsHashed reports whether secret looks like a HashPassword output.
func IsHashed(secret string) bool {
	return strings.HasPrefix(secret, argon2Prefix+"$")
}
