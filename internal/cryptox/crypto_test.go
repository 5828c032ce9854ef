package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	require.True(t, bytes.Equal(key1, key2), "same inputs must give the same key")
	require.Len(t, key1, 32)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	require.False(t, bytes.Equal(key1, key2))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	secret := HashPassword([]byte("pw1"))
	require.True(t, IsHashed(secret))
	require.Len(t, strings.Split(secret, "$"), 3)

	ok, err := VerifyPassword(secret, []byte("pw1"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword(secret, []byte("wrong"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	require.NotEqual(t, HashPassword([]byte("pw")), HashPassword([]byte("pw")))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, secret := range []string{"", "plain", "argon2id$zz$00", "argon2id$00$zz", "bcrypt$00$00"} {
		_, err := VerifyPassword(secret, []byte("x"))
		require.ErrorIs(t, err, ErrMalformedSecret, secret)
	}
}
