package password_test

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"backend/pkg/password"
)

// legacyHash builds an ASP.NET Identity v3 style hash: 13 header bytes, a
// 16-byte salt, then the PBKDF2-HMAC-SHA256 subkey, all base64 encoded.
func legacyHash(plain string, salt []byte) string {
	header := make([]byte, 13)
	subkey := pbkdf2.Key([]byte(plain), salt, 10000, 32, sha256.New)

	raw := make([]byte, 0, 13+len(salt)+len(subkey))
	raw = append(raw, header...)
	raw = append(raw, salt...)
	raw = append(raw, subkey...)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-Pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	t.Run("correct password verifies", func(t *testing.T) {
		ok, err := password.Verify("s3cret-Pass", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		ok, err := password.Verify("wrong", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := password.Hash("s3cret-Pass")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})

	t.Run("argon2i variant is incompatible, not a silent mismatch", func(t *testing.T) {
		variant := strings.Replace(hash, "$argon2id$", "$argon2i$", 1)
		_, err := password.Verify("s3cret-Pass", variant)
		assert.ErrorIs(t, err, password.ErrIncompatible)
	})
}

func TestVerifyLegacy(t *testing.T) {
	salt := []byte("0123456789abcdef")
	stored := legacyHash("OldPassword1", salt)

	t.Run("correct password verifies", func(t *testing.T) {
		ok, err := password.Verify("OldPassword1", stored)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		ok, err := password.Verify("OldPassword2", stored)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("garbage hash is malformed", func(t *testing.T) {
		_, err := password.Verify("anything", "not base64!!")
		assert.ErrorIs(t, err, password.ErrMalformedHash)
	})

	t.Run("too short payload is malformed", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte("short"))
		_, err := password.Verify("anything", short)
		assert.ErrorIs(t, err, password.ErrMalformedHash)
	})
}

func TestIsLegacy(t *testing.T) {
	modern, err := password.Hash("x")
	require.NoError(t, err)

	assert.False(t, password.IsLegacy(modern))
	assert.True(t, password.IsLegacy(legacyHash("x", []byte("0123456789abcdef"))))
}

func TestRandom(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$"

	got, err := password.Random(8)
	require.NoError(t, err)
	assert.Len(t, got, 8)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}

	other, err := password.Random(8)
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}
