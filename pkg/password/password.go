package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Argon2id parameters used for all newly stored hashes.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1
	argonKeyLen  = 32
	saltLen      = 16
)

// Legacy ASP.NET Identity v3 hashes: PBKDF2-HMAC-SHA256, 10000 iterations,
// base64 payload with a 13-byte header, 16-byte salt, then the subkey.
const (
	legacyIterations = 10000
	legacySaltStart  = 13
	legacySaltEnd    = 29
)

const argonPrefix = "$argon2"

var (
	ErrMalformedHash = errors.New("malformed password hash")
	ErrIncompatible  = errors.New("incompatible argon2 parameters")
)

// Hash derives an argon2id hash in the standard encoded form
// ($argon2id$v=19$m=...,t=...,p=...$salt$key) with a fresh random salt.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks a plaintext password against a stored hash, dispatching on
// the hash format: argon2 encoded strings take the modern path, anything
// else is treated as a legacy ASP.NET Identity hash.
func Verify(plain, stored string) (bool, error) {
	if strings.HasPrefix(stored, argonPrefix) {
		return verifyArgon2(plain, stored)
	}
	return verifyLegacy(plain, stored)
}

// IsLegacy reports whether a stored hash still uses the pre-migration
// scheme and should be re-hashed on the next successful login.
func IsLegacy(stored string) bool {
	return !strings.HasPrefix(stored, argonPrefix)
}

func verifyArgon2(plain, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, ErrMalformedHash
	}
	// Only argon2id is ever written; an argon2i hash would derive a
	// different key and must not silently fail the comparison.
	if parts[1] != "argon2id" {
		return false, ErrIncompatible
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedHash
	}
	if version != argon2.Version {
		return false, ErrIncompatible
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(plain), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func verifyLegacy(plain, encoded string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, ErrMalformedHash
	}
	if len(raw) <= legacySaltEnd {
		return false, ErrMalformedHash
	}

	salt := raw[legacySaltStart:legacySaltEnd]
	want := raw[legacySaltEnd:]

	got := pbkdf2.Key([]byte(plain), salt, legacyIterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

const randomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$"

// Random generates a random password of the given length for newly created
// employees and admin-triggered resets.
func Random(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = randomAlphabet[int(b)%len(randomAlphabet)]
	}
	return string(out), nil
}
