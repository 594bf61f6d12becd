package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"github.com/nezia1/missive/config"
)

const (
	saltLength = 16
	keyLength  = 32
)

// PasswordHasher hashes and verifies passwords with argon2id. Parameters are
// embedded in the encoded hash, so they can be tuned without invalidating
// existing hashes.
type PasswordHasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

func NewPasswordHasher(cfg config.Argon2) *PasswordHasher {
	return &PasswordHasher{
		time:    cfg.Time,
		memory:  cfg.MemoryKB,
		threads: cfg.Threads,
	}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "passwordHasher.Hash.Read")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify compares password against an encoded argon2id hash in constant time
// with respect to the stored key.
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	var version int
	var memory, time uint32
	var threads uint8
	var saltB64, keyB64 string

	n, err := fmt.Sscanf(encoded, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &memory, &time, &threads, &saltB64)
	if err != nil || n != 5 {
		return false, errors.New("malformed argon2id hash")
	}
	// Sscanf's %s is greedy: saltB64 still holds "salt$key".
	var ok bool
	saltB64, keyB64, ok = cutLast(saltB64)
	if !ok {
		return false, errors.New("malformed argon2id hash")
	}
	if version != argon2.Version {
		return false, errors.Errorf("unsupported argon2 version %d", version)
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false, errors.Wrap(err, "passwordHasher.Verify.DecodeSalt")
	}
	expected, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false, errors.Wrap(err, "passwordHasher.Verify.DecodeKey")
	}

	key := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

func cutLast(s string) (before, after string, found bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '$' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
