package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nezia1/missive/config"
)

func testHasher() *PasswordHasher {
	// Small parameters keep the test fast; production values come from config.
	return NewPasswordHasher(config.Argon2{Time: 1, MemoryKB: 8 * 1024, Threads: 1})
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := h.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsDiffer(t *testing.T) {
	h := testHasher()

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_ParamsComeFromHash(t *testing.T) {
	// A hash produced under one parameter set must verify under a hasher
	// configured with another.
	old := NewPasswordHasher(config.Argon2{Time: 2, MemoryKB: 16 * 1024, Threads: 2})
	encoded, err := old.Hash("password123")
	require.NoError(t, err)

	ok, err := testHasher().Verify("password123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := testHasher()

	for _, encoded := range []string{"", "plainhash", "$argon2id$v=19$nope"} {
		_, err := h.Verify("password123", encoded)
		assert.Error(t, err, "hash %q should be rejected", encoded)
	}
}
