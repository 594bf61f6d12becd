package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	t.Run("exact scope passes", func(t *testing.T) {
		err := Authorize(
			[]Permission{PermissionProfileRead, PermissionKeysRead},
			[]Permission{PermissionProfileRead, PermissionKeysRead},
		)
		assert.NoError(t, err)
	})

	t.Run("superset scope passes", func(t *testing.T) {
		err := Authorize(DefaultScope, []Permission{PermissionMessagesRead})
		assert.NoError(t, err)
	})

	t.Run("nothing required always passes", func(t *testing.T) {
		assert.NoError(t, Authorize(nil, nil))
		assert.NoError(t, Authorize(DefaultScope, nil))
	})

	t.Run("partial overlap is denied", func(t *testing.T) {
		err := Authorize(
			[]Permission{PermissionProfileRead},
			[]Permission{PermissionProfileRead, PermissionProfileWrite},
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile:write")
	})

	t.Run("empty scope is denied", func(t *testing.T) {
		err := Authorize(nil, []Permission{PermissionKeysRead})
		assert.Error(t, err)
	})
}

func TestMissing(t *testing.T) {
	missing := Missing(
		[]Permission{PermissionProfileRead, PermissionKeysRead},
		[]Permission{PermissionProfileRead, PermissionKeysWrite, PermissionMessagesRead},
	)
	assert.Equal(t, []Permission{PermissionKeysWrite, PermissionMessagesRead}, missing)
}
