package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nezia1/missive/internal/auth"
	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

type stubAuthenticator struct {
	user  *models.User
	scope []auth.Permission
	err   error
}

func (s *stubAuthenticator) Authenticate(context.Context, string) (*models.User, []auth.Permission, error) {
	return s.user, s.scope, s.err
}

func TestHandler_ErrorTranslation(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid argument", errors.ErrMalformedPayload, http.StatusBadRequest},
		{"unauthenticated", errors.ErrAuthenticationFailed, http.StatusUnauthorized},
		{"forbidden", errors.ErrForbidden, http.StatusForbidden},
		{"not found", errors.ErrUserNotFound, http.StatusNotFound},
		{"conflict", errors.ErrUsernameTaken, http.StatusConflict},
		{"unavailable", errors.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Handler(func(http.ResponseWriter, *http.Request) error { return tc.err })

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.err.Error(), body.Error)
		})
	}
}

func TestHandler_InternalErrorsAreOpaque(t *testing.T) {
	h := Handler(func(http.ResponseWriter, *http.Request) error {
		return errors.Internal("pgdriver: connection refused to 10.0.0.5")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mw("outer"), mw("inner"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	alice := &models.User{ID: userID, Username: "alice"}

	t.Run("happy path - user and scope land in context", func(t *testing.T) {
		stub := &stubAuthenticator{user: alice, scope: auth.DefaultScope}

		var gotUser *models.User
		var gotScope []auth.Permission
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser = UserFromContext(r.Context())
			gotScope = ScopeFromContext(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")

		Authenticate(stub, &logger.Logger{})(next).ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, gotUser)
		assert.Equal(t, userID, gotUser.ID)
		assert.ElementsMatch(t, auth.DefaultScope, gotScope)
	})

	t.Run("happy path - token via query parameter", func(t *testing.T) {
		stub := &stubAuthenticator{user: alice, scope: auth.DefaultScope}

		called := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

		req := httptest.NewRequest(http.MethodGet, "/?token=some-token", nil)
		Authenticate(stub, &logger.Logger{})(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, called)
	})

	t.Run("sad path - missing token", func(t *testing.T) {
		stub := &stubAuthenticator{user: alice, scope: auth.DefaultScope}

		rec := httptest.NewRecorder()
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run without a token")
		})

		Authenticate(stub, &logger.Logger{})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sad path - rejected token", func(t *testing.T) {
		stub := &stubAuthenticator{err: errors.ErrExpiredToken}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")

		Authenticate(stub, &logger.Logger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run with a rejected token")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePermissions(t *testing.T) {
	withScope := func(r *http.Request, scope []auth.Permission) *http.Request {
		ctx := context.WithValue(r.Context(), scopeKey, scope)
		return r.WithContext(ctx)
	}

	t.Run("sufficient scope passes", func(t *testing.T) {
		called := false
		h := RequirePermissions(auth.PermissionKeysRead)(func(http.ResponseWriter, *http.Request) error {
			called = true
			return nil
		})

		req := withScope(httptest.NewRequest(http.MethodGet, "/", nil), auth.DefaultScope)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("partial scope is denied", func(t *testing.T) {
		h := RequirePermissions(auth.PermissionKeysRead, auth.PermissionKeysWrite)(func(http.ResponseWriter, *http.Request) error {
			t.Fatal("handler must not run")
			return nil
		})

		req := withScope(httptest.NewRequest(http.MethodGet, "/", nil), []auth.Permission{auth.PermissionKeysRead})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
