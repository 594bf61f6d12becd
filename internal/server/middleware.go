package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nezia1/missive/internal/auth"
	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

// Handler wraps handlers that return error. The error is translated into a
// JSON body and a status derived from its code.
type Handler func(http.ResponseWriter, *http.Request) error

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h(w, r); err != nil {
		WriteError(w, err)
	}
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func statusFromCode(code errors.Code) int {
	switch code {
	case errors.CodeInvalidArgument, errors.CodeFailedPrecondition:
		return http.StatusBadRequest
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists:
		return http.StatusConflict
	case errors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	message := err.Error()
	if code == errors.CodeUnknown || code == errors.CodeInternal {
		// Internal details never leave the process.
		message = "internal server error"
	}
	writeJSON(w, statusFromCode(code), errorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Chain middlewares

type Middleware func(http.Handler) http.Handler

func Chain(mws ...Middleware) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

type ctxKey int

const (
	userKey ctxKey = iota
	scopeKey
)

// UserFromContext returns the authenticated user, or nil outside the
// Authenticate middleware.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

func ScopeFromContext(ctx context.Context) []auth.Permission {
	s, _ := ctx.Value(scopeKey).([]auth.Permission)
	return s
}

// BearerToken extracts the access token from the Authorization header, or
// from the token query parameter for clients that cannot set headers.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// Authenticator resolves an access token into a live user and its scope.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, []auth.Permission, error)
}

// Authenticate rejects requests without a valid access token and injects the
// subject and scope into the request context.
func Authenticate(tokens Authenticator, logger *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				WriteError(w, errors.ErrUnauthenticated)
				return
			}
			u, scope, err := tokens.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug("authentication rejected", "err", err)
				WriteError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, u)
			ctx = context.WithValue(ctx, scopeKey, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermissions guards a handler behind an explicit permission list.
// Every route states its requirements at the registration site.
func RequirePermissions(required ...auth.Permission) func(Handler) Handler {
	return func(next Handler) Handler {
		return func(w http.ResponseWriter, r *http.Request) error {
			if err := auth.Authorize(ScopeFromContext(r.Context()), required); err != nil {
				return err
			}
			return next(w, r)
		}
	}
}
