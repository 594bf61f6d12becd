package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nezia1/missive/config"
	"github.com/nezia1/missive/internal/auth"
	"github.com/nezia1/missive/internal/messaging"
	"github.com/nezia1/missive/internal/user"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

const refreshCookieName = "refreshToken"

type Server struct {
	config   *config.Config
	logger   *logger.Logger
	users    user.Usecase
	tokens   *auth.TokenUsecase
	messages messaging.Usecase
	presence *messaging.PresenceRegistry
	router   *messaging.Router
}

func New(
	cfg *config.Config,
	logger *logger.Logger,
	users user.Usecase,
	tokens *auth.TokenUsecase,
	messages messaging.Usecase,
	presence *messaging.PresenceRegistry,
	router *messaging.Router,
) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		users:    users,
		tokens:   tokens,
		messages: messages,
		presence: presence,
		router:   router,
	}
}

// Routes wires every endpoint with its permission requirements stated at the
// registration site.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	authed := Authenticate(s.tokens, s.logger)

	// Public surface.
	mux.Handle("POST /api/v1/users", Handler(s.handleRegister))
	mux.Handle("POST /api/v1/tokens", Handler(s.handleLogin))
	mux.Handle("PUT /api/v1/tokens", Handler(s.handleRefresh))

	protected := func(h Handler, required ...auth.Permission) http.Handler {
		return authed(RequirePermissions(required...)(h))
	}

	mux.Handle("GET /api/v1/users", protected(s.handleSearchUsers, auth.PermissionProfileRead))
	mux.Handle("GET /api/v1/users/{id}", protected(s.handleGetUser, auth.PermissionProfileRead))
	mux.Handle("PATCH /api/v1/users/{id}", protected(s.handleUpdateUser, auth.PermissionProfileWrite))
	mux.Handle("DELETE /api/v1/users/{id}", protected(s.handleDeleteUser, auth.PermissionProfileWrite))

	mux.Handle("GET /api/v1/users/{name}/keys", protected(s.handleFetchKeyBundle, auth.PermissionKeysRead))
	mux.Handle("POST /api/v1/users/{name}/keys", protected(s.handlePublishKeyBundle, auth.PermissionKeysWrite))
	mux.Handle("GET /api/v1/users/{name}/keys/count", protected(s.handlePreKeyCount, auth.PermissionKeysRead))

	mux.Handle("GET /api/v1/users/{name}/messages", protected(s.handleDrainMessages, auth.PermissionMessagesRead))
	mux.Handle("GET /api/v1/users/{name}/messages/status", protected(s.handleMessageStatuses, auth.PermissionMessagesRead))

	mux.HandleFunc("GET /ws", s.handleWebsocket)

	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.ErrMalformedPayload
	}
	return nil
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/v1/tokens",
		MaxAge:   int((time.Duration(s.config.Auth.RefreshTTLDays) * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   s.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
	})
}

type registerRequest struct {
	Name              string `json:"name"`
	Password          string `json:"password"`
	NotificationToken string `json:"notificationToken,omitempty"`
	IdentityKey       []byte `json:"identityKey,omitempty"`
	RegistrationID    uint32 `json:"registrationId,omitempty"`
}

type registerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AccessToken string    `json:"accessToken"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	profile, err := s.users.Register(r.Context(), user.RegisterCommand{
		Username:          req.Name,
		Password:          req.Password,
		NotificationToken: req.NotificationToken,
		IdentityKey:       req.IdentityKey,
		RegistrationID:    req.RegistrationID,
	})
	if err != nil {
		return err
	}

	// A fresh account is already authenticated.
	tokens, err := s.tokens.IssueForUser(r.Context(), profile.ID)
	if err != nil {
		return err
	}

	s.setRefreshCookie(w, tokens.RefreshToken)
	writeJSON(w, http.StatusCreated, registerResponse{
		ID:          profile.ID,
		Name:        profile.Username,
		AccessToken: tokens.AccessToken,
	})
	return nil
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Totp     string `json:"totp,omitempty"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	TotpRequired bool   `json:"totpRequired,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	tokens, err := s.tokens.IssueTokens(r.Context(), auth.IssueCommand{
		Username: req.Name,
		Password: req.Password,
		TotpCode: req.Totp,
	})
	if err != nil {
		return err
	}

	// Correct password but TOTP pending: not a failure, the client should
	// prompt for a code and retry.
	if tokens.TotpRequired {
		writeJSON(w, http.StatusOK, loginResponse{TotpRequired: true})
		return nil
	}

	s.setRefreshCookie(w, tokens.RefreshToken)
	writeJSON(w, http.StatusCreated, loginResponse{AccessToken: tokens.AccessToken})
	return nil
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		return errors.ErrUnauthenticated
	}

	tokens, err := s.tokens.RefreshAccessToken(r.Context(), cookie.Value)
	if err != nil {
		return err
	}

	s.setRefreshCookie(w, tokens.RefreshToken)
	writeJSON(w, http.StatusCreated, loginResponse{AccessToken: tokens.AccessToken})
	return nil
}

// pathUserID parses the {id} segment and enforces that it names the
// authenticated user. Profiles are not readable across accounts.
func pathUserID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, errors.InvalidArg("invalid user id")
	}
	u := UserFromContext(r.Context())
	if u == nil || u.ID != id {
		return uuid.Nil, errors.ErrForbidden
	}
	return id, nil
}

// pathUsername enforces that the {name} segment names the authenticated user.
func pathUsername(r *http.Request) (string, error) {
	name := r.PathValue("name")
	u := UserFromContext(r.Context())
	if u == nil || u.Username != name {
		return "", errors.ErrForbidden
	}
	return name, nil
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUserID(r)
	if err != nil {
		return err
	}
	profile, err := s.users.GetProfile(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, profile)
	return nil
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("search")
	if query == "" {
		return errors.InvalidArg("search query is required")
	}
	u := UserFromContext(r.Context())
	profiles, err := s.users.SearchUsers(r.Context(), query, u.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, profiles)
	return nil
}

type updateUserRequest struct {
	Totp              bool    `json:"totp,omitempty"`
	Password          string  `json:"password,omitempty"`
	NotificationToken *string `json:"notificationToken,omitempty"`
}

type updateUserResponse struct {
	TotpURL string `json:"totpUrl,omitempty"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUserID(r)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	result, err := s.users.UpdateProfile(r.Context(), id, user.UpdateProfileCommand{
		EnableTotp:        req.Totp,
		Password:          req.Password,
		NotificationToken: req.NotificationToken,
	})
	if err != nil {
		return err
	}

	// The enrollment URL is shown exactly once.
	writeJSON(w, http.StatusOK, updateUserResponse{TotpURL: result.TotpURL})
	return nil
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := pathUserID(r)
	if err != nil {
		return err
	}
	if err := s.users.DeleteAccount(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) handleFetchKeyBundle(w http.ResponseWriter, r *http.Request) error {
	// Bundles belong to the peer being contacted, so no ownership check.
	bundle, err := s.users.FetchKeyBundle(r.Context(), r.PathValue("name"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, bundle)
	return nil
}

type publishBundleRequest struct {
	IdentityKey    []byte `json:"identityKey"`
	RegistrationID uint32 `json:"registrationId"`
	SignedPreKey   *struct {
		KeyID     uint32 `json:"keyId"`
		PublicKey []byte `json:"publicKey"`
		Signature []byte `json:"signature"`
	} `json:"signedPreKey,omitempty"`
	OneTimePreKeys []struct {
		KeyID     uint32 `json:"keyId"`
		PublicKey []byte `json:"publicKey"`
	} `json:"oneTimePreKeys,omitempty"`
}

func (s *Server) handlePublishKeyBundle(w http.ResponseWriter, r *http.Request) error {
	if _, err := pathUsername(r); err != nil {
		return err
	}

	var req publishBundleRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	cmd := user.PublishBundleCommand{
		IdentityKey:    req.IdentityKey,
		RegistrationID: req.RegistrationID,
	}
	if req.SignedPreKey != nil {
		cmd.SignedPreKey = &user.SignedPreKeyUpload{
			KeyID:     req.SignedPreKey.KeyID,
			PublicKey: req.SignedPreKey.PublicKey,
			Signature: req.SignedPreKey.Signature,
		}
	}
	for _, otpk := range req.OneTimePreKeys {
		cmd.OneTimePreKeys = append(cmd.OneTimePreKeys, user.OneTimePreKeyUpload{
			KeyID:     otpk.KeyID,
			PublicKey: otpk.PublicKey,
		})
	}

	u := UserFromContext(r.Context())
	if err := s.users.PublishKeyBundle(r.Context(), u.ID, cmd); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) handlePreKeyCount(w http.ResponseWriter, r *http.Request) error {
	if _, err := pathUsername(r); err != nil {
		return err
	}
	u := UserFromContext(r.Context())
	count, err := s.users.RemainingPreKeyCount(r.Context(), u.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
	return nil
}

func (s *Server) handleDrainMessages(w http.ResponseWriter, r *http.Request) error {
	if _, err := pathUsername(r); err != nil {
		return err
	}
	u := UserFromContext(r.Context())
	messages, err := s.messages.DrainPendingMessages(r.Context(), u.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, messages)
	return nil
}

func (s *Server) handleMessageStatuses(w http.ResponseWriter, r *http.Request) error {
	if _, err := pathUsername(r); err != nil {
		return err
	}
	u := UserFromContext(r.Context())
	statuses, err := s.messages.MessageStatuses(r.Context(), u.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, statuses)
	return nil
}
