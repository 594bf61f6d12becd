package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nezia1/missive/internal/user"
	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/internal/user/repository"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

type IssueCommand struct {
	Username string
	Password string
	TotpCode string
}

// Tokens is the result of a successful issuance. TotpRequired is the
// distinguished "supply a code and retry" branch, not a failure: the password
// was correct and the client should prompt without burning the attempt.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	TotpRequired bool
}

type TokenUsecase struct {
	repo   user.Repository
	signer *Signer
	hasher *PasswordHasher
	logger *logger.Logger
}

func NewTokenUsecase(repo user.Repository, signer *Signer, hasher *PasswordHasher, logger *logger.Logger) *TokenUsecase {
	return &TokenUsecase{repo: repo, signer: signer, hasher: hasher, logger: logger}
}

// IssueTokens authenticates name+password (and TOTP when enabled) and mints
// an access/refresh token pair. Unknown user and wrong password fail with the
// same error so the response never reveals which factor was wrong.
func (uc *TokenUsecase) IssueTokens(ctx context.Context, cmd IssueCommand) (*Tokens, error) {
	u, err := uc.repo.GetUserByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrAuthenticationFailed
		}
		uc.logger.Error("failed to look up user", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	ok, err := uc.hasher.Verify(cmd.Password, u.PasswordHash)
	if err != nil {
		uc.logger.Error("password verification failed", "err", err)
		return nil, errors.ErrStoreUnavailable
	}
	if !ok {
		return nil, errors.ErrAuthenticationFailed
	}

	if u.TotpURL != "" {
		if cmd.TotpCode == "" {
			return &Tokens{TotpRequired: true}, nil
		}
		valid, err := ValidateTotp(u.TotpURL, cmd.TotpCode)
		if err != nil {
			uc.logger.Error("stored totp url is unparseable", "user_id", u.ID, "err", err)
			return nil, errors.ErrInvalidTotp
		}
		if !valid {
			return nil, errors.ErrInvalidTotp
		}
	}

	return uc.IssueForUser(ctx, u.ID)
}

// IssueForUser mints a scoped access token and a persisted refresh token for
// an already-authenticated subject. Registration uses this directly.
func (uc *TokenUsecase) IssueForUser(ctx context.Context, userID uuid.UUID) (*Tokens, error) {
	accessToken, err := uc.signer.SignAccess(userID, DefaultScope)
	if err != nil {
		uc.logger.Error("failed to sign access token", "err", err)
		return nil, errors.Internal("failed to issue tokens")
	}

	refreshToken, err := uc.signer.SignRefresh(userID)
	if err != nil {
		uc.logger.Error("failed to sign refresh token", "err", err)
		return nil, errors.Internal("failed to issue tokens")
	}

	row := &models.RefreshToken{
		UserID:    userID,
		TokenHash: HashToken(refreshToken),
		ExpiresAt: time.Now().Add(uc.signer.RefreshTTL),
	}
	if err := uc.repo.CreateRefreshToken(ctx, row); err != nil {
		uc.logger.Error("failed to persist refresh token", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	return &Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccessToken exchanges a valid refresh token for a fresh pair.
// Rotation is single-use: the presented token's row is deleted and a new
// refresh token is issued alongside the access token.
func (uc *TokenUsecase) RefreshAccessToken(ctx context.Context, refreshToken string) (*Tokens, error) {
	claims, err := uc.signer.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	row, err := uc.repo.GetRefreshToken(ctx, HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.ErrInvalidToken
		}
		uc.logger.Error("failed to look up refresh token", "err", err)
		return nil, errors.ErrStoreUnavailable
	}
	if row.Revoked {
		return nil, errors.ErrRefreshTokenRevoked
	}
	if time.Now().After(row.ExpiresAt) {
		return nil, errors.ErrExpiredToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil || subject != row.UserID {
		return nil, errors.ErrInvalidToken
	}

	u, err := uc.repo.GetUserByID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to look up user", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	if err := uc.repo.DeleteRefreshToken(ctx, row.ID); err != nil {
		uc.logger.Error("failed to rotate refresh token", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	return uc.IssueForUser(ctx, u.ID)
}

// VerifyAccessToken is pure verification: signature and expiry only, no store
// access.
func (uc *TokenUsecase) VerifyAccessToken(token string) (*Claims, error) {
	claims, err := uc.signer.Verify(token)
	if err != nil {
		return nil, err
	}
	if len(claims.Scope) == 0 {
		// A scopeless token at the access position is likely a refresh token.
		return nil, errors.Forbidden("token used does not have any permissions (likely a refresh token)")
	}
	return claims, nil
}

// Authenticate verifies an access token and confirms its subject still
// exists, returning the user and the token's scope.
func (uc *TokenUsecase) Authenticate(ctx context.Context, accessToken string) (*models.User, []Permission, error) {
	claims, err := uc.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, nil, err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil, errors.ErrInvalidToken
	}

	u, err := uc.repo.GetUserByID(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to look up user", "err", err)
		return nil, nil, errors.ErrStoreUnavailable
	}

	return u, claims.Scope, nil
}
