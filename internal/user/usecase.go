package user

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// Register creates a user with an argon2id password hash and optional
	// identity key material. Token issuance happens in the auth domain.
	Register(ctx context.Context, cmd RegisterCommand) (*ProfileDTO, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)

	// SearchUsers matches usernames by substring, excluding the requester.
	SearchUsers(ctx context.Context, query string, requester uuid.UUID) ([]ProfileDTO, error)

	// UpdateProfile enables TOTP (password re-check required) and/or refreshes
	// the notification device token.
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UpdateProfileResult, error)

	// DeleteAccount removes the user; refresh tokens, prekeys and pending
	// messages cascade in the store.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// PublishKeyBundle upserts identity key/registration id, replaces the
	// signed prekey and appends one-time prekeys.
	PublishKeyBundle(ctx context.Context, userID uuid.UUID, cmd PublishBundleCommand) error

	// FetchKeyBundle returns everything a peer needs for X3DH, consuming at
	// most one one-time prekey. Exhaustion of the pool is not an error.
	FetchKeyBundle(ctx context.Context, username string) (*PreKeyBundleDTO, error)

	RemainingPreKeyCount(ctx context.Context, userID uuid.UUID) (int, error)
}
