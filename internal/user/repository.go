package user

import (
	"context"

	"github.com/google/uuid"

	models "github.com/nezia1/missive/internal/user/model"
)

// Repository is the credential-store contract for the user domain. Every
// operation is a single atomic store call unless documented otherwise.
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SearchUsers(ctx context.Context, query string, exclude uuid.UUID) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, tokenHash []byte) (*models.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	UpsertSignedPreKey(ctx context.Context, spk *models.SignedPreKey) error
	GetSignedPreKey(ctx context.Context, userID uuid.UUID) (*models.SignedPreKey, error)

	UploadOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error
	// Atomically fetch one unused prekey and mark it used; nil result (not an
	// error) when the pool is exhausted.
	ClaimOneTimePreKey(ctx context.Context, userID uuid.UUID) (*models.OneTimePreKey, error)
	CountRemainingOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error)
}
