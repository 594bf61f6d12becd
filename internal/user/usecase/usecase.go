package usecase

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"github.com/nezia1/missive/config"
	"github.com/nezia1/missive/internal/auth"
	"github.com/nezia1/missive/internal/user"
	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/internal/user/repository"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
	"github.com/nezia1/missive/pkg/utils"
)

type UserUsecase struct {
	repo   user.Repository
	hasher *auth.PasswordHasher
	logger *logger.Logger
	config *config.Config
}

func NewUserUsecase(repo user.Repository, hasher *auth.PasswordHasher, logger *logger.Logger, config *config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, hasher: hasher, logger: logger, config: config}
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.ProfileDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if cmd.Password == "" {
		return nil, errors.InvalidArg("password is required")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	u := &models.User{
		Username:          cmd.Username,
		PasswordHash:      hash,
		NotificationToken: cmd.NotificationToken,
		IdentityKey:       cmd.IdentityKey,
		RegistrationID:    cmd.RegistrationID,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Error("failed to create user", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	return &user.ProfileDTO{ID: u.ID, Username: u.Username}, nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load profile", "err", err)
		return nil, errors.ErrStoreUnavailable
	}
	return &user.ProfileDTO{ID: u.ID, Username: u.Username, TotpEnabled: u.TotpURL != ""}, nil
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, query string, requester uuid.UUID) ([]user.ProfileDTO, error) {
	found, err := uc.repo.SearchUsers(ctx, query, requester)
	if err != nil {
		uc.logger.Error("failed to search users", "err", err)
		return nil, errors.ErrStoreUnavailable
	}
	profiles := make([]user.ProfileDTO, 0, len(found))
	for _, u := range found {
		profiles = append(profiles, user.ProfileDTO{ID: u.ID, Username: u.Username})
	}
	return profiles, nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd user.UpdateProfileCommand) (*user.UpdateProfileResult, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	result := &user.UpdateProfileResult{}

	if cmd.EnableTotp {
		// Enabling a second factor re-checks the first one.
		if cmd.Password == "" {
			return nil, errors.ErrPasswordRequired
		}
		ok, err := uc.hasher.Verify(cmd.Password, u.PasswordHash)
		if err != nil || !ok {
			return nil, errors.ErrPasswordRequired
		}

		key, err := auth.GenerateTotp(uc.config.Auth.TotpIssuer, u.Username)
		if err != nil {
			uc.logger.Error("failed to generate totp enrollment", "err", err)
			return nil, errors.Internal("failed to enable TOTP")
		}
		u.TotpURL = key.URL()
		result.TotpURL = key.URL()
	}

	if cmd.NotificationToken != nil {
		u.NotificationToken = *cmd.NotificationToken
	}

	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		uc.logger.Error("failed to update user", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	return result, nil
}

func (uc *UserUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("failed to delete user", "err", err)
		return errors.ErrStoreUnavailable
	}
	return nil
}

func (uc *UserUsecase) PublishKeyBundle(ctx context.Context, userID uuid.UUID, cmd user.PublishBundleCommand) error {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "err", err)
		return errors.ErrStoreUnavailable
	}

	if len(cmd.IdentityKey) > 0 {
		u.IdentityKey = cmd.IdentityKey
		u.RegistrationID = cmd.RegistrationID
		if err := uc.repo.UpdateUser(ctx, u); err != nil {
			uc.logger.Error("failed to update identity key", "err", err)
			return errors.ErrStoreUnavailable
		}
	}

	if cmd.SignedPreKey != nil {
		if len(cmd.SignedPreKey.PublicKey) == 0 || len(cmd.SignedPreKey.Signature) == 0 {
			return errors.ErrInvalidSignedPreKey
		}
		// The signature must check out against the identity key on record.
		if len(u.IdentityKey) > 0 &&
			!utils.VerifySignedPreKey(u.IdentityKey, cmd.SignedPreKey.PublicKey, cmd.SignedPreKey.Signature) {
			return errors.ErrInvalidSignedPreKey
		}
		spk := &models.SignedPreKey{
			UserID:    userID,
			KeyID:     cmd.SignedPreKey.KeyID,
			PublicKey: cmd.SignedPreKey.PublicKey,
			Signature: cmd.SignedPreKey.Signature,
		}
		if err := uc.repo.UpsertSignedPreKey(ctx, spk); err != nil {
			uc.logger.Error("failed to upsert signed prekey", "err", err)
			return errors.ErrStoreUnavailable
		}
	}

	if len(cmd.OneTimePreKeys) > 0 {
		seen := make(map[uint32]bool, len(cmd.OneTimePreKeys))
		otpks := make([]models.OneTimePreKey, 0, len(cmd.OneTimePreKeys))
		for _, k := range cmd.OneTimePreKeys {
			if len(k.PublicKey) == 0 {
				return errors.ErrInvalidOneTimePreKey
			}
			if seen[k.KeyID] {
				return errors.InvalidArg("duplicate one-time prekey ID")
			}
			seen[k.KeyID] = true
			otpks = append(otpks, models.OneTimePreKey{
				UserID:    userID,
				KeyID:     k.KeyID,
				PublicKey: k.PublicKey,
			})
		}
		if err := uc.repo.UploadOneTimePreKeys(ctx, otpks); err != nil {
			uc.logger.Error("failed to upload one-time prekeys", "err", err)
			return errors.ErrStoreUnavailable
		}
	}

	return nil
}

// FetchKeyBundle consumes at most one one-time prekey. An exhausted pool is
// tolerated: key agreement can still proceed on the signed prekey alone.
func (uc *UserUsecase) FetchKeyBundle(ctx context.Context, username string) (*user.PreKeyBundleDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	spk, err := uc.repo.GetSignedPreKey(ctx, u.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSignedPreKeyNotFound) {
			return nil, errors.ErrSignedPreKeyMissing
		}
		uc.logger.Error("failed to load signed prekey", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	otpk, err := uc.repo.ClaimOneTimePreKey(ctx, u.ID)
	if err != nil {
		uc.logger.Error("failed to claim one-time prekey", "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	bundle := &user.PreKeyBundleDTO{
		IdentityKey:           u.IdentityKey,
		RegistrationID:        u.RegistrationID,
		SignedPreKeyID:        spk.KeyID,
		SignedPreKey:          spk.PublicKey,
		SignedPreKeySignature: spk.Signature,
	}
	if otpk != nil {
		bundle.OneTimePreKey = otpk.PublicKey
		bundle.OneTimePreKeyID = &otpk.KeyID
	}
	return bundle, nil
}

func (uc *UserUsecase) RemainingPreKeyCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := uc.repo.CountRemainingOneTimePreKeys(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to count prekeys", "err", err)
		return 0, errors.ErrStoreUnavailable
	}
	return count, nil
}
