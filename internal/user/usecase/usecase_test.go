package usecase

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nezia1/missive/config"
	"github.com/nezia1/missive/internal/auth"
	"github.com/nezia1/missive/internal/user"
	"github.com/nezia1/missive/internal/user/mocks"
	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/internal/user/repository"
	appErrors "github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

func newTestUsecase(t *testing.T) (*UserUsecase, *mocks.MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.TotpIssuer = "missive"
	cfg.Argon2.Time = 1
	cfg.Argon2.MemoryKB = 8 * 1024
	cfg.Argon2.Threads = 1

	lg, _ := logger.NewLogger(cfg)
	uc := NewUserUsecase(mockRepo, auth.NewPasswordHasher(cfg.Argon2), lg, cfg)
	return uc, mockRepo
}

func TestUserUsecase_Register(t *testing.T) {
	t.Run("happy path - user created", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, "alice", u.Username)
				assert.NotEmpty(t, u.PasswordHash)
				assert.NotEqual(t, "password123", u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})

		profile, err := uc.Register(context.Background(), user.RegisterCommand{
			Username: "alice",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
		assert.NotEqual(t, uuid.Nil, profile.ID)
	})

	t.Run("sad path - invalid username", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		for _, name := range []string{"ab", "Alice", "has space", "way_too_long_username_over_thirty_two_chars"} {
			_, err := uc.Register(context.Background(), user.RegisterCommand{Username: name, Password: "password123"})
			assert.ErrorIs(t, err, appErrors.ErrInvalidUsername, "username %q should be rejected", name)
		}
	})

	t.Run("sad path - missing password", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.Register(context.Background(), user.RegisterCommand{Username: "alice"})
		assert.Error(t, err)
	})

	t.Run("sad path - username taken", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(repository.ErrDuplicateUsername)

		_, err := uc.Register(context.Background(), user.RegisterCommand{Username: "alice", Password: "password123"})
		assert.ErrorIs(t, err, appErrors.ErrUsernameTaken)
	})
}

func TestUserUsecase_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path - totp disabled", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Username: "alice"}, nil)

		profile, err := uc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
		assert.False(t, profile.TotpEnabled)
	})

	t.Run("happy path - totp enabled", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Username: "alice", TotpURL: "otpauth://totp/x"}, nil)

		profile, err := uc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, profile.TotpEnabled)
	})

	t.Run("sad path - unknown user", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(nil, repository.ErrUserNotFound)

		_, err := uc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	hashedUser := func(t *testing.T, uc *UserUsecase, password string) *models.User {
		hash, err := uc.hasher.Hash(password)
		require.NoError(t, err)
		return &models.User{ID: userID, Username: "alice", PasswordHash: hash}
	}

	t.Run("happy path - enable totp", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		u := hashedUser(t, uc, "password123")

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(u, nil)
		mockRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *models.User) error {
				assert.NotEmpty(t, updated.TotpURL)
				return nil
			})

		result, err := uc.UpdateProfile(context.Background(), userID, user.UpdateProfileCommand{
			EnableTotp: true,
			Password:   "password123",
		})
		require.NoError(t, err)
		assert.Contains(t, result.TotpURL, "otpauth://totp/")
		assert.Contains(t, result.TotpURL, "missive")
	})

	t.Run("sad path - enable totp without password", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		u := hashedUser(t, uc, "password123")

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(u, nil)

		_, err := uc.UpdateProfile(context.Background(), userID, user.UpdateProfileCommand{EnableTotp: true})
		assert.ErrorIs(t, err, appErrors.ErrPasswordRequired)
	})

	t.Run("sad path - enable totp with wrong password", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		u := hashedUser(t, uc, "password123")

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(u, nil)

		_, err := uc.UpdateProfile(context.Background(), userID, user.UpdateProfileCommand{
			EnableTotp: true,
			Password:   "not-the-password",
		})
		assert.ErrorIs(t, err, appErrors.ErrPasswordRequired)
	})

	t.Run("happy path - update notification token only", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		u := hashedUser(t, uc, "password123")
		token := "new-device-token"

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(u, nil)
		mockRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *models.User) error {
				assert.Equal(t, token, updated.NotificationToken)
				assert.Empty(t, updated.TotpURL)
				return nil
			})

		result, err := uc.UpdateProfile(context.Background(), userID, user.UpdateProfileCommand{NotificationToken: &token})
		require.NoError(t, err)
		assert.Empty(t, result.TotpURL)
	})
}

func TestUserUsecase_PublishKeyBundle(t *testing.T) {
	userID := uuid.New()
	identityPub, identityPriv, _ := ed25519.GenerateKey(nil)

	signedPreKey := make([]byte, 32)
	for i := range signedPreKey {
		signedPreKey[i] = byte(i + 1)
	}
	signature := ed25519.Sign(identityPriv, signedPreKey)

	t.Run("happy path - full bundle upload", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Username: "alice"}, nil)
		mockRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.EqualValues(t, identityPub, u.IdentityKey)
				assert.Equal(t, uint32(7), u.RegistrationID)
				return nil
			})
		mockRepo.EXPECT().
			UpsertSignedPreKey(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spk *models.SignedPreKey) error {
				assert.Equal(t, userID, spk.UserID)
				assert.Equal(t, uint32(1), spk.KeyID)
				return nil
			})
		mockRepo.EXPECT().
			UploadOneTimePreKeys(gomock.Any(), gomock.Len(2)).
			Return(nil)

		err := uc.PublishKeyBundle(context.Background(), userID, user.PublishBundleCommand{
			IdentityKey:    identityPub,
			RegistrationID: 7,
			SignedPreKey: &user.SignedPreKeyUpload{
				KeyID:     1,
				PublicKey: signedPreKey,
				Signature: signature,
			},
			OneTimePreKeys: []user.OneTimePreKeyUpload{
				{KeyID: 1, PublicKey: []byte{1}},
				{KeyID: 2, PublicKey: []byte{2}},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("sad path - signed prekey with bad signature", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Username: "alice", IdentityKey: identityPub}, nil)

		err := uc.PublishKeyBundle(context.Background(), userID, user.PublishBundleCommand{
			SignedPreKey: &user.SignedPreKeyUpload{
				KeyID:     1,
				PublicKey: signedPreKey,
				Signature: make([]byte, 64),
			},
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidSignedPreKey)
	})

	t.Run("sad path - duplicate one-time prekey ids", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, Username: "alice"}, nil)

		err := uc.PublishKeyBundle(context.Background(), userID, user.PublishBundleCommand{
			OneTimePreKeys: []user.OneTimePreKeyUpload{
				{KeyID: 1, PublicKey: []byte{1}},
				{KeyID: 1, PublicKey: []byte{2}},
			},
		})
		assert.Error(t, err)
	})
}

func TestUserUsecase_FetchKeyBundle(t *testing.T) {
	userID := uuid.New()
	identityKey := []byte{1, 2, 3}

	validUser := &models.User{ID: userID, Username: "bob", IdentityKey: identityKey, RegistrationID: 7}
	validSpk := &models.SignedPreKey{UserID: userID, KeyID: 3, PublicKey: []byte{4, 5}, Signature: []byte{6, 7}}

	t.Run("happy path - with one-time prekey", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		otpk := &models.OneTimePreKey{UserID: userID, KeyID: 9, PublicKey: []byte{8, 9}, Used: true}

		g := mockRepo.EXPECT()
		g.GetUserByUsername(gomock.Any(), "bob").Return(validUser, nil)
		g.GetSignedPreKey(gomock.Any(), userID).Return(validSpk, nil)
		g.ClaimOneTimePreKey(gomock.Any(), userID).Return(otpk, nil)

		bundle, err := uc.FetchKeyBundle(context.Background(), "bob")
		require.NoError(t, err)
		assert.Equal(t, identityKey, bundle.IdentityKey)
		assert.Equal(t, uint32(7), bundle.RegistrationID)
		assert.Equal(t, uint32(3), bundle.SignedPreKeyID)
		require.NotNil(t, bundle.OneTimePreKeyID)
		assert.Equal(t, uint32(9), *bundle.OneTimePreKeyID)
		assert.Equal(t, []byte{8, 9}, bundle.OneTimePreKey)
	})

	t.Run("happy path - pool exhausted", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetUserByUsername(gomock.Any(), "bob").Return(validUser, nil)
		g.GetSignedPreKey(gomock.Any(), userID).Return(validSpk, nil)
		g.ClaimOneTimePreKey(gomock.Any(), userID).Return(nil, nil)

		bundle, err := uc.FetchKeyBundle(context.Background(), "bob")
		require.NoError(t, err)
		assert.Nil(t, bundle.OneTimePreKeyID)
		assert.Nil(t, bundle.OneTimePreKey)
	})

	t.Run("sad path - unknown user", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		mockRepo.EXPECT().
			GetUserByUsername(gomock.Any(), "nobody").
			Return(nil, repository.ErrUserNotFound)

		_, err := uc.FetchKeyBundle(context.Background(), "nobody")
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})

	t.Run("sad path - signed prekey missing", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetUserByUsername(gomock.Any(), "bob").Return(validUser, nil)
		g.GetSignedPreKey(gomock.Any(), userID).Return(nil, repository.ErrSignedPreKeyNotFound)

		_, err := uc.FetchKeyBundle(context.Background(), "bob")
		assert.ErrorIs(t, err, appErrors.ErrSignedPreKeyMissing)
	})
}
