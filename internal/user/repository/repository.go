package repository

import (
	"context"
	"database/sql"

	models "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrSignedPreKeyNotFound = errors.New("signed prekey not found")
	ErrDuplicateUsername    = errors.New("username already exists")
)

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {

	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) SearchUsers(ctx context.Context, query string, exclude uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("username LIKE ?", "%"+query+"%").
		Where("id != ?", exclude).
		Order("username ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.Scan: ")
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.NewUpdate().
		Model(user).
		Column("totp_url", "notification_token", "identity_key", "registration_id").
		Set("updated_at = current_timestamp").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.User)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeleteUser.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	_, err := r.db.NewInsert().Model(token).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateRefreshToken.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetRefreshToken(ctx context.Context, tokenHash []byte) (*models.RefreshToken, error) {
	token := new(models.RefreshToken)
	err := r.db.NewSelect().Model(token).Where("token_hash = ?", tokenHash).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetRefreshToken.Scan: ")
	}
	return token, nil
}

func (r *UserRepository) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.RefreshToken)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeleteRefreshToken.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *UserRepository) UpsertSignedPreKey(ctx context.Context, spk *models.SignedPreKey) error {
	_, err := r.db.NewInsert().
		Model(spk).
		On("CONFLICT (user_id) DO UPDATE").
		Set("key_id = EXCLUDED.key_id").
		Set("public_key = EXCLUDED.public_key").
		Set("signature = EXCLUDED.signature").
		Set("uploaded_at = EXCLUDED.uploaded_at").
		Returning("*").
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, "userRepo.UpsertSignedPreKey.Exec: ")
	}
	return nil
}

func (r *UserRepository) GetSignedPreKey(ctx context.Context, userID uuid.UUID) (*models.SignedPreKey, error) {
	key := new(models.SignedPreKey)
	err := r.db.NewSelect().Model(key).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignedPreKeyNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetSignedPreKey.Scan: ")
	}
	return key, nil
}

func (r *UserRepository) UploadOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().Model(&keys).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UploadOneTimePreKeys.Insert: ")
	}
	return nil
}

// ClaimOneTimePreKey selects one unused prekey and marks it used inside a
// single transaction, so two concurrent claims can never hand out the same
// key. Returns (nil, nil) when the pool is exhausted.
func (r *UserRepository) ClaimOneTimePreKey(ctx context.Context, userID uuid.UUID) (*models.OneTimePreKey, error) {
	key := new(models.OneTimePreKey)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// SKIP LOCKED makes concurrent claimers pick different rows instead of
		// queueing on the same one.
		err := tx.NewSelect().
			Model(key).
			Where("user_id = ? AND used = ?", userID, false).
			Order("id ASC").
			Limit(1).
			For("UPDATE SKIP LOCKED").
			Scan(ctx)
		if err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model(key).
			Set("used = ?", true).
			WherePK().
			Exec(ctx)
		return err
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "userRepo.ClaimOneTimePreKey: ")
	}

	key.Used = true
	return key, nil
}

func (r *UserRepository) CountRemainingOneTimePreKeys(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.OneTimePreKey)(nil)).
		Where("used = false AND user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "userRepo.CountRemainingOneTimePreKeys.Count: ")
	}
	return count, nil
}
