package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique handle (used for login and message addressing)
	Username string `bun:",unique,notnull"`

	// Argon2id encoded hash, never exposed outside the repository/usecase layer
	PasswordHash string `bun:",notnull"`

	// otpauth:// URL holding the TOTP secret; empty when TOTP is disabled
	TotpURL string `bun:",nullzero"`

	// Device token for best-effort push notifications; empty when unregistered
	NotificationToken string `bun:",nullzero"`

	// X3DH identity material, published with the first key bundle upload
	IdentityKey    []byte `bun:",nullzero"`
	RegistrationID uint32 `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
