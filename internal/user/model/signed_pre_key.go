package models

import (
	"github.com/google/uuid"
	"time"
)

// SignedPreKey is long-lived: one row per user, replaced on rotation, never
// consumed on read.
type SignedPreKey struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE"`

	KeyID     uint32 `bun:",notnull"` // client-chosen, e.g. incremental
	PublicKey []byte `bun:",notnull"` // 32 bytes Curve25519
	Signature []byte `bun:",notnull"` // 64 bytes, signed by the identity key

	UploadedAt time.Time `bun:",nullzero,default:current_timestamp"`
}
