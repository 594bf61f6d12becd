package models

import (
	"github.com/google/uuid"
	"time"
)

// OneTimePreKey is handed out at most once: the claim path flips Used inside
// the same transaction that selects the row.
type OneTimePreKey struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE"`

	KeyID      uint32    `bun:",notnull"`
	PublicKey  []byte    `bun:",notnull"` // 32 bytes Curve25519
	Used       bool      `bun:",default:false"`
	UploadedAt time.Time `bun:",nullzero,default:current_timestamp"`
}
