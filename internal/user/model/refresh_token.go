package models

import (
	"github.com/google/uuid"
	"time"
)

type RefreshToken struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	UserID    uuid.UUID `bun:",notnull,type:uuid"`
	User      *User     `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE"`
	TokenHash []byte    `bun:",notnull,unique"`
	ExpiresAt time.Time `bun:",notnull"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	Revoked   bool      `bun:",default:false"`
}
