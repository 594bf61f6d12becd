package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/nezia1/missive/internal/user/model"
)

// PendingMessage is the store-and-forward row, created only when the receiver
// has no live connection at send time and deleted once drained.
type PendingMessage struct {
	// ID is client-generated and treated as an opaque deduplication key.
	ID string `bun:",pk"`

	Content string `bun:",notnull"` // E2E ciphertext, opaque to the server

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id,on_delete:CASCADE"`

	ReceiverID uuid.UUID  `bun:",notnull,type:uuid"`
	Receiver   *user.User `bun:"rel:belongs-to,join:receiver_id=id,on_delete:CASCADE"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
