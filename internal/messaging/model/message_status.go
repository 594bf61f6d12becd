package model

import (
	"slices"
	"time"

	"github.com/google/uuid"

	user "github.com/nezia1/missive/internal/user/model"
)

// DeliveryState is the per-message delivery progress observed by the sender.
type DeliveryState string

const (
	StateSent      DeliveryState = "sent"
	StateReceived  DeliveryState = "received"
	StateDelivered DeliveryState = "delivered"
	StateRead      DeliveryState = "read"
	StateError     DeliveryState = "error"
)

// validTransitions defines the delivery-state machine. Error is terminal.
var validTransitions = map[DeliveryState][]DeliveryState{
	StateSent:      {StateReceived, StateError},
	StateReceived:  {StateDelivered, StateError},
	StateDelivered: {StateRead},
	StateRead:      {},
	StateError:     {},
}

func (s DeliveryState) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s DeliveryState) CanTransitionTo(next DeliveryState) bool {
	return slices.Contains(validTransitions[s], next)
}

// MessageStatus records one delivery-state observation for the party named in
// SenderID, so they can poll delivery progress while offline.
type MessageStatus struct {
	ID        int64         `bun:",pk,autoincrement"`
	MessageID string        `bun:",notnull"`
	State     DeliveryState `bun:",notnull"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id,on_delete:CASCADE"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
