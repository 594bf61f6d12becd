package messaging

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// DrainPendingMessages returns everything held for the user and removes
	// it from the store. The retrieval is destructive: a second call returns
	// an empty slice until new messages arrive.
	DrainPendingMessages(ctx context.Context, receiverID uuid.UUID) ([]PendingMessageDTO, error)
	MessageStatuses(ctx context.Context, senderID uuid.UUID) ([]MessageStatusDTO, error)
}
