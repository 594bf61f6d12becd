package messaging

import (
	"context"

	"github.com/google/uuid"

	models "github.com/nezia1/missive/internal/messaging/model"
)

// Repository is the credential-store contract for store-and-forward state.
// Pending-message create and status create are two separate calls, not a
// transaction; a crash between them leaves a message without a status row.
type Repository interface {
	CreatePendingMessage(ctx context.Context, msg *models.PendingMessage) error
	// FindPendingMessagesForUser loads the Sender relation so the drain path
	// can include the sender's name.
	FindPendingMessagesForUser(ctx context.Context, receiverID uuid.UUID) ([]models.PendingMessage, error)
	// DeletePendingMessages removes only the named ids, so a message that
	// arrives between a read and its delete is never silently dropped.
	DeletePendingMessages(ctx context.Context, receiverID uuid.UUID, ids []string) error

	CreateMessageStatus(ctx context.Context, status *models.MessageStatus) error
	FindMessageStatusesForUser(ctx context.Context, senderID uuid.UUID) ([]models.MessageStatus, error)
}
