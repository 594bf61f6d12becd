package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/nezia1/missive/internal/messaging"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

type MessageUsecase struct {
	repo   messaging.Repository
	logger *logger.Logger
}

func NewMessageUsecase(repo messaging.Repository, logger *logger.Logger) *MessageUsecase {
	return &MessageUsecase{
		repo:   repo,
		logger: logger,
	}
}

func (u *MessageUsecase) DrainPendingMessages(ctx context.Context, receiverID uuid.UUID) ([]messaging.PendingMessageDTO, error) {
	pending, err := u.repo.FindPendingMessagesForUser(ctx, receiverID)
	if err != nil {
		u.logger.Error("failed to load pending messages", "user_id", receiverID, "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	out := make([]messaging.PendingMessageDTO, 0, len(pending))
	ids := make([]string, 0, len(pending))
	for _, msg := range pending {
		dto := messaging.PendingMessageDTO{
			ID:      msg.ID,
			Content: msg.Content,
			SentAt:  msg.SentAt,
		}
		if msg.Sender != nil {
			dto.Sender = msg.Sender.Username
		}
		out = append(out, dto)
		ids = append(ids, msg.ID)
	}

	// Delete only what was read, and only after a successful read: a failed
	// read never loses messages, and a message persisted after the read stays
	// queued for the next drain. A crash between read and delete re-delivers,
	// which clients dedupe on the message id.
	if len(ids) > 0 {
		if err := u.repo.DeletePendingMessages(ctx, receiverID, ids); err != nil {
			u.logger.Error("failed to clear pending messages", "user_id", receiverID, "err", err)
			return nil, errors.ErrStoreUnavailable
		}
	}
	return out, nil
}

func (u *MessageUsecase) MessageStatuses(ctx context.Context, senderID uuid.UUID) ([]messaging.MessageStatusDTO, error) {
	statuses, err := u.repo.FindMessageStatusesForUser(ctx, senderID)
	if err != nil {
		u.logger.Error("failed to load message statuses", "user_id", senderID, "err", err)
		return nil, errors.ErrStoreUnavailable
	}

	out := make([]messaging.MessageStatusDTO, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, messaging.MessageStatusDTO{
			MessageID: status.MessageID,
			State:     status.State,
		})
	}
	return out, nil
}
