package repository

import (
	"context"

	models "github.com/nezia1/missive/internal/messaging/model"
	"github.com/nezia1/missive/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) CreatePendingMessage(ctx context.Context, message *models.PendingMessage) error {
	_, err := r.db.NewInsert().
		Model(message).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.CreatePendingMessage.Insert: ")
	}
	return nil
}

func (r *MessageRepository) FindPendingMessagesForUser(ctx context.Context, receiverID uuid.UUID) ([]models.PendingMessage, error) {
	var messages []models.PendingMessage
	err := r.db.NewSelect().
		Model(&messages).
		Relation("Sender").
		Where("receiver_id = ?", receiverID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.FindPendingMessagesForUser.Scan: ")
	}
	return messages, nil
}

func (r *MessageRepository) DeletePendingMessages(ctx context.Context, receiverID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.NewDelete().
		Model((*models.PendingMessage)(nil)).
		Where("receiver_id = ?", receiverID).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.DeletePendingMessages.Exec: ")
	}
	return nil
}

func (r *MessageRepository) CreateMessageStatus(ctx context.Context, status *models.MessageStatus) error {
	_, err := r.db.NewInsert().Model(status).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.CreateMessageStatus.Insert: ")
	}
	return nil
}

func (r *MessageRepository) FindMessageStatusesForUser(ctx context.Context, senderID uuid.UUID) ([]models.MessageStatus, error) {
	var statuses []models.MessageStatus
	err := r.db.NewSelect().
		Model(&statuses).
		Where("sender_id = ?", senderID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.FindMessageStatusesForUser.Scan: ")
	}
	return statuses, nil
}
