package messaging

import (
	"context"
	"encoding/json"

	"github.com/nezia1/missive/internal/push"
	"github.com/nezia1/missive/internal/user"
	usermodels "github.com/nezia1/missive/internal/user/model"
	"github.com/nezia1/missive/internal/user/repository"

	models "github.com/nezia1/missive/internal/messaging/model"
	"github.com/nezia1/missive/pkg/errors"
	"github.com/nezia1/missive/pkg/logger"
)

// Router consumes inbound frames from live connections and decides between
// direct delivery and store-and-forward. It never touches the presence map's
// internals, only its three operations.
type Router struct {
	users    user.Repository
	messages Repository
	presence *PresenceRegistry
	notifier push.Notifier
	logger   *logger.Logger
}

func NewRouter(users user.Repository, messages Repository, presence *PresenceRegistry, notifier push.Notifier, logger *logger.Logger) *Router {
	return &Router{
		users:    users,
		messages: messages,
		presence: presence,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleFrame processes one inbound frame from the sender's connection. A
// malformed frame is answered in-band and the connection stays open.
func (r *Router) HandleFrame(ctx context.Context, sender *usermodels.User, raw []byte, conn Conn) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		r.send(conn, ErrorFrame{Error: errors.ErrMalformedPayload.Error()})
		return
	}

	if frame.State != "" {
		r.routeStatusUpdate(ctx, sender, frame, conn)
		return
	}
	r.routeMessage(ctx, sender, frame, conn)
}

func (r *Router) routeMessage(ctx context.Context, sender *usermodels.User, frame Frame, conn Conn) {
	if frame.ID == "" || frame.Receiver == "" {
		r.send(conn, ErrorFrame{Error: errors.ErrMalformedPayload.Error()})
		return
	}

	// Local acknowledgment, before any store access.
	r.send(conn, StatusNotification{MessageID: frame.ID, State: models.StateSent})

	receiver, err := r.users.GetUserByUsername(ctx, frame.Receiver)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			r.send(conn, StatusNotification{MessageID: frame.ID, State: models.StateError})
			return
		}
		r.logger.Error("failed to resolve receiver", "receiver", frame.Receiver, "err", err)
		r.send(conn, ErrorFrame{Error: errors.ErrStoreUnavailable.Error()})
		return
	}

	if receiverConn, online := r.presence.Lookup(receiver.ID); online {
		// Low-latency path: no store write for message content.
		outbound := Frame{ID: frame.ID, Content: frame.Content, Sender: sender.Username}
		if err := receiverConn.Send(outbound); err == nil {
			r.send(conn, StatusNotification{MessageID: frame.ID, State: models.StateDelivered})
			return
		}
		// The live handle is dead; fall through to store-and-forward.
		r.presence.Disconnect(receiver.ID, receiverConn)
	}

	pending := &models.PendingMessage{
		ID:         frame.ID,
		Content:    frame.Content,
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
	}
	if err := r.messages.CreatePendingMessage(ctx, pending); err != nil {
		r.logger.Error("failed to persist pending message", "message_id", frame.ID, "err", err)
		r.send(conn, ErrorFrame{Error: errors.ErrStoreUnavailable.Error()})
		return
	}

	status := &models.MessageStatus{
		MessageID: frame.ID,
		State:     models.StateReceived,
		SenderID:  sender.ID,
	}
	if err := r.messages.CreateMessageStatus(ctx, status); err != nil {
		// Not fatal to the message: the pending row already exists.
		r.logger.Error("failed to persist message status", "message_id", frame.ID, "err", err)
	}

	r.send(conn, StatusNotification{MessageID: frame.ID, State: models.StateReceived})

	if receiver.NotificationToken != "" {
		// Fire-and-forget: push failure never fails the message.
		go func(token, sender string) {
			if err := r.notifier.Notify(context.Background(), token, sender); err != nil {
				r.logger.Warn("push notification failed", "err", err)
			}
		}(receiver.NotificationToken, sender.Username)
	}
}

// routeStatusUpdate forwards a delivery-state observation (e.g. the receiver
// acknowledging READ) to the party who should observe it, or persists it for
// later retrieval when that party is offline.
func (r *Router) routeStatusUpdate(ctx context.Context, sender *usermodels.User, frame Frame, conn Conn) {
	state := models.DeliveryState(frame.State)
	if frame.ID == "" || frame.Receiver == "" || !state.Valid() {
		r.send(conn, ErrorFrame{Error: errors.ErrInvalidDeliveryState.Error()})
		return
	}

	observer, err := r.users.GetUserByUsername(ctx, frame.Receiver)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			r.send(conn, StatusNotification{MessageID: frame.ID, State: models.StateError})
			return
		}
		r.logger.Error("failed to resolve status observer", "receiver", frame.Receiver, "err", err)
		r.send(conn, ErrorFrame{Error: errors.ErrStoreUnavailable.Error()})
		return
	}

	if observerConn, online := r.presence.Lookup(observer.ID); online {
		if err := observerConn.Send(StatusNotification{MessageID: frame.ID, State: state}); err == nil {
			return
		}
		r.presence.Disconnect(observer.ID, observerConn)
	}

	status := &models.MessageStatus{
		MessageID: frame.ID,
		State:     state,
		SenderID:  observer.ID,
	}
	if err := r.messages.CreateMessageStatus(ctx, status); err != nil {
		r.logger.Error("failed to persist status update", "message_id", frame.ID, "err", err)
		r.send(conn, ErrorFrame{Error: errors.ErrStoreUnavailable.Error()})
	}
}

func (r *Router) send(conn Conn, v any) {
	if err := conn.Send(v); err != nil {
		r.logger.Warn("failed to write frame", "err", err)
	}
}
