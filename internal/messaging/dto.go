package messaging

import (
	"time"

	models "github.com/nezia1/missive/internal/messaging/model"
)

// Frame is one JSON object on the live connection. Absence of State marks a
// new message; presence marks a status update.
type Frame struct {
	ID       string `json:"id"`
	Content  string `json:"content,omitempty"`
	Receiver string `json:"receiver,omitempty"`
	Sender   string `json:"sender,omitempty"`
	State    string `json:"state,omitempty"`
}

// StatusNotification is the server's in-band delivery-progress response.
type StatusNotification struct {
	MessageID string               `json:"messageId"`
	State     models.DeliveryState `json:"state"`
}

// ErrorFrame is the server's in-band failure response.
type ErrorFrame struct {
	Error string `json:"error"`
}

// Output DTOs for the HTTP retrieval paths.

type PendingMessageDTO struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Sender  string    `json:"sender"`
	SentAt  time.Time `json:"sentAt"`
}

type MessageStatusDTO struct {
	MessageID string               `json:"messageId"`
	State     models.DeliveryState `json:"state"`
}
