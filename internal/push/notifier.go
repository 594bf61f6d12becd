package push

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/nezia1/missive/config"
	"github.com/nezia1/missive/pkg/logger"
)

// Notifier wakes up an offline device so it knows to drain its pending
// messages. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, deviceToken string, sender string) error
}

// WebhookNotifier posts a small JSON payload to an external push gateway.
// The gateway is responsible for translating the device token into an
// actual platform notification.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
	logger   *logger.Logger
}

func NewWebhookNotifier(cfg *config.Config, logger *logger.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: cfg.Push.Endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

type webhookPayload struct {
	DeviceToken string `json:"deviceToken"`
	Sender      string `json:"sender"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, deviceToken string, sender string) error {
	body, err := json.Marshal(webhookPayload{DeviceToken: deviceToken, Sender: sender})
	if err != nil {
		return errors.Wrap(err, "push.Notify.Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "push.Notify.NewRequest")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push.Notify.Do")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return errors.Errorf("push.Notify: gateway returned %d", res.StatusCode)
	}
	n.logger.Debug("push notification sent", "sender", sender)
	return nil
}

// NopNotifier is used when no push gateway is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string) error { return nil }

// FromConfig returns a webhook notifier when an endpoint is configured and a
// no-op otherwise.
func FromConfig(cfg *config.Config, logger *logger.Logger) Notifier {
	if cfg.Push.Endpoint == "" {
		return NopNotifier{}
	}
	return NewWebhookNotifier(cfg, logger)
}
