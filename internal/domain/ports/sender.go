package ports

import (
	"context"

	"gchat-cardbot/internal/domain/model"
)

// CardSender delivers a card payload to a chat webhook. webhookURL, when
// non-empty, overrides any URL the sender was constructed with; with neither
// present the sender fails with model.ErrMissingWebhook before touching the
// network. The returned Delivery carries the endpoint's status and body as
// data, including non-2xx responses; the error is reserved for transport
// failures.
type CardSender interface {
	Send(ctx context.Context, payload model.Payload, webhookURL string) (model.Delivery, error)
}
