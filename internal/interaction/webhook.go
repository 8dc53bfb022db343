package interaction

import (
	"context"

	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/logging"
)

const (
	eventChargeSuccess = "charge.success"
	eventChargeFailed  = "charge.failed"
)

// WebhookEvent is the decoded body of a gateway webhook delivery. The
// signature must already have been verified before this is handled.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount"`
}

func (s *serviceInteractor) HandleWebhookEvent(ctx context.Context, event WebhookEvent) error {
	logger := logging.LoggerFromContext(ctx)

	switch event.Event {
	case eventChargeSuccess:
		s.store.Set(event.Data.Reference, entities.PaymentStatusSuccess)
		logger.Info("payment successful for reference %s", event.Data.Reference)
	case eventChargeFailed:
		s.store.Set(event.Data.Reference, entities.PaymentStatusFailed)
		logger.Info("payment failed for reference %s", event.Data.Reference)
	default:
		// the gateway sends more event types than this service models,
		// accepting and ignoring them is the correct behavior
		logger.Debug("ignoring webhook event type %s", event.Event)
	}

	return nil
}

func (s *serviceInteractor) PaymentStatus(ctx context.Context, reference string) entities.PaymentStatus {
	return s.store.Get(reference)
}

func (s *serviceInteractor) VerifyPayment(ctx context.Context, reference string) entities.PaymentStatus {
	logger := logging.LoggerFromContext(ctx)

	verified, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		logger.Warn("gateway verification for reference %s unavailable, falling back to local status. [error]: %v", reference, err)
		return s.store.Get(reference)
	}

	switch verified.Status {
	case "success":
		s.store.Set(reference, entities.PaymentStatusSuccess)
		return entities.PaymentStatusSuccess
	case "failed", "abandoned", "reversed":
		s.store.Set(reference, entities.PaymentStatusFailed)
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}
