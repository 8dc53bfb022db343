package interaction

import (
	"context"
	"errors"
	"time"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/mailing"
	"github.com/FOLISOLOMON/invoice/internal/render"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
	"github.com/FOLISOLOMON/invoice/internal/repository/statusstore"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	// SendInvoice runs the full invoice pipeline: validate, render,
	// initialize the payment and mail the client the payment link with
	// the rendered document attached.
	SendInvoice(ctx context.Context, request *entities.InvoiceRequest) error

	// HandleWebhookEvent applies a verified gateway event to the status
	// store. Unknown event types are ignored on purpose.
	HandleWebhookEvent(ctx context.Context, event WebhookEvent) error

	// PaymentStatus reads the currently known status for a reference.
	PaymentStatus(ctx context.Context, reference string) entities.PaymentStatus

	// VerifyPayment asks the gateway for the authoritative status of a
	// reference, falling back to the local store when the gateway cannot
	// answer.
	VerifyPayment(ctx context.Context, reference string) entities.PaymentStatus
}

type serviceInteractor struct {
	store    statusstore.Store
	gateway  paystack.Paystack
	renderer render.Renderer
	sender   mailing.Sender
	conf     *config.Application

	now func() time.Time
}

func NewServiceInteractor(
	store statusstore.Store,
	gateway paystack.Paystack,
	renderer render.Renderer,
	sender mailing.Sender,
	conf *config.Application,
) (Interactor, error) {
	if store == nil {
		return nil, errors.New("status store must not be nil")
	}
	if gateway == nil {
		return nil, errors.New("no payment gateway client provided")
	}
	if renderer == nil {
		return nil, errors.New("no document renderer provided")
	}
	if sender == nil {
		return nil, errors.New("no notification sender provided")
	}
	if conf == nil {
		return nil, errors.New("configuration must not be nil")
	}

	return &serviceInteractor{
		store:    store,
		gateway:  gateway,
		renderer: renderer,
		sender:   sender,
		conf:     conf,
		now:      time.Now,
	}, nil
}
