package interaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/FOLISOLOMON/invoice/internal/apierrors"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/logging"
	"github.com/FOLISOLOMON/invoice/internal/mailing"
	"github.com/FOLISOLOMON/invoice/internal/render"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
	"github.com/FOLISOLOMON/invoice/internal/validation"
)

const genericFailureMessage = "failed to send invoice email"

// SendInvoice walks the pipeline strictly in order, a failing stage aborts
// without attempting any later stage. Note there is no compensation when
// payment initialization succeeded but delivery failed after all retries:
// the payment link exists on the gateway, the client just never received
// it. Acknowledged limitation, see DESIGN.md.
func (s *serviceInteractor) SendInvoice(ctx context.Context, request *entities.InvoiceRequest) error {
	logger := logging.LoggerFromContext(ctx)

	if err := validation.ValidateInvoiceRequest(request); err != nil {
		return apierrors.NewBadRequest(err.Error())
	}

	brandKey := request.BrandKey
	if brandKey == "" {
		brandKey = s.conf.Service.DefaultBrand
	}

	document, err := s.renderer.Render(request.InvoiceData, brandKey)
	if err != nil {
		var unknownBrand *render.UnknownBrandError
		if errors.As(err, &unknownBrand) {
			return apierrors.NewBadRequest(unknownBrand.Error())
		}

		return apierrors.NewInternalServerError(genericFailureMessage, err.Error())
	}

	reference := s.newPaymentReference(request.InvoiceData.InvoiceNumber)
	amountMinor := paystack.MinorUnits(request.InvoiceData.Total)

	initialized, err := s.gateway.InitializeTransaction(ctx, paystack.InitializeTransactionRequest{
		Email:       request.ClientEmail,
		AmountMinor: amountMinor,
		Reference:   reference,
		CallbackURL: fmt.Sprintf("%s/api/v1/paystack/payment-success", s.conf.Service.PublicBaseURL),
	})
	if err != nil {
		var limitErr *paystack.LimitExceededError
		if errors.As(err, &limitErr) {
			return apierrors.NewBadRequest(limitErr.Error())
		}

		return apierrors.NewBadGateway(genericFailureMessage, err.Error())
	}

	logger.Info("payment transaction initialized for invoice %s with reference %s", request.InvoiceData.InvoiceNumber, reference)

	brand := s.conf.Brands[brandKey]
	htmlBody, err := invoiceEmailBody(request.InvoiceData, brand, initialized.AuthorizationURL)
	if err != nil {
		return apierrors.NewInternalServerError(genericFailureMessage, err.Error())
	}

	subject := fmt.Sprintf("Invoice %s from %s", request.InvoiceData.InvoiceNumber, brand.DisplayName)
	err = s.sender.Send(ctx, request.ClientEmail, subject, htmlBody, &mailing.Attachment{
		Filename: document.Filename,
		MIMEType: document.MIMEType,
		Bytes:    document.Bytes,
	})
	if err != nil {
		return apierrors.NewInternalServerError(genericFailureMessage, err.Error())
	}

	logger.Info("invoice %s sent to %s", request.InvoiceData.InvoiceNumber, request.ClientEmail)

	return nil
}

// newPaymentReference derives the reference joining the gateway, the
// webhook and the status store. The millisecond timestamp keeps repeated
// sends of the same invoice apart.
func (s *serviceInteractor) newPaymentReference(invoiceNumber string) string {
	return fmt.Sprintf("INV-%s-%d", invoiceNumber, s.now().UnixMilli())
}
