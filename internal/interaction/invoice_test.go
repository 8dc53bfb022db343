package interaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FOLISOLOMON/invoice/internal/apierrors"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/mailing"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
)

func sendRequest() *entities.InvoiceRequest {
	return &entities.InvoiceRequest{
		ClientEmail: "client@example.com",
		InvoiceData: entities.InvoiceData{
			ClientName:    "Jane Doe",
			InvoiceNumber: "2024-001",
			Date:          "2024-05-01",
			DueDate:       "2024-05-15",
			Items: []entities.LineItem{
				{ID: 1, Description: "Design work", Quantity: 2, Price: 50, Tax: 10},
			},
			Total: 150.00,
		},
	}
}

func TestSendInvoiceHappyPath(t *testing.T) {
	f := newFixture(t)

	err := f.interactor.SendInvoice(context.Background(), sendRequest())
	require.NoError(t, err)

	require.Len(t, f.gateway.InitializeCalls, 1)
	call := f.gateway.InitializeCalls[0]
	require.Equal(t, "client@example.com", call.Email)
	// minor units are round(total * 100)
	require.Equal(t, int64(15000), call.AmountMinor)
	require.Equal(t, "INV-2024-001-1714500000000", call.Reference)
	require.Equal(t, "http://localhost:8080/api/v1/paystack/payment-success", call.CallbackURL)

	require.Len(t, f.sender.SendCalls, 1)
	mail := f.sender.SendCalls[0]
	require.Equal(t, "client@example.com", mail.To)
	require.Equal(t, "Invoice 2024-001 from Prime Graphics", mail.Subject)
	require.Contains(t, mail.HtmlBody, "https://checkout.example.com/abc123")
	require.Contains(t, mail.HtmlBody, "Pay Now")
	require.Contains(t, mail.HtmlBody, "Jane Doe")
	require.Contains(t, mail.HtmlBody, "2024-001")
	require.Contains(t, mail.HtmlBody, "support@primegraphics.example.com")
	require.NotNil(t, mail.Attachment)
	require.Equal(t, "invoice_2024-001.pdf", mail.Attachment.Filename)
	require.Equal(t, "application/pdf", mail.Attachment.MIMEType)
	require.NotEmpty(t, mail.Attachment.Bytes)
}

func TestSendInvoiceAppliesDefaultBrand(t *testing.T) {
	f := newFixture(t)

	req := sendRequest()
	req.BrandKey = ""
	require.NoError(t, f.interactor.SendInvoice(context.Background(), req))

	// the default brand from the configuration was used for the email
	require.Contains(t, f.sender.SendCalls[0].Subject, "Prime Graphics")
}

func TestSendInvoiceValidationFailure(t *testing.T) {
	f := newFixture(t)

	req := sendRequest()
	req.ClientEmail = "not-an-email"

	err := f.interactor.SendInvoice(context.Background(), req)
	require.Error(t, err)
	require.True(t, apierrors.IsBadRequestError(err))

	// no side effect ran
	require.Equal(t, 0, f.renderer.RenderCalls)
	require.Empty(t, f.gateway.InitializeCalls)
	require.Empty(t, f.sender.SendCalls)
}

func TestSendInvoiceUnknownBrand(t *testing.T) {
	f := newFixture(t)

	req := sendRequest()
	req.BrandKey = "no-such-brand"

	err := f.interactor.SendInvoice(context.Background(), req)
	require.Error(t, err)
	require.True(t, apierrors.IsBadRequestError(err))
	require.Contains(t, err.Error(), "no-such-brand")

	// neither the gateway nor the email provider were called
	require.Empty(t, f.gateway.InitializeCalls)
	require.Empty(t, f.sender.SendCalls)
}

func TestSendInvoiceLimitExceeded(t *testing.T) {
	f := newFixture(t)
	f.gateway.InitializeErr = &paystack.LimitExceededError{AmountMinor: 60_000_000, LimitMinor: 50_000_000}

	err := f.interactor.SendInvoice(context.Background(), sendRequest())
	require.Error(t, err)
	require.True(t, apierrors.IsBadRequestError(err))
	require.Empty(t, f.sender.SendCalls)
}

func TestSendInvoiceGatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.InitializeErr = &paystack.GatewayError{Operation: "initialize", Message: "upstream exploded"}

	err := f.interactor.SendInvoice(context.Background(), sendRequest())
	require.Error(t, err)
	require.True(t, apierrors.IsBadGatewayError(err))

	// the upstream detail stays out of the caller-facing message
	status := apierrors.AsAPIStatus(err)
	require.NotNil(t, status)
	require.NotContains(t, status.Status().Message, "upstream exploded")
	require.Contains(t, status.Status().Details, "upstream exploded")

	require.Empty(t, f.sender.SendCalls)
}

func TestSendInvoiceDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.sender.SendErr = &mailing.DeliveryFailedError{Attempts: 3}

	err := f.interactor.SendInvoice(context.Background(), sendRequest())
	require.Error(t, err)
	require.True(t, apierrors.IsInternalServerError(err))

	// payment initialization already happened, there is no compensation
	require.Len(t, f.gateway.InitializeCalls, 1)
}

func TestSendInvoiceRoundsAmountNotTruncates(t *testing.T) {
	f := newFixture(t)

	req := sendRequest()
	req.InvoiceData.Total = 19.9

	require.NoError(t, f.interactor.SendInvoice(context.Background(), req))
	require.Equal(t, int64(1990), f.gateway.InitializeCalls[0].AmountMinor)
}
