package interaction

import (
	"context"

	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/mailing"
	"github.com/FOLISOLOMON/invoice/internal/render"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
)

type GatewayMock struct {
	InitializeCalls  []paystack.InitializeTransactionRequest
	InitializeResult paystack.InitializedTransaction
	InitializeErr    error

	VerifyCalls  []string
	VerifyResult paystack.VerifiedTransaction
	VerifyErr    error
}

var _ paystack.Paystack = (*GatewayMock)(nil)

func (m *GatewayMock) InitializeTransaction(ctx context.Context, request paystack.InitializeTransactionRequest) (paystack.InitializedTransaction, error) {
	m.InitializeCalls = append(m.InitializeCalls, request)
	if m.InitializeErr != nil {
		return paystack.InitializedTransaction{}, m.InitializeErr
	}
	return m.InitializeResult, nil
}

func (m *GatewayMock) VerifyTransaction(ctx context.Context, reference string) (paystack.VerifiedTransaction, error) {
	m.VerifyCalls = append(m.VerifyCalls, reference)
	if m.VerifyErr != nil {
		return paystack.VerifiedTransaction{}, m.VerifyErr
	}
	return m.VerifyResult, nil
}

type RendererMock struct {
	KnownBrands map[string]bool
	RenderCalls int
	RenderErr   error
}

var _ render.Renderer = (*RendererMock)(nil)

func (m *RendererMock) Render(data entities.InvoiceData, brandKey string) (*entities.RenderedDocument, error) {
	m.RenderCalls++
	if m.RenderErr != nil {
		return nil, m.RenderErr
	}
	if !m.KnownBrands[brandKey] {
		return nil, &render.UnknownBrandError{Key: brandKey}
	}
	return &entities.RenderedDocument{
		Bytes:    []byte("%PDF-1.4 fake"),
		Filename: "invoice_" + data.InvoiceNumber + ".pdf",
		MIMEType: "application/pdf",
	}, nil
}

type SentMail struct {
	To         string
	Subject    string
	HtmlBody   string
	Attachment *mailing.Attachment
}

type SenderMock struct {
	SendCalls []SentMail
	SendErr   error
}

var _ mailing.Sender = (*SenderMock)(nil)

func (m *SenderMock) Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *mailing.Attachment) error {
	m.SendCalls = append(m.SendCalls, SentMail{
		To:         toEmail,
		Subject:    subject,
		HtmlBody:   htmlBody,
		Attachment: attachment,
	})
	return m.SendErr
}
