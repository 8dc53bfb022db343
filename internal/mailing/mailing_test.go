package mailing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	failures int
	attempts int
	lastTo   string
}

func (f *fakeTransport) Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *Attachment) error {
	f.attempts++
	f.lastTo = toEmail
	if f.attempts <= f.failures {
		return errors.New("transport unavailable")
	}
	return nil
}

func TestSendSucceedsFirstAttempt(t *testing.T) {
	transport := &fakeTransport{}
	sender := NewSender(transport, 3)

	err := sender.Send(context.Background(), "client@example.com", "Invoice 2024-001", "<html></html>", nil)
	require.NoError(t, err)
	require.Equal(t, 1, transport.attempts)
	require.Equal(t, "client@example.com", transport.lastTo)
}

func TestSendRetriesUntilSuccess(t *testing.T) {
	transport := &fakeTransport{failures: 2}
	sender := NewSender(transport, 3)

	err := sender.Send(context.Background(), "client@example.com", "Invoice 2024-001", "<html></html>", &Attachment{
		Filename: "invoice_2024-001.pdf",
		MIMEType: "application/pdf",
		Bytes:    []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	require.Equal(t, 3, transport.attempts)
}

func TestSendFailsAfterExhaustingRetries(t *testing.T) {
	transport := &fakeTransport{failures: 10}
	sender := NewSender(transport, 3)

	err := sender.Send(context.Background(), "client@example.com", "Invoice 2024-001", "<html></html>", nil)
	require.Error(t, err)
	require.Equal(t, 3, transport.attempts)

	var deliveryErr *DeliveryFailedError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, 3, deliveryErr.Attempts)
}

func TestSendSingleAttemptFloor(t *testing.T) {
	transport := &fakeTransport{failures: 10}
	sender := NewSender(transport, 0)

	err := sender.Send(context.Background(), "client@example.com", "subject", "body", nil)
	require.Error(t, err)
	require.Equal(t, 1, transport.attempts)
}
