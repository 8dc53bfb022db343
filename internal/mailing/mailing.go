package mailing

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/FOLISOLOMON/invoice/internal/logging"
)

type Attachment struct {
	Filename string
	MIMEType string
	Bytes    []byte
}

// Sender delivers a notification email, retrying failed attempts.
type Sender interface {
	Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *Attachment) error
}

// Transport performs a single delivery attempt. Implementations must not
// retry on their own, the retry policy lives in the Sender.
type Transport interface {
	Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *Attachment) error
}

// DeliveryFailedError is returned once all delivery attempts are exhausted.
type DeliveryFailedError struct {
	Attempts int
	LastErr  error
}

var _ error = (*DeliveryFailedError)(nil)

func (e *DeliveryFailedError) Error() string {
	return fmt.Sprintf("email delivery failed after %d attempt(s): %v", e.Attempts, e.LastErr)
}

func (e *DeliveryFailedError) Unwrap() error {
	return e.LastErr
}

var _ Sender = (*retrySender)(nil)

type retrySender struct {
	transport   Transport
	maxAttempts int
}

// NewSender wraps a transport in a bounded retry policy with short
// exponential backoff. maxAttempts counts the first try as well.
func NewSender(transport Transport, maxAttempts int) Sender {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &retrySender{
		transport:   transport,
		maxAttempts: maxAttempts,
	}
}

func (s *retrySender) Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *Attachment) error {
	logger := logging.LoggerFromContext(ctx)

	attempt := 0
	operation := func() error {
		attempt++
		err := s.transport.Send(ctx, toEmail, subject, htmlBody, attachment)
		if err != nil {
			logger.Warn("email delivery attempt %d of %d failed. [error]: %v", attempt, s.maxAttempts, err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.maxAttempts-1)), ctx))
	if err != nil {
		return &DeliveryFailedError{
			Attempts: attempt,
			LastErr:  err,
		}
	}

	return nil
}
