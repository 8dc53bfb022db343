package mailing

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
)

var _ Transport = (*resendTransport)(nil)

type resendTransport struct {
	client *resend.Client
	from   string
}

func NewResendTransport(apiKey string, fromAddress string) (Transport, error) {
	if apiKey == "" {
		return nil, errors.New("mail.api_key not configured")
	}
	if fromAddress == "" {
		return nil, errors.New("mail.from_address not configured")
	}

	return &resendTransport{
		client: resend.NewClient(apiKey),
		from:   fromAddress,
	}, nil
}

func (t *resendTransport) Send(ctx context.Context, toEmail string, subject string, htmlBody string, attachment *Attachment) error {
	params := &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
	}

	if attachment != nil {
		params.Attachments = []*resend.Attachment{
			{
				Filename:    attachment.Filename,
				ContentType: attachment.MIMEType,
				Content:     attachment.Bytes,
			},
		}
	}

	_, err := t.client.Emails.SendWithContext(ctx, params)
	return err
}
