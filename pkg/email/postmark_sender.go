package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrz1836/postmark"

	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

// PostmarkSender sends mail through Postmark's transactional API.
type PostmarkSender struct {
	cfg    Config
	client *postmark.Client
	log    *slog.Logger
}

func NewPostmarkSender(cfg Config, opts ...Option) *PostmarkSender {
	o := newOptions(opts)
	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	if o.httpClient != nil {
		client.HTTPClient = o.httpClient
	}
	return &PostmarkSender{cfg: cfg, client: client, log: o.logger}
}

// SendEmail sends from the verified SENDER_EMAIL. Postmark rejects arbitrary
// From addresses, so params.From becomes the Reply-To when none is given.
func (c *PostmarkSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	replyTo := params.ReplyTo
	if replyTo == "" {
		replyTo = params.From
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     c.cfg.SenderEmail,
		ReplyTo:  replyTo,
		To:       params.SendTo,
		Subject:  params.Subject,
		Tag:      params.Tag,
		TextBody: params.BodyText,
		HTMLBody: params.BodyHTML,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	c.log.DebugContext(ctx, "email sent",
		logger.Provider(string(ProviderPostmark)),
		logger.Email(params.SendTo),
		slog.String("message_id", resp.MessageID),
	)
	return nil
}
