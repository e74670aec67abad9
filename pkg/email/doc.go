// Package email sends single transactional messages through a pluggable
// transport.
//
// Three Sender implementations exist, selected by Config.Provider:
//
//   - SMTPSender: gopkg.in/gomail.v2 over an authenticated relay. The default
//     targets Gmail (smtp.gmail.com:587) with the EMAIL/PASSWORD account.
//   - PostmarkSender: Postmark's HTTP API via github.com/mrz1836/postmark.
//   - DevSender: writes each message to MAIL_DEV_DIR for local work.
//
// Construction never fails because of missing credentials. Each SendEmail call
// validates the configuration first and returns ErrMissingCredentials without
// touching the network, so a misconfigured deployment answers every request
// with a descriptive error instead of refusing to boot.
//
//	sender, err := email.NewSender(cfg, email.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		From:     visitor,
//		ReplyTo:  visitor,
//		SendTo:   owner,
//		Subject:  "New contact from Ada: Hello",
//		BodyText: details,
//	})
//
// HTML bodies are rendered with the templates subpackage.
package email
