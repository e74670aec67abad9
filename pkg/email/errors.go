package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid mail configuration")
	// ErrMissingCredentials means the selected transport lacks the settings it
	// needs. Senders return it before opening any connection.
	ErrMissingCredentials = errors.New("mail transport is not configured")
	ErrInvalidParams      = errors.New("invalid email parameters")
)
