package contact

import "errors"

// ErrNotConfigured means no inbox is configured for notifications.
var ErrNotConfigured = errors.New("contact recipient is not configured")
