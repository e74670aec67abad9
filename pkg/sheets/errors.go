package sheets

import "errors"

var (
	// ErrMissingCredentials is returned before any network call when the
	// OAuth client, refresh token or target sheet is not configured.
	ErrMissingCredentials = errors.New("spreadsheet credentials are not configured")
	ErrAuthorize          = errors.New("failed to authorize spreadsheet client")
	ErrAppend             = errors.New("failed to append row")
)
