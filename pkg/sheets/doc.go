// Package sheets appends rows to a Google spreadsheet.
//
// GoogleAppender authenticates as an installed OAuth application using a
// long-lived refresh token (golang.org/x/oauth2) and calls
// spreadsheets.values.append (google.golang.org/api/sheets/v4) with the RAW
// value input option:
//
//	appender := sheets.NewGoogleAppender(cfg, sheets.WithLogger(log))
//	if err := appender.AppendRow(ctx, "reader@example.com"); err != nil {
//		return err
//	}
//
// Configuration is checked on every call. Missing settings return
// ErrMissingCredentials without any network traffic. Authorization and API
// failures are wrapped with ErrAuthorize or ErrAppend and keep the upstream
// error text.
package sheets
