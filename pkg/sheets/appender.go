package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

// valueInputOption stores values exactly as given, without formula parsing.
const valueInputOption = "RAW"

// Appender adds one row to the configured spreadsheet range.
type Appender interface {
	AppendRow(ctx context.Context, values ...any) error
}

// Option configures a GoogleAppender.
type Option func(*GoogleAppender)

func WithLogger(l *slog.Logger) Option {
	return func(a *GoogleAppender) {
		if l != nil {
			a.log = l
		}
	}
}

// WithClientOptions adds options to the Sheets API client, such as a custom endpoint.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(a *GoogleAppender) {
		a.clientOpts = append(a.clientOpts, opts...)
	}
}

// GoogleAppender appends rows with the Sheets v4 API, authorizing every call
// from the stored refresh token.
type GoogleAppender struct {
	cfg        Config
	clientOpts []option.ClientOption
	log        *slog.Logger
}

func NewGoogleAppender(cfg Config, opts ...Option) *GoogleAppender {
	a := &GoogleAppender{cfg: cfg, log: logger.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AppendRow exchanges the refresh token for an access token and appends
// values as a single row. Nothing is retried. Duplicate rows are allowed.
func (a *GoogleAppender) AppendRow(ctx context.Context, values ...any) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	ts := a.cfg.OAuth2Config().TokenSource(ctx, &oauth2.Token{RefreshToken: a.cfg.RefreshToken})

	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, a.clientOpts...)
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthorize, err)
	}

	resp, err := svc.Spreadsheets.Values.
		Append(a.cfg.SpreadsheetID, a.cfg.RangeName, &sheetsapi.ValueRange{
			Values: [][]any{values},
		}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAppend, err)
	}

	attrs := []any{
		slog.String("spreadsheet_id", a.cfg.SpreadsheetID),
		logger.Duration(time.Since(start)),
	}
	if resp.Updates != nil {
		attrs = append(attrs, slog.String("updated_range", resp.Updates.UpdatedRange))
	}
	a.log.DebugContext(ctx, "row appended", attrs...)
	return nil
}
