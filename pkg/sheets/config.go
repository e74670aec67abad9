package sheets

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Config describes the installed-app OAuth client and the target range.
// Values are read per request, so missing ones surface as request errors.
type Config struct {
	ClientID      string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret  string `env:"GOOGLE_CLIENT_SECRET"`
	RefreshToken  string `env:"GOOGLE_REFRESH_TOKEN"`
	SpreadsheetID string `env:"GOOGLE_SPREADSHEET_ID"`
	RangeName     string `env:"GOOGLE_RANGE_NAME"`
	AuthURI       string `env:"GOOGLE_AUTH_URI"`
	TokenURI      string `env:"GOOGLE_TOKEN_URI"`
	RedirectURI   string `env:"GOOGLE_REDIRECT_URIS"`
	ProjectID     string `env:"GOOGLE_PROJECT_ID"`
}

// Validate lists every missing required setting. The error wraps ErrMissingCredentials.
func (c Config) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"GOOGLE_CLIENT_ID", c.ClientID},
		{"GOOGLE_CLIENT_SECRET", c.ClientSecret},
		{"GOOGLE_REFRESH_TOKEN", c.RefreshToken},
		{"GOOGLE_SPREADSHEET_ID", c.SpreadsheetID},
		{"GOOGLE_RANGE_NAME", c.RangeName},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// OAuth2Config returns the client configuration. Google's endpoints are used
// unless GOOGLE_AUTH_URI or GOOGLE_TOKEN_URI override them.
func (c Config) OAuth2Config() *oauth2.Config {
	endpoint := google.Endpoint
	if c.AuthURI != "" {
		endpoint.AuthURL = c.AuthURI
	}
	if c.TokenURI != "" {
		endpoint.TokenURL = c.TokenURI
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  c.RedirectURI,
		Scopes:       []string{sheetsapi.SpreadsheetsScope},
	}
}
