package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/romeorayyy/beyonddevblog/pkg/logger"
)

// DevSender writes messages to a directory instead of sending them.
// Each message produces a .json file and, when an HTML body exists, a .html file.
// File names carry a random suffix so messages written in the same millisecond
// never collide.
type DevSender struct {
	dir string
	now func() time.Time
	log *slog.Logger
}

func NewDevSender(dir string, opts ...Option) *DevSender {
	o := newOptions(opts)
	return &DevSender{dir: dir, now: time.Now, log: o.logger}
}

type devMessage struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from,omitempty"`
	ReplyTo   string `json:"reply_to,omitempty"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	BodyText  string `json:"body_text,omitempty"`
}

func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if strings.TrimSpace(d.dir) == "" {
		return fmt.Errorf("%w: missing MAIL_DEV_DIR", ErrMissingCredentials)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%s_%s",
		now.Format("2006_01_02_150405.000"), sanitizeFilename(identifier), uuid.NewString()))

	if params.BodyHTML != "" {
		if err := os.WriteFile(base+".html", []byte(params.BodyHTML), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
		}
	}

	data, err := json.MarshalIndent(devMessage{
		Timestamp: now.Format(time.RFC3339),
		From:      params.From,
		ReplyTo:   params.ReplyTo,
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		BodyText:  params.BodyText,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(base+".json", data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	d.log.InfoContext(ctx, "email written to disk",
		logger.Provider(string(ProviderDev)),
		slog.String("path", base+".json"),
	)
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
