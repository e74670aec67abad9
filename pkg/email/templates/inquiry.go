package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// InquiryData is the content of a contact-form notification.
type InquiryData struct {
	Name    string
	Email   string
	Subject string
	Details string
}

// Inquiry renders the HTML alternative of a contact notification.
// Every value is escaped and line breaks in the details are preserved.
func Inquiry(d InquiryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html><body style="font-family:Arial,Helvetica,sans-serif;color:#1f2937;">`)
		b.WriteString(`<h2 style="margin:0 0 16px;">New contact from `)
		b.WriteString(templ.EscapeString(d.Name))
		b.WriteString(`</h2><table style="border-collapse:collapse;margin-bottom:16px;">`)
		row(&b, "Name", d.Name)
		row(&b, "Email", d.Email)
		row(&b, "Subject", d.Subject)
		b.WriteString(`</table><div style="white-space:pre-wrap;line-height:1.5;">`)
		b.WriteString(strings.ReplaceAll(templ.EscapeString(d.Details), "\n", "<br>"))
		b.WriteString(`</div></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(`<tr><td style="padding:4px 12px 4px 0;font-weight:bold;">`)
	b.WriteString(label)
	b.WriteString(`</td><td style="padding:4px 0;">`)
	b.WriteString(templ.EscapeString(value))
	b.WriteString(`</td></tr>`)
}
