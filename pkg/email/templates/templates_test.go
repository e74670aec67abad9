package templates_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romeorayyy/beyonddevblog/pkg/email/templates"
)

func TestInquiry(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), templates.Inquiry(templates.InquiryData{
		Name:    "Ada <script>",
		Email:   "ada@example.com",
		Subject: "Hello & welcome",
		Details: "line one\nline two",
	}))
	require.NoError(t, err)

	assert.Contains(t, html, "New contact from Ada &lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Hello &amp; welcome")
	assert.Contains(t, html, "ada@example.com")
	assert.Contains(t, html, "line one<br>line two")
}
