package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romeorayyy/beyonddevblog/pkg/email"
)

// rewriteTransport sends every request to the test server.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func postmarkServer(t *testing.T, status int, response map[string]any, got *map[string]any, calls *atomic.Int32) *http.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return &http.Client{Transport: rewriteTransport{target: target}}
}

func postmarkConfig() email.Config {
	return email.Config{
		Provider:             email.ProviderPostmark,
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "blog@example.com",
	}
}

func TestPostmarkSender_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("sends from verified sender with visitor as reply-to", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		var body map[string]any
		client := postmarkServer(t, http.StatusOK, map[string]any{
			"To": "owner@example.com", "MessageID": "abc-123", "ErrorCode": 0, "Message": "OK",
		}, &body, &calls)

		params := inquiryParams()
		params.ReplyTo = ""
		params.SendTo = "owner@example.com"

		sender := email.NewPostmarkSender(postmarkConfig(), email.WithHTTPClient(client))
		require.NoError(t, sender.SendEmail(context.Background(), params))

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "blog@example.com", body["From"])
		assert.Equal(t, "visitor@example.com", body["ReplyTo"])
		assert.Equal(t, "owner@example.com", body["To"])
		assert.Equal(t, "New contact from Ada: Hello", body["Subject"])
		assert.Equal(t, "I liked your post.", body["TextBody"])
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := postmarkServer(t, http.StatusUnprocessableEntity, map[string]any{
			"ErrorCode": 300, "Message": "Invalid email request",
		}, nil, &calls)

		sender := email.NewPostmarkSender(postmarkConfig(), email.WithHTTPClient(client))
		err := sender.SendEmail(context.Background(), inquiryParams())

		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("missing tokens never call the api", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := postmarkServer(t, http.StatusOK, map[string]any{}, nil, &calls)

		cfg := postmarkConfig()
		cfg.PostmarkServerToken = ""

		sender := email.NewPostmarkSender(cfg, email.WithHTTPClient(client))
		err := sender.SendEmail(context.Background(), inquiryParams())

		assert.ErrorIs(t, err, email.ErrMissingCredentials)
		assert.Zero(t, calls.Load())
	})
}
