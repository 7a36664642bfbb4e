package mailer_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"poshstore/pkg/mailer"

	"github.com/stretchr/testify/assert"
)

func TestSendPostsToTransactionalAPI(t *testing.T) {
	var captured struct {
		path    string
		apiKey  string
		payload map[string]any
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured.payload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := mailer.NewClient(mailer.Config{
		APIKey:      "test-key",
		SenderName:  "Posh Choice Store",
		SenderEmail: "no-reply@poshchoicestore.com",
		BaseURL:     server.URL,
	})

	err := client.Send([]string{"buyer@example.com", "ops@example.com"}, "Order Confirmation", "<p>Thanks!</p>")
	assert.NoError(t, err)
	assert.Equal(t, "/smtp/email", captured.path)
	assert.Equal(t, "test-key", captured.apiKey)

	sender, _ := captured.payload["sender"].(map[string]any)
	assert.Equal(t, "no-reply@poshchoicestore.com", sender["email"])

	to, _ := captured.payload["to"].([]any)
	assert.Len(t, to, 1)
	cc, _ := captured.payload["cc"].([]any)
	assert.Len(t, cc, 1)
	assert.Equal(t, "Order Confirmation", captured.payload["subject"])
}

func TestSendReportsAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer server.Close()

	client := mailer.NewClient(mailer.Config{
		APIKey:      "bad-key",
		SenderEmail: "no-reply@poshchoicestore.com",
		BaseURL:     server.URL,
	})

	err := client.Send([]string{"buyer@example.com"}, "Subject", "<p>body</p>")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendValidatesInput(t *testing.T) {
	client := mailer.NewClient(mailer.Config{SenderEmail: "no-reply@poshchoicestore.com"})
	assert.Error(t, client.Send([]string{"buyer@example.com"}, "Subject", "body"))

	client = mailer.NewClient(mailer.Config{APIKey: "key", SenderEmail: "no-reply@poshchoicestore.com"})
	assert.Error(t, client.Send(nil, "Subject", "body"))
}
