package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		From:    "noreply@spirolink.net",
		To:      "info@spirolink.net",
		ReplyTo: "jane@example.com",
		Subject: "New Service Inquiry: General",
		HTML:    "<p>Need fiber install</p>",
	}
}

func TestBrevoSenderSend(t *testing.T) {
	var gotAuth string
	var gotPayload brevoSendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@smtp-relay>"}`))
	}))
	defer srv.Close()

	sender := NewBrevoSender("xkeysib-123")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), testMessage())

	assert.NoError(t, err)
	assert.Equal(t, "xkeysib-123", gotAuth)
	assert.Equal(t, "noreply@spirolink.net", gotPayload.Sender.Email)
	require.Len(t, gotPayload.To, 1)
	assert.Equal(t, "info@spirolink.net", gotPayload.To[0].Email)
	require.NotNil(t, gotPayload.ReplyTo)
	assert.Equal(t, "jane@example.com", gotPayload.ReplyTo.Email)
	assert.Equal(t, "New Service Inquiry: General", gotPayload.Subject)
	assert.Equal(t, "<p>Need fiber install</p>", gotPayload.HTMLContent)
}

func TestBrevoSenderOmitsEmptyReplyTo(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := NewBrevoSender("xkeysib-123")
	sender.endpoint = srv.URL

	msg := testMessage()
	msg.ReplyTo = ""
	require.NoError(t, sender.Send(context.Background(), msg))

	_, present := raw["replyTo"]
	assert.False(t, present)
}

func TestBrevoSenderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer srv.Close()

	sender := NewBrevoSender("bad-key")
	sender.endpoint = srv.URL

	err := sender.Send(context.Background(), testMessage())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "brevo", statusErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "Key not found")
}
