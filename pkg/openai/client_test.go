package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"We offer fiber plans."}}]}`))
	}))
	defer srv.Close()

	client := New("sk-test", WithBaseURL(srv.URL))
	reply, err := client.Complete(context.Background(), "what plans do you offer?")

	require.NoError(t, err)
	assert.Equal(t, "We offer fiber plans.", reply)
	assert.Equal(t, "Bearer sk-test", gotAuth)

	// Fixed sampling parameters and the system prompt always go upstream
	assert.Equal(t, model, gotReq.Model)
	assert.Equal(t, temperature, gotReq.Temperature)
	assert.Equal(t, maxTokens, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "what plans do you offer?", gotReq.Messages[1].Content)
}

func TestCompleteStatusErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"upstream failed"}}`))
			}))
			defer srv.Close()

			client := New("sk-test", WithBaseURL(srv.URL))
			_, err := client.Complete(context.Background(), "hello")

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tc.status, statusErr.StatusCode)
			assert.Contains(t, statusErr.Body, "upstream failed")
			assert.Equal(t, 1, calls, "no retry on upstream failure")
		})
	}
}

func TestCompleteEmptyCompletion(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := New("sk-test", WithBaseURL(srv.URL))
			_, err := client.Complete(context.Background(), "hello")

			assert.ErrorIs(t, err, ErrEmptyCompletion)
		})
	}
}

func TestConfigured(t *testing.T) {
	assert.True(t, New("sk-test").Configured())
	assert.False(t, New("").Configured())
}
