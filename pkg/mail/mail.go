// Package mail provides email delivery with pluggable providers selected
// once at startup in a fixed priority order.
package mail

import (
	"context"
	"fmt"
)

// Message is a fully rendered email ready for a single provider send.
type Message struct {
	From    string
	To      string
	ReplyTo string // Attached where the transport supports it
	Subject string
	HTML    string
}

// Sender is the interface for email providers. Implementations send exactly
// one message per call, never retry, and never mutate shared state.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// StatusError captures a non-2xx response from an HTTP-API provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}
