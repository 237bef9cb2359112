package domain

import "context"

// ChatRequest represents a single chat message from the website widget
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatUsecase defines the interface for the chat relay
type ChatUsecase interface {
	// Ask relays one user message to the completion provider and returns the reply.
	Ask(ctx context.Context, message string) (string, error)
}
