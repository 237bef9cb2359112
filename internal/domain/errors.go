package domain

import "fmt"

// ValidationError marks a client-caused failure; the HTTP boundary maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// DispatchError wraps a provider send failure with the provider that caused it.
// Dispatch never reroutes to another provider, so the name identifies exactly
// which transport rejected the message.
type DispatchError struct {
	Provider string
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("provider %s: failed to send email: %v", e.Provider, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
