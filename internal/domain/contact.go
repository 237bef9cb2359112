package domain

import (
	"context"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name        string `json:"name" binding:"omitempty,valid_name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,valid_phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// DispatchResult reports the outcome of one contact dispatch. When the mail
// transport is disabled, Delivered is false and both rendered messages are
// attached so the caller can still log or inspect them.
type DispatchResult struct {
	Provider     string
	Delivered    bool
	Warning      string
	Notification mail.Message
	Confirmation mail.Message
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the request, renders the operator notification
	// and submitter confirmation, and sends both through the active provider.
	SubmitContact(ctx context.Context, req *ContactRequest) (*DispatchResult, error)
}
