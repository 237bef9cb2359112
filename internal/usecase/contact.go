package usecase

import (
	"context"
	"strings"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/config"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
)

const disabledWarning = "Email delivery is not configured; your message was recorded in the server log but no email was sent."

type contactUsecase struct {
	transport *mail.Transport
	from      string
	operator  string
}

// NewContactUsecase creates the dispatch coordinator for contact submissions.
// The transport is selected once at startup and only read here.
func NewContactUsecase(transport *mail.Transport, cfg *config.Config) domain.ContactUsecase {
	return &contactUsecase{
		transport: transport,
		from:      cfg.MailFrom,
		operator:  cfg.ContactEmailTo,
	}
}

// SubmitContact validates the request, renders both emails, and sends them
// sequentially through the active provider. The operator notification goes
// first; if it fails the confirmation is never attempted. There is no
// cross-provider fallback: a failure names the provider and surfaces as-is.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (*domain.DispatchResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return nil, domain.NewValidationError("Name, email, and message are required")
	}

	sub := submission{
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Message:     message,
	}

	notification, err := renderNotification(uc.from, uc.operator, sub)
	if err != nil {
		return nil, err
	}
	confirmation, err := renderConfirmation(uc.from, sub)
	if err != nil {
		return nil, err
	}

	if uc.transport.Disabled() {
		// No network call; the log sender keeps the submission observable.
		_ = uc.transport.Sender.Send(ctx, notification)
		_ = uc.transport.Sender.Send(ctx, confirmation)
		return &domain.DispatchResult{
			Provider:     uc.transport.Provider.String(),
			Delivered:    false,
			Warning:      disabledWarning,
			Notification: notification,
			Confirmation: confirmation,
		}, nil
	}

	provider := uc.transport.Provider.String()
	if err := uc.transport.Sender.Send(ctx, notification); err != nil {
		return nil, &domain.DispatchError{Provider: provider, Err: err}
	}
	if err := uc.transport.Sender.Send(ctx, confirmation); err != nil {
		return nil, &domain.DispatchError{Provider: provider, Err: err}
	}

	return &domain.DispatchResult{
		Provider:     provider,
		Delivered:    true,
		Notification: notification,
		Confirmation: confirmation,
	}, nil
}
