package mail

import (
	"context"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/config"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/logger"
)

// Provider identifies the email transport selected at startup.
type Provider int

const (
	ProviderDisabled Provider = iota
	ProviderResend
	ProviderBrevo
	ProviderSMTP
)

func (p Provider) String() string {
	switch p {
	case ProviderResend:
		return "resend"
	case ProviderBrevo:
		return "brevo"
	case ProviderSMTP:
		return "gmail-smtp"
	default:
		return "disabled"
	}
}

// Transport is the process-wide mail state: the provider chosen at startup
// and its live sender. It is immutable after Select returns; request
// handlers only read it.
type Transport struct {
	Provider Provider
	Sender   Sender
	// Verified is false only for an SMTP account whose startup handshake
	// failed. Dispatch still uses the account so the real error surfaces
	// on send instead of being masked by a silent fallback.
	Verified bool
}

// Disabled reports whether no provider is available.
func (t *Transport) Disabled() bool {
	return t.Provider == ProviderDisabled
}

// Select evaluates mail configuration once, in fixed priority order:
// Resend API key, then Brevo API key, then SMTP account, then disabled.
// It must complete before the listener accepts connections so no request
// ever observes a partially initialized transport.
func Select(ctx context.Context, cfg *config.Config) *Transport {
	if cfg.ResendAPIKey != "" {
		logger.Log.Info("email transport selected", "provider", ProviderResend.String())
		return &Transport{
			Provider: ProviderResend,
			Sender:   NewResendSender(cfg.ResendAPIKey),
			Verified: true,
		}
	}

	if cfg.BrevoAPIKey != "" {
		logger.Log.Info("email transport selected", "provider", ProviderBrevo.String())
		return &Transport{
			Provider: ProviderBrevo,
			Sender:   NewBrevoSender(cfg.BrevoAPIKey),
			Verified: true,
		}
	}

	if cfg.EmailUser != "" && cfg.EmailPass != "" {
		sender := NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
		verified := true
		if err := sender.Verify(ctx); err != nil {
			// Keep the configured account anyway; sends will surface the
			// real error rather than falling through to disabled.
			logger.Log.Warn("smtp verification failed, keeping configured account",
				"host", cfg.SMTPHost, "error", err)
			verified = false
		} else {
			logger.Log.Info("email transport selected", "provider", ProviderSMTP.String())
		}
		return &Transport{
			Provider: ProviderSMTP,
			Sender:   sender,
			Verified: verified,
		}
	}

	logger.Log.Warn("no email provider configured - contact emails will be logged only")
	return &Transport{
		Provider: ProviderDisabled,
		Sender:   NewLogSender(),
	}
}
