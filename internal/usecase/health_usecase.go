package usecase

import (
	"context"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
)

type healthUsecase struct {
	transport        *mail.Transport
	openaiConfigured bool
}

// NewHealthUsecase creates a new health usecase
func NewHealthUsecase(transport *mail.Transport, openaiConfigured bool) domain.HealthUsecase {
	return &healthUsecase{
		transport:        transport,
		openaiConfigured: openaiConfigured,
	}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:           "ok",
		Backend:          "go",
		EmailService:     u.transport.Provider.String(),
		OpenAIConfigured: u.openaiConfigured,
	}
}
