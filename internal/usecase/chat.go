package usecase

import (
	"context"
	"strings"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
)

// Completer generates one reply for one user message.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

type chatUsecase struct {
	completer Completer
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(completer Completer) domain.ChatUsecase {
	return &chatUsecase{completer: completer}
}

// Ask validates the message and relays it to the completion provider.
// Upstream errors pass through untouched so the boundary can map their status.
func (uc *chatUsecase) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.NewValidationError("Message is required")
	}

	return uc.completer.Complete(ctx, message)
}
