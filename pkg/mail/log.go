package mail

import (
	"context"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/logger"
)

// LogSender logs emails instead of sending them. It backs the disabled state
// so submissions remain observable when no provider is configured.
type LogSender struct{}

// NewLogSender creates a new log-based email sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message details and reports success.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	logger.Log.Info("email delivery disabled - message logged, not sent",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
