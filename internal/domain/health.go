package domain

import "context"

// HealthStatus is the liveness report returned by GET /health.
type HealthStatus struct {
	Status           string `json:"status"`
	Backend          string `json:"backend"`
	EmailService     string `json:"emailService"`
	OpenAIConfigured bool   `json:"openaiConfigured"`
}

// HealthUsecase defines the interface for health reporting
type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
