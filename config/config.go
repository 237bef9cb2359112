package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// OpenAI Configuration
	OpenAIAPIKey string
	// Mail provider credentials, evaluated in priority order:
	// Resend API -> Brevo API -> Gmail SMTP -> disabled
	ResendAPIKey string
	BrevoAPIKey  string
	// Gmail SMTP (app password)
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
	// Addressing
	MailFrom       string // Verified sender address for the API providers
	ContactEmailTo string // Operator inbox receiving contact notifications
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		BrevoAPIKey:  getEnv("BREVO_API_KEY", ""),

		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnv("SMTP_PORT", "465"),
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),

		MailFrom:       getEnv("MAIL_FROM", "noreply@spirolink.net"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@spirolink.net"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
