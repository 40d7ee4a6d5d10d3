package config

import (
	"os"
	"strconv"
)

// Config aggregates environment-driven settings. Absence of the Handwrytten
// key pair disables live sending; absence of an SMTP host disables owner
// notifications.
type Config struct {
	Port        string
	DataDir     string
	Handwrytten HandwryttenConfig
	SMTP        SMTPConfig
}

// HandwryttenConfig carries the fulfillment provider credentials.
type HandwryttenConfig struct {
	APIKey    string
	APISecret string
}

// Configured reports whether both credentials are present.
func (c HandwryttenConfig) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// SMTPConfig carries outbound mail settings for letter notifications.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != ""
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:    valueOrDefault("PORT", "3000"),
		DataDir: valueOrDefault("DATA_DIR", "data"),
		Handwrytten: HandwryttenConfig{
			APIKey:    os.Getenv("HANDWRYTTEN_API_KEY"),
			APISecret: os.Getenv("HANDWRYTTEN_API_SECRET"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     intOrDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     valueOrDefault("SMTP_FROM", "letters@celebritypenpal.app"),
		},
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
