package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	NatsURL         string
	NatsToken       string
	DatabaseURL     string
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
	SocialAPIBase   string
	SocialAPIToken  string
	APIToken        string
}

func Load() Config {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	return Config{
		Port:            envInt("PRISM_PORT", 8620),
		NatsURL:         envStr("NATS_URL", "nats://localhost:4222"),
		NatsToken:       envStr("NATS_TOKEN", ""),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("PRISM_MODEL", "claude-sonnet-4-20250514"),
		SocialAPIBase:   envStr("SOCIAL_API_BASE", "http://socialgw:8630"),
		SocialAPIToken:  envStr("SOCIAL_API_TOKEN", ""),
		APIToken:        envStr("PRISM_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
