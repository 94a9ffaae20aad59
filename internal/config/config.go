package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// Server
	Port           int           `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"` // 5MB in bytes

	// LLM
	LLMProvider        string  `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	GeminiKey          string  `env:"GEMINI_API_KEY"`
	OpenAIKey          string  `env:"OPENAI_API_KEY"`
	LLMModel           string  `env:"LLM_MODEL"` // empty selects the provider default
	LLMTemperature     float32 `env:"LLM_TEMPERATURE" envDefault:"0.2"`
	LLMTopP            float32 `env:"LLM_TOP_P" envDefault:"0.8"`
	LLMMaxOutputTokens int32   `env:"LLM_MAX_OUTPUT_TOKENS" envDefault:"4096"`
	StrictSchema       bool    `env:"STRICT_SCHEMA" envDefault:"false"`

	// Cache
	CacheProvider string        `env:"CACHE_PROVIDER" envDefault:"none"` // "none" or "redis"
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// APIKeyEnv names the credential variable for the configured provider.
func (c Config) APIKeyEnv() string {
	if c.LLMProvider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}
