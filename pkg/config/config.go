// Package config collects the process-wide settings, read once from the
// environment at startup and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultPort        = 5000
	DefaultLogLevel    = "info"
	DefaultOpenAIModel = "gpt-4"
	DefaultGeminiModel = "gemini-2.5-flash"

	// LocalBaseURL is the OpenAI-compatible fallback endpoint the story
	// service talks to when no API key is configured.
	LocalBaseURL = "http://localhost:1234/v1"
)

var validate = validator.New()

// Config carries everything the services read from the environment.
type Config struct {
	Port     int    `validate:"gte=1,lte=65535"`
	LogLevel string `validate:"oneof=debug info warn error"`

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string `validate:"omitempty,url"`

	GeminiKey   string
	GeminiModel string
}

// Load reads the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          DefaultPort,
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", DefaultGeminiModel),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr renders the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
