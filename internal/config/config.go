package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Chunking
	ChunkCount  int `env:"BOOKSUM_CHUNK_COUNT" envDefault:"20"`
	MinChunkLen int `env:"BOOKSUM_MIN_CHUNK_LEN" envDefault:"100"`

	// Summarization provider
	Provider          string        `env:"BOOKSUM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini-2024-07-18"`
	AnthropicAPIKey   string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel    string        `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	Temperature       float64       `env:"BOOKSUM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens         int           `env:"BOOKSUM_MAX_TOKENS" envDefault:"400"`
	RequestTimeout    time.Duration `env:"BOOKSUM_REQUEST_TIMEOUT" envDefault:"120s"`
	RequestsPerMinute int           `env:"BOOKSUM_REQUESTS_PER_MINUTE" envDefault:"0"`

	// PDF
	PDFFallbackPdftotext bool `env:"PDF_FALLBACK_PDFTOTEXT" envDefault:"true"`

	// HTTP server
	Port           string `env:"PORT" envDefault:"8090"`
	APIKey         string `env:"BOOKSUM_API_KEY"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"` // 50MB
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Provider = strings.ToLower(cfg.Provider)
	return cfg, nil
}

// Validate checks the settings every summarization run needs.
func (c Config) Validate() error {
	if c.ChunkCount <= 0 {
		return fmt.Errorf("BOOKSUM_CHUNK_COUNT must be positive, got %d", c.ChunkCount)
	}
	if c.MinChunkLen < 0 {
		return fmt.Errorf("BOOKSUM_MIN_CHUNK_LEN must not be negative, got %d", c.MinChunkLen)
	}
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	default:
		return fmt.Errorf("BOOKSUM_PROVIDER must be openai or anthropic, got %q", c.Provider)
	}
	return nil
}

// ValidateServer adds the checks that only apply to the HTTP server.
func (c Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("BOOKSUM_API_KEY is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// APIKeyForProvider returns the credential for the selected provider.
func (c Config) APIKeyForProvider() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// ModelForProvider returns the model for the selected provider.
func (c Config) ModelForProvider() string {
	if c.Provider == "anthropic" {
		return c.AnthropicModel
	}
	return c.OpenAIModel
}

// BaseURLForProvider returns the endpoint override, if any, for the selected provider.
func (c Config) BaseURLForProvider() string {
	if c.Provider == "anthropic" {
		return ""
	}
	return c.OpenAIBaseURL
}
