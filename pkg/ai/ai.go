// Package ai talks to the text generation backends used by the builder's
// writing assistant.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultGroqModel     = "llama-3.1-8b-instant"
	DefaultGeminiModel   = "gemini-2.5-flash"

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
	DefaultTimeout     = 60 * time.Second
)

var (
	ErrMissingAPIKey     = errors.New("API key is missing")
	ErrMalformedResponse = errors.New("malformed response from generation endpoint")
	ErrEmptyResponse     = errors.New("generation endpoint returned no content")
)

// APIError is a non-success HTTP status returned by a generation endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Message)
}

// Prompt is one system instruction plus one user message.
type Prompt struct {
	System string
	User   string
}

// Completer turns a prompt into generated text. Implementations make exactly
// one attempt per call.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
	Provider() string
	Model() string
}

type Config struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	// Temperature is nil when unset; zero is a valid setting.
	Temperature *float64
	MaxTokens   int
	Timeout     time.Duration
}

func (c Config) withDefaults() Config {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderGroq
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.BaseURL == "" {
		switch c.Provider {
		case ProviderGroq:
			c.BaseURL = DefaultGroqBaseURL
		case ProviderOpenAI:
			c.BaseURL = DefaultOpenAIBaseURL
		}
	}
	if c.Model == "" {
		if c.Provider == ProviderGemini {
			c.Model = DefaultGeminiModel
		} else {
			c.Model = DefaultGroqModel
		}
	}
	if c.Temperature == nil {
		t := DefaultTemperature
		c.Temperature = &t
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// New builds the Completer for cfg.Provider. A missing API key is not an
// error here; the returned Completer fails each call with ErrMissingAPIKey.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Completer, error) {
	cfg = cfg.withDefaults()
	switch cfg.Provider {
	case ProviderGroq, ProviderOpenAI:
		return NewClient(cfg, logger), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return unconfigured{provider: cfg.Provider, model: cfg.Model}, nil
		}
		return NewGeminiClient(ctx, cfg, logger)
	}
	return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
}

type unconfigured struct {
	provider, model string
}

func (u unconfigured) Complete(context.Context, Prompt) (string, error) {
	return "", ErrMissingAPIKey
}

func (u unconfigured) Provider() string { return u.provider }
func (u unconfigured) Model() string    { return u.model }
