package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"resume-builder/internal/logger"
)

// Client calls an OpenAI-compatible chat completions endpoint (Groq by
// default).
type Client struct {
	BaseURL     string
	APIKey      string
	ModelName   string
	Temperature float64
	MaxTokens   int
	HTTP        *http.Client

	provider string
	log      *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		BaseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		APIKey:      cfg.APIKey,
		ModelName:   cfg.Model,
		Temperature: *cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		HTTP:        &http.Client{Timeout: cfg.Timeout},
		provider:    cfg.Provider,
		log:         logger.WithFields(log, logger.ProviderFields(cfg.Provider, cfg.Model)...),
	}
}

func (c *Client) Provider() string { return c.provider }
func (c *Client) Model() string    { return c.ModelName }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends p as a system plus user message pair and returns the
// trimmed content of the first choice.
func (c *Client) Complete(ctx context.Context, p Prompt) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", ErrMissingAPIKey
	}
	body, err := json.Marshal(chatRequest{
		Model: c.ModelName,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	c.log.Debug("chat completion request", logger.Excerpt("system", p.System, 80), zap.Int("prompt_len", len(p.User)))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", c.provider, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", c.provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, rb)
		c.log.Warn("chat completion failed", zap.Int("status", apiErr.StatusCode), zap.String("message", apiErr.Message))
		return "", apiErr
	}

	var cr chatResponse
	if err := json.Unmarshal(rb, &cr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	out := strings.TrimSpace(cr.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyResponse
	}
	c.log.Debug("chat completion response", logger.Excerpt("content", out, 120))
	return out, nil
}

// newAPIError prefers the endpoint's error.message and falls back to the
// standard status text.
func newAPIError(status int, body []byte) *APIError {
	msg := http.StatusText(status)
	var eb struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &eb) == nil {
		if m := strings.TrimSpace(eb.Error.Message); m != "" {
			msg = m
		}
	}
	return &APIError{StatusCode: status, Message: msg}
}
