package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"resume-builder/internal/logger"
)

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// GeminiClient calls the Gemini API through the Google GenAI SDK.
type GeminiClient struct {
	modelName   string
	temperature float32
	maxTokens   int32
	generate    generateFunc
	log         *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg Config, log *zap.Logger) (*GeminiClient, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{
		modelName:   cfg.Model,
		temperature: float32(*cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens),
		generate:    client.Models.GenerateContent,
		log:         logger.WithFields(log, logger.ProviderFields(ProviderGemini, cfg.Model)...),
	}, nil
}

func (g *GeminiClient) Provider() string { return ProviderGemini }
func (g *GeminiClient) Model() string    { return g.modelName }

func (g *GeminiClient) Complete(ctx context.Context, p Prompt) (string, error) {
	temp := g.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: p.System}}},
		Temperature:       &temp,
		MaxOutputTokens:   g.maxTokens,
	}
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: p.User}},
	}}

	resp, err := g.generate(ctx, g.modelName, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			msg := strings.TrimSpace(apiErr.Message)
			if msg == "" {
				msg = apiErr.Status
			}
			g.log.Warn("gemini generation failed", zap.Int("status", apiErr.Code), zap.String("message", msg))
			return "", &APIError{StatusCode: apiErr.Code, Message: msg}
		}
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	var b strings.Builder
	if c := resp.Candidates[0]; c != nil && c.Content != nil {
		for _, part := range c.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			b.WriteString(part.Text)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
