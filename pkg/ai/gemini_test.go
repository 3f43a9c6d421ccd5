package ai

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

func fakeGemini(fn generateFunc) *GeminiClient {
	return &GeminiClient{modelName: "test-model", temperature: 0.7, maxTokens: 2048, generate: fn, log: zap.NewNop()}
}

func TestGeminiComplete(t *testing.T) {
	var gotCfg *genai.GenerateContentConfig
	var gotContents []*genai.Content
	g := fakeGemini(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		if model != "test-model" {
			t.Errorf("model = %q", model)
		}
		gotCfg, gotContents = cfg, contents
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: "  Go, SQL "}}},
			}},
		}, nil
	})

	out, err := g.Complete(context.Background(), Prompt{System: "You are a career coach.", User: "List skills"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "Go, SQL" {
		t.Errorf("out = %q", out)
	}
	if gotCfg.SystemInstruction.Parts[0].Text != "You are a career coach." {
		t.Errorf("system instruction = %+v", gotCfg.SystemInstruction)
	}
	if *gotCfg.Temperature != 0.7 || gotCfg.MaxOutputTokens != 2048 {
		t.Errorf("config = %+v", gotCfg)
	}
	if len(gotContents) != 1 || gotContents[0].Parts[0].Text != "List skills" {
		t.Errorf("contents = %+v", gotContents)
	}
}

func TestGeminiCompleteAPIError(t *testing.T) {
	g := fakeGemini(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, genai.APIError{Code: http.StatusForbidden, Status: "PERMISSION_DENIED"}
	})
	_, err := g.Complete(context.Background(), Prompt{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if apiErr.StatusCode != 403 || apiErr.Message != "PERMISSION_DENIED" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestGeminiCompleteEmpty(t *testing.T) {
	g := fakeGemini(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}, nil
	})
	if _, err := g.Complete(context.Background(), Prompt{}); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("err = %v", err)
	}

	g = fakeGemini(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	})
	if _, err := g.Complete(context.Background(), Prompt{}); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v", err)
	}
}
