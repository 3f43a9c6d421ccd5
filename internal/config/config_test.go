package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func load(t *testing.T, cfgFile string) (*Config, error) {
	t.Helper()
	return Load(viper.New(), cfgFile)
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3000 || cfg.AI.Provider != "groq" || cfg.AI.MaxTokens != 2048 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.AI.Temperature != 0.7 || cfg.AI.Timeout != 60*time.Second || cfg.Export.Timeout != 60*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")
	t.Setenv("RESUME_BUILDER_AI_PROVIDER", "Gemini")
	t.Setenv("RESUME_BUILDER_AI_MAX_TOKENS", "512")
	t.Setenv("RESUME_BUILDER_AI_TIMEOUT", "15s")

	cfg, err := load(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8081 || cfg.Export.ChromePath != "/usr/bin/chromium" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.AI.Provider != "gemini" || cfg.AI.MaxTokens != 512 || cfg.AI.Timeout != 15*time.Second {
		t.Fatalf("ai = %+v", cfg.AI)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	body := "port: 9000\nai:\n  provider: openai\n  model: gpt-4o-mini\nexport:\n  timeout: 2m\n"
	if err := os.WriteFile(filepath.Join(dir, "resume-builder.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 || cfg.AI.Provider != "openai" || cfg.AI.Model != "gpt-4o-mini" || cfg.Export.Timeout != 2*time.Minute {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := load(t, "nope.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUME_BUILDER_AI_PROVIDER", "anthropic")
	t.Setenv("PORT", "70000")

	_, err := load(t, "")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"unknown ai.provider", "port 70000"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestCompletionKeyResolution(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROQ_API_KEY", "from-env")

	cfg := &Config{AI: AIConfig{Provider: "groq", APIKey: "inline", APIKeyFile: keyFile}}
	got, err := cfg.Completion()
	if err != nil || got.APIKey != "from-file" {
		t.Fatalf("file: %q %v", got.APIKey, err)
	}

	cfg.AI.APIKeyFile = ""
	if got, _ := cfg.Completion(); got.APIKey != "inline" {
		t.Fatalf("inline: %q", got.APIKey)
	}

	cfg.AI.APIKey = ""
	if got, _ := cfg.Completion(); got.APIKey != "from-env" {
		t.Fatalf("env: %q", got.APIKey)
	}

	empty := filepath.Join(dir, "empty")
	_ = os.WriteFile(empty, nil, 0o600)
	cfg.AI.APIKeyFile = empty
	if _, err := cfg.Completion(); err == nil {
		t.Fatal("expected error for empty key file")
	}
}

func TestZeroTemperatureReachesCompletion(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESUME_BUILDER_AI_TEMPERATURE", "0")

	cfg, err := load(t, "")
	if err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Completion()
	if err != nil {
		t.Fatal(err)
	}
	if got.Temperature == nil || *got.Temperature != 0 {
		t.Fatalf("temperature = %v, want 0", got.Temperature)
	}
}
