// Package config loads service settings from flags, environment, an optional
// YAML file and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-builder/pkg/ai"
)

const (
	App       = "resume-builder"
	EnvPrefix = "RESUME_BUILDER"
)

type Config struct {
	Port   int          `mapstructure:"port"`
	Debug  bool         `mapstructure:"debug"`
	JSON   bool         `mapstructure:"json"`
	AI     AIConfig     `mapstructure:"ai"`
	Export ExportConfig `mapstructure:"export"`
}

type AIConfig struct {
	Provider    string        `mapstructure:"provider"`
	BaseURL     string        `mapstructure:"base-url"`
	APIKey      string        `mapstructure:"api-key"`
	APIKeyFile  string        `mapstructure:"api-key-file"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max-tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type ExportConfig struct {
	ChromePath string        `mapstructure:"chrome-path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// providerKeyEnv names the conventional key variable of each provider. It is
// consulted only when no key was configured explicitly.
var providerKeyEnv = map[string]string{
	ai.ProviderGroq:   "GROQ_API_KEY",
	ai.ProviderOpenAI: "OPENAI_API_KEY",
	ai.ProviderGemini: "GEMINI_API_KEY",
}

// SetDefaults registers every key so env overrides are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("ai.provider", ai.ProviderGroq)
	v.SetDefault("ai.base-url", "")
	v.SetDefault("ai.api-key", "")
	v.SetDefault("ai.api-key-file", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.temperature", ai.DefaultTemperature)
	v.SetDefault("ai.max-tokens", ai.DefaultMaxTokens)
	v.SetDefault("ai.timeout", ai.DefaultTimeout)
	v.SetDefault("export.chrome-path", "")
	v.SetDefault("export.timeout", 60*time.Second)
}

// Load reads configuration into cfg. cfgFile, when set, must exist; otherwise
// resume-builder.yaml in the working directory is used if present.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("binding PORT: %w", err)
	}
	if err := v.BindEnv("export.chrome-path", EnvPrefix+"_EXPORT_CHROME_PATH", "CHROME_PATH"); err != nil {
		return nil, fmt.Errorf("binding CHROME_PATH: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %q: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(App)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var problems []string
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("port %d out of range", c.Port))
	}
	if _, ok := providerKeyEnv[c.AI.Provider]; !ok {
		problems = append(problems, fmt.Sprintf("unknown ai.provider %q", c.AI.Provider))
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		problems = append(problems, fmt.Sprintf("ai.temperature %.2f outside [0, 2]", c.AI.Temperature))
	}
	if c.AI.MaxTokens <= 0 {
		problems = append(problems, "ai.max-tokens must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Completion resolves the generation backend settings. The key file takes
// precedence over the inline key; an unreadable or empty key file is an error.
// With no key at all the result carries an empty APIKey.
func (c *Config) Completion() (ai.Config, error) {
	key := strings.TrimSpace(c.AI.APIKey)
	if file := strings.TrimSpace(c.AI.APIKeyFile); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return ai.Config{}, fmt.Errorf("reading ai api key from file %q: %w", file, err)
		}
		key = strings.TrimSpace(string(data))
		if key == "" {
			return ai.Config{}, fmt.Errorf("ai api key file %q is empty", file)
		}
	}
	if key == "" {
		key = strings.TrimSpace(os.Getenv(providerKeyEnv[c.AI.Provider]))
	}
	temperature := c.AI.Temperature
	return ai.Config{
		Provider:    c.AI.Provider,
		BaseURL:     c.AI.BaseURL,
		APIKey:      key,
		Model:       c.AI.Model,
		Temperature: &temperature,
		MaxTokens:   c.AI.MaxTokens,
		Timeout:     c.AI.Timeout,
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
