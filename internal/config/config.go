package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	// DefaultEnvFile is read at startup when present. Variables already set in the
	// process environment win over it.
	DefaultEnvFile = ".env"
)

// Config is built once at startup and injected into every component that needs it.
type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	GenerationProvider    string  `mapstructure:"generation_provider"`
	GenerationTemperature float32 `mapstructure:"generation_temperature"`

	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	GeminiModelName string `mapstructure:"gemini_model_name"`

	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIModelName string `mapstructure:"openai_model_name"`
	OpenAIBaseURL   string `mapstructure:"openai_base_url"`

	ExecutionLogEnabled bool   `mapstructure:"execution_log_enabled"`
	PostgresURL         string `mapstructure:"postgres_url"`

	DefaultOrigin string `mapstructure:"default_origin"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("generation_provider", ProviderGemini)
	v.SetDefault("generation_temperature", 1.0)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model_name", "gemini-1.5-pro")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model_name", "gpt-4o")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("execution_log_enabled", true)
	v.SetDefault("postgres_url", "")
	v.SetDefault("default_origin", "東京")
}

// Load reads envFile (if it exists) into the process environment, then resolves every
// setting from the environment with defaults. An empty envFile skips the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
			}
			log.Debug().Str("path", envFile).Msg("Env file not found. Using defaults and environment variables.")
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	cfg.GenerationProvider = strings.ToLower(strings.TrimSpace(cfg.GenerationProvider))

	return &cfg, nil
}

// Validate reports the first setting that would make the service unusable.
func (c *Config) Validate() error {
	switch c.GenerationProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, c.GenerationProvider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%w: provider %s", ErrMissingAPIKey, c.GenerationProvider)
	}
	if c.GenerationTemperature < 0 || c.GenerationTemperature > 2 {
		return fmt.Errorf("%w: got %v", ErrInvalidTemperature, c.GenerationTemperature)
	}
	if c.ExecutionLogEnabled && c.PostgresURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.GenerationProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// ModelName returns the model of the selected provider.
func (c *Config) ModelName() string {
	if c.GenerationProvider == ProviderOpenAI {
		return c.OpenAIModelName
	}
	return c.GeminiModelName
}
