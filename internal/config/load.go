package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RECIPEAI_LLM_GEMINI_API_KEY.
const EnvPrefix = "RECIPEAI"

// keys without defaults still need binding so AutomaticEnv can see them
var boundKeys = []string{
	"llm.gemini_api_key",
	"llm.gemini_api_key_file",
	"llm.suggestion_template_path",
	"llm.instruction_template_path",
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory or $HOME/.recipe-ai.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is like Load but reads the given config file instead of searching
// the default locations. An empty path falls back to the search.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.recipe-ai")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range boundKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := resolveAPIKey(&cfg.LLM); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("llm.request_timeout_seconds", 60)

	v.SetDefault("session.ttl_minutes", 30)
	v.SetDefault("session.sweep_interval_seconds", 60)

	v.SetDefault("task.worker_count", 4)
	v.SetDefault("task.queue_size", 64)
}

// resolveAPIKey reads the API key from GeminiAPIKeyFile when no key was given directly.
func resolveAPIKey(cfg *LLMConfig) error {
	if cfg.GeminiAPIKey != "" || cfg.GeminiAPIKeyFile == "" {
		return nil
	}

	content, err := os.ReadFile(cfg.GeminiAPIKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read API key file: %w", err)
	}

	cfg.GeminiAPIKey = strings.TrimSpace(string(content))
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("API key file %s is empty", cfg.GeminiAPIKeyFile)
	}
	return nil
}
