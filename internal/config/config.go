package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Task    TaskConfig    `mapstructure:"task"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// ShutdownTimeout returns the graceful shutdown window.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. It may instead be
	// read from GeminiAPIKeyFile (e.g. a mounted secret).
	GeminiAPIKey     string `mapstructure:"gemini_api_key"      validate:"required"`
	GeminiAPIKeyFile string `mapstructure:"gemini_api_key_file"`

	ModelName string `mapstructure:"model_name" validate:"required"`

	// Optional prompt template overrides; the embedded templates are used when empty
	SuggestionTemplatePath  string `mapstructure:"suggestion_template_path"`
	InstructionTemplatePath string `mapstructure:"instruction_template_path"`

	MaxRetries            int `mapstructure:"max_retries"             validate:"gte=0,lte=10"`
	RetryDelaySeconds     int `mapstructure:"retry_delay_seconds"     validate:"gte=1"`
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=1"`
}

// RetryDelay returns the base delay for exponential backoff.
func (c LLMConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// RequestTimeout returns the timeout applied to each API attempt.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SessionConfig controls the in-memory session registry.
type SessionConfig struct {
	TTLMinutes           int `mapstructure:"ttl_minutes"            validate:"gte=1"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" validate:"gte=1"`
}

// TTL returns how long an idle session is kept.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SweepInterval returns how often expired sessions are evicted.
func (c SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// TaskConfig controls the worker pool that runs generation requests.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"gte=1"`
	QueueSize   int `mapstructure:"queue_size"   validate:"gte=1"`
}
