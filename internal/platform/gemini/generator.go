package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/recipe-ai/internal/config"
	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/redact"
	"github.com/sethvargo/go-retry"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// Defaults applied when Options leave retry settings unset
const (
	defaultRetryDelay     = 2 * time.Second
	defaultRequestTimeout = 60 * time.Second
	jitterPercent         = 50
)

// ContentGenerator is the subset of the genai client used by GeminiGenerator.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Options configures a GeminiGenerator.
type Options struct {
	// Model is the Gemini model name
	Model string

	// MaxRetries is the number of retries after the first attempt for transient failures
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// RequestTimeout bounds each individual attempt
	RequestTimeout time.Duration

	// Prompts renders the prompts; the embedded defaults are used when nil
	Prompts *generation.PromptBuilder
}

// OptionsFromConfig builds Options from LLM configuration, loading any
// prompt template overrides.
func OptionsFromConfig(cfg config.LLMConfig) (Options, error) {
	prompts, err := generation.NewPromptBuilder(cfg.SuggestionTemplatePath, cfg.InstructionTemplatePath)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Model:          cfg.ModelName,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay(),
		RequestTimeout: cfg.RequestTimeout(),
		Prompts:        prompts,
	}, nil
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	client ContentGenerator
	opts   Options
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator backed by a real genai client.
// The API key must come from configuration; it is never defaulted.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", opts.Model,
		"max_retries", opts.MaxRetries,
		"api_key_present", true)

	return NewGeminiGeneratorWithClient(logger, client.Models, opts)
}

// NewGeminiGeneratorWithClient creates a GeminiGenerator around an existing
// ContentGenerator.
func NewGeminiGeneratorWithClient(logger *slog.Logger, client ContentGenerator, opts Options) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: content generator cannot be nil", generation.ErrInvalidConfig)
	}

	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxRetries < 0 {
		logger.Warn("Invalid max retries value, using 0", "max_retries", opts.MaxRetries)
		opts.MaxRetries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.Prompts == nil {
		opts.Prompts = generation.DefaultPromptBuilder()
	}

	return &GeminiGenerator{
		logger: logger,
		client: client,
		opts:   opts,
	}, nil
}

// GenerateMealSuggestions implements generation.Generator.
func (g *GeminiGenerator) GenerateMealSuggestions(
	ctx context.Context,
	ingredients []string,
) ([]domain.MealSuggestion, error) {
	prompt, err := g.opts.Prompts.SuggestionPrompt(ingredients)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Generating meal suggestions",
		"ingredient_count", len(ingredients),
		"prompt_length", len(prompt))

	text, err := g.generate(ctx, "suggestions", prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := generation.ParseSuggestions(text)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "Meal suggestions generated",
		"suggestion_count", len(suggestions),
		"requested_count", generation.SuggestionCount)

	return suggestions, nil
}

// GenerateInstructions implements generation.Generator. The body is
// returned exactly as the model produced it.
func (g *GeminiGenerator) GenerateInstructions(
	ctx context.Context,
	meal string,
	ingredients []string,
) (string, error) {
	prompt, err := g.opts.Prompts.InstructionPrompt(meal, ingredients)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Generating instructions",
		"meal", meal,
		"ingredient_count", len(ingredients),
		"prompt_length", len(prompt))

	text, err := g.generate(ctx, "instructions", prompt)
	if err != nil {
		return "", err
	}

	g.logger.InfoContext(ctx, "Instructions generated",
		"meal", meal,
		"length", len(text))

	return text, nil
}

// generate sends the prompt, retrying transient failures with exponential
// backoff and jitter. Permanent failures and empty responses are returned
// immediately.
func (g *GeminiGenerator) generate(ctx context.Context, operation, prompt string) (string, error) {
	backoff := retry.NewExponential(g.opts.RetryDelay)
	backoff = retry.WithJitterPercent(jitterPercent, backoff)
	backoff = retry.WithMaxRetries(uint64(g.opts.MaxRetries), backoff)

	var text string
	attempt := 0

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		g.logger.InfoContext(ctx, "Making Gemini API call",
			"operation", operation,
			"attempt", attempt,
			"max_attempts", g.opts.MaxRetries+1)

		result, err := g.callOnce(ctx, prompt)
		if err == nil {
			text = result
			return nil
		}

		g.logger.WarnContext(ctx, "Gemini API call failed",
			"operation", operation,
			"attempt", attempt,
			"transient", errors.Is(err, generation.ErrTransientFailure),
			"error", redact.Error(err))

		if errors.Is(err, generation.ErrTransientFailure) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, generation.ErrTransientFailure) {
			g.logger.ErrorContext(ctx, "Maximum retry attempts reached",
				"operation", operation,
				"attempts", attempt)
		}
		return "", err
	}

	return text, nil
}

// callOnce performs a single API attempt bounded by the request timeout.
func (g *GeminiGenerator) callOnce(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.opts.RequestTimeout)
	defer cancel()

	resp, err := g.client.GenerateContent(attemptCtx, g.opts.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyError(ctx, err)
	}

	return extractText(resp)
}

// extractText returns the concatenated text of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.ErrEmptyResponse
	}

	if feedback := resp.PromptFeedback; feedback != nil {
		reason := string(feedback.BlockReason)
		if reason != "" && reason != "BLOCKED_REASON_UNSPECIFIED" {
			return "", blockedError("prompt blocked: " + reason + " " + feedback.BlockReasonMessage)
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", blockedError("response blocked by safety filters")
	}

	if candidate.Content == nil {
		return "", generation.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyResponse
	}

	return text, nil
}

func blockedError(message string) *generation.APIError {
	return &generation.APIError{
		Message:   strings.TrimSpace(message),
		Transient: false,
		Err:       generation.ErrContentBlocked,
	}
}
