package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/recipe-ai/internal/config"
	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/platform/gemini"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/spf13/cobra"
)

// ErrNoIngredients is returned when no usable ingredient was given.
var ErrNoIngredients = errors.New("at least one ingredient is required")

// GeneratorFactory builds the generator used by the commands.
type GeneratorFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error)

// Options configures the root command.
type Options struct {
	// Version is reported by --version
	Version string

	// NewGenerator defaults to a Gemini generator built from configuration
	NewGenerator GeneratorFactory

	// Prompter drives the interactive flow; defaults to terminal prompts
	Prompter Prompter

	// LogOutput receives diagnostic logs; defaults to stderr
	LogOutput io.Writer
}

// runtime is the state shared by subcommands once configuration is loaded.
type runtime struct {
	opts       Options
	configPath string
	verbose    bool

	cfg       *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// NewRootCommand builds the recipe command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.NewGenerator == nil {
		opts.NewGenerator = defaultGenerator
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	rt := &runtime{opts: opts}

	root := &cobra.Command{
		Use:   "recipe",
		Short: "recipe - Meal ideas and cooking instructions from your ingredients.",
		Long: `recipe suggests meals you can cook from the ingredients you have and
produces step-by-step instructions for the one you pick.
Without a subcommand it starts the interactive flow.`,
		Version:      opts.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runInteractive(cmd)
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "config file (default ./config.yaml or $HOME/.recipe-ai/config.yaml)")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "log diagnostic output to stderr")

	root.AddCommand(newSuggestCommand(rt))
	root.AddCommand(newInstructionsCommand(rt))
	root.AddCommand(newInteractiveCommand(rt))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(opts Options) {
	if err := NewRootCommand(opts).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func (rt *runtime) init(ctx context.Context) error {
	cfg, err := config.LoadFile(rt.configPath)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	level := "warn"
	if rt.verbose {
		level = "debug"
	}
	rt.logger, err = logger.Setup(logger.LoggerConfig{
		Level:  level,
		Format: "text",
		Output: rt.opts.LogOutput,
	})
	if err != nil {
		return err
	}

	rt.generator, err = rt.opts.NewGenerator(ctx, cfg, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}
	return nil
}

func defaultGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error) {
	return gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
}

// parseIngredients accepts ingredients as separate arguments, comma separated
// lists, or a mix of both.
func parseIngredients(args []string) ([]string, error) {
	var raw []string
	for _, arg := range args {
		raw = append(raw, strings.Split(arg, ",")...)
	}

	ingredients := domain.NormalizeIngredients(raw)
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	return ingredients, nil
}
