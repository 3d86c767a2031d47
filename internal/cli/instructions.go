package cli

import (
	"errors"
	"strings"

	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/spf13/cobra"
)

func newInstructionsCommand(rt *runtime) *cobra.Command {
	var meal string

	cmd := &cobra.Command{
		Use:     "instructions --meal <name> <ingredient>...",
		Short:   "Print cooking instructions for a meal",
		Example: `  recipe instructions --meal "Chicken Fried Rice" chicken rice`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meal = strings.TrimSpace(meal)
			if meal == "" {
				return errors.New("--meal must not be blank")
			}

			ingredients, err := parseIngredients(args)
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			body, err := rt.generator.GenerateInstructions(cmd.Context(), meal, ingredients)
			if err != nil {
				out.Error("%s", generation.UserMessage(err))
				return err
			}

			out.Highlight("%s", meal)
			out.Plain(body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&meal, "meal", "m", "", "meal to cook")
	_ = cmd.MarkFlagRequired("meal")

	return cmd
}
