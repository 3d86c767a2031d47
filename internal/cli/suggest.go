package cli

import (
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/spf13/cobra"
)

func newSuggestCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <ingredient>...",
		Short: "Suggest meals for a list of ingredients",
		Example: `  recipe suggest chicken rice
  recipe suggest "chicken, rice, garlic"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredients, err := parseIngredients(args)
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			suggestions, err := rt.generator.GenerateMealSuggestions(cmd.Context(), ingredients)
			if err != nil {
				out.Error("%s", generation.UserMessage(err))
				return err
			}

			out.Highlight("Meals you could make:")
			for i, s := range suggestions {
				out.Plain(formatChoice(i, s.Name))
			}
			return nil
		},
	}
}
