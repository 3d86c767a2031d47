package cli

import (
	"context"
	"errors"

	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/session"
	"github.com/phrazzld/recipe-ai/internal/task"
	"github.com/spf13/cobra"
)

// Menu entries offered after instructions are shown
const (
	choiceAnotherMeal = "Pick another meal"
	choiceNewSearch   = "Start over with new ingredients"
	choiceQuit        = "Quit"
)

func newInteractiveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Choose a meal and get instructions step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runInteractive(cmd)
		},
	}
}

func (rt *runtime) runInteractive(cmd *cobra.Command) error {
	prompter := rt.opts.Prompter
	if prompter == nil {
		prompter = terminalPrompter{}
	}

	queue := task.NewTaskQueue(1, rt.logger)
	pool := task.NewWorkerPool(queue, task.WorkerPoolConfig{WorkerCount: 1}, rt.logger)
	pool.Start()
	defer func() {
		queue.Close()
		pool.Stop()
	}()

	flow := &interactiveFlow{
		prompter: prompter,
		out:      newPrinter(cmd.OutOrStdout()),
		session:  session.New(rt.generator, queue, rt.logger),
	}

	err := flow.run(cmd.Context())
	if errors.Is(err, ErrCanceled) {
		flow.out.Info("Goodbye.")
		return nil
	}
	return err
}

// interactiveFlow walks ingredients -> suggestions -> instructions on a session.
type interactiveFlow struct {
	prompter Prompter
	out      *printer
	session  *session.Session
}

func (f *interactiveFlow) run(ctx context.Context) error {
	for {
		input, err := f.prompter.Ingredients()
		if err != nil {
			return err
		}

		ingredients, err := parseIngredients([]string{input})
		if err != nil {
			f.out.Error("%v", err)
			continue
		}

		again, err := f.chooseAndCook(ctx, ingredients)
		if err != nil || !again {
			return err
		}
	}
}

// chooseAndCook runs the suggestion and instruction screens for one ingredient
// list. It reports whether the user wants to start over.
func (f *interactiveFlow) chooseAndCook(ctx context.Context, ingredients []string) (bool, error) {
	f.out.Info("Finding meals for %s...", domain.JoinIngredients(ingredients))
	if err := f.session.RequestSuggestions(ingredients); err != nil {
		f.out.Error("%s", session.FailureMessage(err))
	}

	suggestions, ok, err := awaitSlot(ctx, f, f.session.Suggestions)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}

	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}
	f.out.Success("Found %d meals", len(names))

	for {
		index, err := f.prompter.Choose("Select a meal", names)
		if err != nil {
			return false, err
		}
		meal := names[index]

		f.out.Info("Getting instructions for %s...", meal)
		if err := f.session.RequestInstructions(meal, ingredients); err != nil {
			f.out.Error("%s", session.FailureMessage(err))
		}

		recipe, ok, err := awaitSlot(ctx, f, f.session.Instructions)
		if err != nil {
			return false, err
		}
		if ok {
			f.out.Highlight("%s", recipe.MealName)
			f.out.Plain(recipe.Instructions)
		}

		next, err := f.prompter.Choose("What next?", []string{choiceAnotherMeal, choiceNewSearch, choiceQuit})
		if err != nil {
			return false, err
		}
		switch next {
		case 0:
			continue
		case 1:
			return true, nil
		default:
			return false, ErrCanceled
		}
	}
}

// awaitSlot waits for slot to settle, offering a retry while it is Failed.
// ok is false when the user declines to retry.
func awaitSlot[T any](ctx context.Context, f *interactiveFlow, slot *session.Slot[T]) (T, bool, error) {
	var zero T

	for {
		snap, err := slot.Wait(ctx)
		if err != nil {
			return zero, false, err
		}

		switch snap.State {
		case session.StateSuccess:
			return *snap.Data, true, nil

		case session.StateFailed:
			f.out.Error("%s", snap.Error)

			retry, err := f.prompter.Confirm("Try again")
			if err != nil {
				return zero, false, err
			}
			if !retry {
				return zero, false, nil
			}
			if _, err := slot.Retry(); err != nil {
				f.out.Error("%s", session.FailureMessage(err))
			}

		default:
			// Idle: the request never started
			return zero, false, nil
		}
	}
}
