package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrCanceled is returned by a Prompter when the user aborts.
var ErrCanceled = errors.New("canceled")

// Prompter collects input for the interactive flow.
type Prompter interface {
	// Ingredients asks for a comma separated ingredient list
	Ingredients() (string, error)

	// Choose asks the user to pick one of items and returns its index
	Choose(label string, items []string) (int, error)

	// Confirm asks a yes/no question
	Confirm(label string) (bool, error)
}

// terminalPrompter implements Prompter with promptui.
type terminalPrompter struct{}

func (terminalPrompter) Ingredients() (string, error) {
	prompt := promptui.Prompt{
		Label: "Ingredients (comma separated)",
		Validate: func(input string) error {
			if _, err := parseIngredients([]string{input}); err != nil {
				return err
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return value, nil
}

func (terminalPrompter) Choose(label string, items []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   `{{ "›" | green | bold }} {{ . | green | bold }}`,
		Inactive: "  {{ . | faint }}",
		Selected: `{{ "✔" | green | bold }} {{ . | yellow }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}

	index, _, err := prompt.Run()
	if err != nil {
		return 0, promptError(err)
	}
	return index, nil
}

func (terminalPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, promptError(err)
	}
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCanceled
	}
	return err
}

func formatChoice(i int, name string) string {
	return fmt.Sprintf("%2d. %s", i+1, strings.TrimSpace(name))
}
