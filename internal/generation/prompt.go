package generation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/recipe-ai/internal/domain"
)

// SuggestionCount is the number of dishes the suggestion prompt asks for.
// It is advisory: responses with more or fewer lines are accepted as-is.
const SuggestionCount = 5

var (
	//go:embed templates/suggestion.tmpl
	defaultSuggestionTemplate string

	//go:embed templates/instruction.tmpl
	defaultInstructionTemplate string
)

// suggestionPromptData is the data passed to the suggestion template
type suggestionPromptData struct {
	Ingredients string
	Count       int
}

// instructionPromptData is the data passed to the instruction template
type instructionPromptData struct {
	Meal        string
	Ingredients string
}

// PromptBuilder renders the suggestion and instruction prompts.
// It holds no mutable state and is safe for concurrent use.
type PromptBuilder struct {
	suggestion  *template.Template
	instruction *template.Template
}

var defaultBuilder = &PromptBuilder{
	suggestion:  template.Must(template.New("suggestion").Parse(defaultSuggestionTemplate)),
	instruction: template.Must(template.New("instruction").Parse(defaultInstructionTemplate)),
}

// DefaultPromptBuilder returns a builder using the embedded templates.
func DefaultPromptBuilder() *PromptBuilder {
	return defaultBuilder
}

// NewPromptBuilder loads prompt templates from the given paths. An empty path
// keeps the embedded default for that prompt.
func NewPromptBuilder(suggestionPath, instructionPath string) (*PromptBuilder, error) {
	suggestion, err := loadTemplate("suggestion", suggestionPath, defaultBuilder.suggestion)
	if err != nil {
		return nil, err
	}

	instruction, err := loadTemplate("instruction", instructionPath, defaultBuilder.instruction)
	if err != nil {
		return nil, err
	}

	return &PromptBuilder{suggestion: suggestion, instruction: instruction}, nil
}

func loadTemplate(name, path string, fallback *template.Template) (*template.Template, error) {
	if path == "" {
		return fallback, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s prompt template from %s: %v",
			ErrInvalidConfig, name, path, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s prompt template: %v",
			ErrInvalidConfig, name, err)
	}

	return tmpl, nil
}

// SuggestionPrompt renders the prompt asking for dish names. An empty
// ingredient list is not rejected here.
func (b *PromptBuilder) SuggestionPrompt(ingredients []string) (string, error) {
	return execute(b.suggestion, suggestionPromptData{
		Ingredients: domain.JoinIngredients(ingredients),
		Count:       SuggestionCount,
	})
}

// InstructionPrompt renders the prompt asking for numbered cooking steps.
func (b *PromptBuilder) InstructionPrompt(meal string, ingredients []string) (string, error) {
	return execute(b.instruction, instructionPromptData{
		Meal:        meal,
		Ingredients: domain.JoinIngredients(ingredients),
	})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

// BuildSuggestionPrompt renders the embedded suggestion template.
func BuildSuggestionPrompt(ingredients []string) string {
	prompt, err := defaultBuilder.SuggestionPrompt(ingredients)
	if err != nil {
		// The embedded template only references suggestionPromptData fields
		panic(err)
	}
	return prompt
}

// BuildInstructionPrompt renders the embedded instruction template.
func BuildInstructionPrompt(meal string, ingredients []string) string {
	prompt, err := defaultBuilder.InstructionPrompt(meal, ingredients)
	if err != nil {
		panic(err)
	}
	return prompt
}
