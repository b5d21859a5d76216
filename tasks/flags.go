package tasks

import (
	"context"
	"fmt"
	"io"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// TechnicalExplanation is an explanation pitched at a named audience.
type TechnicalExplanation struct {
	Topic             string   `json:"topic" description:"The technical topic being explained"`
	ComplexityLevel   string   `json:"complexity_level" description:"Target audience complexity level"`
	Explanation       string   `json:"explanation" description:"Main explanation content"`
	KeyConcepts       []string `json:"key_concepts" description:"Important concepts covered"`
	PracticalExamples []string `json:"practical_examples" description:"Real-world examples"`
	NextSteps         string   `json:"next_steps" description:"Suggested next learning steps"`
}

// runFlags demonstrates flag-style prompting: bracketed directives at the
// top of the prompt steer tone and structure before the task is stated.
func runFlags(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Advanced Prompting with Flags ===")

	prompt, err := prompts.GetPrompt("flags", map[string]any{
		"topic":    "machine learning",
		"audience": "college students new to programming",
	})
	if err != nil {
		return err
	}

	result, err := prompting.GenerateRecord[TechnicalExplanation](ctx, c, prompt,
		prompting.WithTemperature(0.5),
		prompting.WithMaxTokens(2000),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Topic: %s\n", result.Topic)
	fmt.Fprintf(out, "Level: %s\n", result.ComplexityLevel)
	fmt.Fprintf(out, "\nExplanation:\n%s\n", result.Explanation)
	fmt.Fprintln(out, "\nKey Concepts:")
	for _, concept := range result.KeyConcepts {
		fmt.Fprintf(out, "  - %s\n", concept)
	}
	fmt.Fprintln(out, "\nPractical Examples:")
	for _, example := range result.PracticalExamples {
		fmt.Fprintf(out, "  - %s\n", example)
	}
	fmt.Fprintf(out, "\nNext Steps: %s\n", result.NextSteps)
	return nil
}
