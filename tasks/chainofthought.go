package tasks

import (
	"context"
	"fmt"
	"io"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// MathSolution records a step-by-step solution to a word problem.
type MathSolution struct {
	Problem     string   `json:"problem" description:"The original problem"`
	Steps       []string `json:"steps" description:"Step-by-step solution process"`
	FinalAnswer string   `json:"final_answer" description:"Final numerical answer with units"`
	Confidence  string   `json:"confidence" description:"Confidence in solution" validate:"oneof=Low Medium High"`
}

const revenueProblem = `
A company's revenue increased by 15% in Q1, then decreased by 8% in Q2,
and finally increased by 12% in Q3. If their starting revenue was $500,000,
what was their revenue at the end of Q3?
`

// runChainOfThought asks the model to show its reasoning rather than just
// the answer. Low temperature for arithmetic.
func runChainOfThought(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Chain of Thought Reasoning ===")

	prompt, err := prompts.GetPrompt("chain_of_thought", map[string]any{
		"problem": revenueProblem,
	})
	if err != nil {
		return err
	}

	solution, err := prompting.GenerateRecord[MathSolution](ctx, c, prompt,
		prompting.WithTemperature(0.1),
		prompting.WithMaxTokens(1200),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Problem: %s\n", solution.Problem)
	fmt.Fprintln(out, "\nSolution Steps:")
	for i, step := range solution.Steps {
		fmt.Fprintf(out, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(out, "\nFinal Answer: %s\n", solution.FinalAnswer)
	fmt.Fprintf(out, "Confidence: %s\n", solution.Confidence)
	return nil
}
