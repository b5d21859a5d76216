package tasks

import (
	"context"
	"fmt"
	"io"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// runDials sends a plain-text prompt with the sampling dials set explicitly.
// There is no structured output here; the point is seeing the parameters.
func runDials(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Testing Dials and Parameters ===")

	prompt, err := prompts.GetPrompt("dials", nil)
	if err != nil {
		return err
	}

	reply, err := c.Generate(ctx, prompt,
		prompting.WithTemperature(0.8),
		prompting.WithTopP(0.9),
		prompting.WithMaxTokens(500),
		prompting.WithStopSequences("<END>", "###"),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Response: %s\n", reply)
	return nil
}
