package tasks

import (
	"context"
	"fmt"
	"io"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// EmailClassification is the classification verdict for one email.
type EmailClassification struct {
	Category   string  `json:"category" description:"Primary email category" validate:"oneof=Spam Important Personal Work Promotional"`
	Urgency    string  `json:"urgency" description:"Urgency level" validate:"oneof=Low Medium High"`
	Confidence float64 `json:"confidence" description:"Confidence in classification" validate:"gte=0,lte=1"`
	Reasoning  string  `json:"reasoning" description:"Brief explanation of classification"`
}

const maintenanceEmail = `
Subject: URGENT: System maintenance tonight
From: it-team@company.com

Hi everyone,

We will be performing critical system maintenance tonight from 11 PM to 3 AM.
All services will be unavailable during this time. Please plan accordingly.

Thanks,
IT Team
`

// runClassification classifies an email using a few-shot prompt: three
// labeled examples teach the model the format and the decision style.
func runClassification(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Few-Shot Email Classification ===")

	prompt, err := prompts.GetPrompt("classification", map[string]any{
		"email": maintenanceEmail,
	})
	if err != nil {
		return err
	}

	result, err := prompting.GenerateRecord[EmailClassification](ctx, c, prompt,
		prompting.WithTemperature(0.2),
		prompting.WithMaxTokens(800),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Category: %s\n", result.Category)
	fmt.Fprintf(out, "Urgency: %s\n", result.Urgency)
	fmt.Fprintf(out, "Confidence: %.2f\n", result.Confidence)
	fmt.Fprintf(out, "Reasoning: %s\n", result.Reasoning)
	return nil
}
