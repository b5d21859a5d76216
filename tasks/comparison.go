package tasks

import (
	"context"
	"fmt"
	"io"
	"strings"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// LanguageComparison is a criteria matrix over several options. The nested
// maps cannot be expressed as a response schema, so this task constrains
// the reply through the prompt alone and validates after decoding.
type LanguageComparison struct {
	ItemsCompared      []string                     `json:"items_compared" description:"Items being compared" validate:"min=2"`
	ComparisonCriteria []string                     `json:"comparison_criteria" description:"Criteria used for comparison" validate:"min=1"`
	DetailedAnalysis   map[string]map[string]string `json:"detailed_analysis" description:"Analysis for each item across criteria"`
	Recommendation     string                       `json:"recommendation" description:"Overall recommendation based on analysis" validate:"required"`
	BestForScenarios   map[string]string            `json:"best_for_scenarios" description:"Which option is best for different use cases"`
}

// runComparison asks for a structured comparative analysis of three
// languages across explicit criteria.
func runComparison(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Comparative Analysis ===")

	prompt, err := prompts.GetPrompt("comparison", nil)
	if err != nil {
		return err
	}

	raw, err := c.GenerateJSON(ctx, prompt,
		prompting.WithTemperature(0.4),
		prompting.WithMaxTokens(2500),
	)
	if err != nil {
		return err
	}
	result, err := prompting.Decode[LanguageComparison](raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Programming Language Comparison for College Students")
	fmt.Fprintln(out, strings.Repeat("=", 55))
	fmt.Fprintf(out, "Languages: %s\n", strings.Join(result.ItemsCompared, ", "))
	fmt.Fprintf(out, "Criteria: %s\n", strings.Join(result.ComparisonCriteria, ", "))

	fmt.Fprintln(out, "\nDetailed Analysis:")
	for item, analysis := range result.DetailedAnalysis {
		fmt.Fprintf(out, "\n%s:\n", strings.ToUpper(item))
		for criterion, assessment := range analysis {
			fmt.Fprintf(out, "  - %s: %s\n", criterion, assessment)
		}
	}

	fmt.Fprintf(out, "\nRecommendation:\n%s\n", result.Recommendation)

	fmt.Fprintln(out, "\nBest For Different Scenarios:")
	for scenario, choice := range result.BestForScenarios {
		fmt.Fprintf(out, "  - %s: %s\n", scenario, choice)
	}
	return nil
}
