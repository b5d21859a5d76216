package tasks

import (
	"context"
	"fmt"
	"io"
	"strings"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// Product is one synthetic catalog entry.
type Product struct {
	Name           string   `json:"name" description:"Product name"`
	Category       string   `json:"category" description:"Product category"`
	Price          float64  `json:"price" description:"Price in USD" validate:"gte=1,lte=10000"`
	Description    string   `json:"description" description:"Product description"`
	Features       []string `json:"features" description:"Key product features"`
	TargetAudience string   `json:"target_audience" description:"Target customer demographic"`
}

// ProductCatalog is a batch of synthetic products.
type ProductCatalog struct {
	Products []Product `json:"products" description:"List of synthetic products" validate:"min=1"`
}

// runSyntheticData generates realistic test data. A higher temperature
// trades consistency for variety, which is what synthetic data wants.
func runSyntheticData(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Synthetic Data Generation ===")

	prompt, err := prompts.GetPrompt("synthetic_data", nil)
	if err != nil {
		return err
	}

	catalog, err := prompting.GenerateRecord[ProductCatalog](ctx, c, prompt,
		prompting.WithTemperature(0.7),
		prompting.WithMaxTokens(2500),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generated %d products:\n", len(catalog.Products))
	fmt.Fprintln(out, strings.Repeat("-", 50))
	for i, p := range catalog.Products {
		fmt.Fprintf(out, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(out, "   Category: %s\n", p.Category)
		fmt.Fprintf(out, "   Price: $%.2f\n", p.Price)
		fmt.Fprintf(out, "   Target: %s\n", p.TargetAudience)
		features := p.Features
		if len(features) > 3 {
			features = features[:3]
		}
		fmt.Fprintf(out, "   Features: %s...\n\n", strings.Join(features, ", "))
	}
	return nil
}
