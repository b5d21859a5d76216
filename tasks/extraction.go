package tasks

import (
	"context"
	"fmt"
	"io"
	"strings"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// MovieReview captures the sentiment and details of a movie review.
type MovieReview struct {
	Title     string   `json:"title" description:"Movie title"`
	Sentiment string   `json:"sentiment" description:"Overall sentiment" validate:"oneof=Positive Negative Neutral"`
	Rating    float64  `json:"rating" description:"Rating out of 10" validate:"gte=1,lte=10"`
	KeyPoints []string `json:"key_points" description:"Main points mentioned in review"`
}

const matrixReview = `
I watched The Matrix last night and wow! The special effects were groundbreaking
for 1999, and Keanu Reeves delivered a solid performance. The philosophical themes
about reality and choice really made me think. The action sequences were incredible,
especially the bullet-time effects. I'd give it a 9/10 - definitely a must-watch!
`

// runExtraction pulls structured information out of unstructured review text.
// Low temperature keeps the extraction consistent.
func runExtraction(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== Basic Structured Extraction ===")

	prompt, err := prompts.GetPrompt("extraction", map[string]any{
		"review_text": matrixReview,
	})
	if err != nil {
		return err
	}

	review, err := prompting.GenerateRecord[MovieReview](ctx, c, prompt,
		prompting.WithTemperature(0.1),
		prompting.WithMaxTokens(1000),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Movie: %s\n", review.Title)
	fmt.Fprintf(out, "Sentiment: %s\n", review.Sentiment)
	fmt.Fprintf(out, "Rating: %g/10\n", review.Rating)
	fmt.Fprintf(out, "Key Points: %s\n", strings.Join(review.KeyPoints, ", "))
	return nil
}
