// Package prompting is the support library behind a set of teaching
// examples for prompt engineering against the Gemini API. It covers the
// plumbing the examples share so each example file can stay focused on its
// one technique:
//
//   - Client: a thin wrapper over google.golang.org/genai exposing the
//     sampling dials (temperature, topP, topK, max tokens, stop sequences)
//     as functional options.
//   - Typed records: GenerateRecord[T] derives a response schema from a Go
//     struct's json/description/validate tags, constrains the model reply
//     to it, then decodes and validates the result. The struct declaration
//     is the single source of truth for what comes back.
//   - Retrying Invoker: every call is wrapped in a Retrier that absorbs
//     transient rate limiting. A failure is retryable if and only if its
//     message contains the "(ThrottlingException)" marker; everything else
//     propagates immediately and unchanged. The backoff is linear:
//     (attempt+1)*2 seconds, up to a configured attempt ceiling
//     (default 3 attempts).
//   - Prompt templates: Twig-style templates via StickPromptProvider, so
//     prompt text lives in files rather than string literals.
//   - Documents: local files are uploaded to the Files API and attached to
//     calls with WithDocument; the model reads their content directly.
//
// # Basic usage
//
//	type MovieReview struct {
//	    Title     string  `json:"title" description:"Movie title"`
//	    Sentiment string  `json:"sentiment" validate:"oneof=Positive Negative Neutral"`
//	    Rating    float64 `json:"rating" description:"Rating out of 10" validate:"gte=1,lte=10"`
//	}
//
//	client, err := prompting.NewClient(ctx)
//	review, err := prompting.GenerateRecord[MovieReview](ctx, client, prompt,
//	    prompting.WithTemperature(0.1),
//	    prompting.WithMaxTokens(1000),
//	)
//
// # Retry behavior
//
// The Retrier never swallows a terminal failure and never replaces an
// exhausted retryable failure with a synthetic error: the caller always
// receives the original failure. Before each wait it logs a line of the
// form "Rate limited. Waiting N seconds...". A context cancellation during
// the wait aborts the loop and propagates ctx.Err().
//
// The worked examples themselves live in the tasks package; the prompteng
// command runs them.
package prompting
