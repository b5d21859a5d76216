package prompting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"
)

// ErrEmptyPrompt is returned when a generation call is given no prompt text.
var ErrEmptyPrompt = errors.New("prompt is empty")

// ErrMissingAPIKey is returned by NewClient when no API key can be found.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required")

// ErrNoCandidates is returned when the model reply carries no candidates.
var ErrNoCandidates = errors.New("no candidates in response")

// Model represents a model identifier.
type Model string

// DefaultModel is used when neither the client nor the call names one.
const DefaultModel Model = "gemini-2.0-flash"

// Invoker abstraction allows mocking and offline testing.
type Invoker interface {
	Generate(ctx context.Context, model Model, messages []*Message, cfg *genai.GenerateContentConfig) (string, error)
}

// Client talks to the hosted model API. All calls go through a Retrier so
// transient throttling is absorbed instead of surfacing to the examples.
type Client struct {
	genai   *genai.Client
	invoker Invoker
	retrier *Retrier
	model   Model
	log     *slog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithLogger lets the caller supply their own logger.
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRetrier replaces the default retry behavior.
func WithRetrier(r *Retrier) ClientOption {
	return func(c *Client) {
		if r != nil {
			c.retrier = r
		}
	}
}

// WithDefaultModel sets the model used when a call does not name one.
func WithDefaultModel(m Model) ClientOption {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// NewClient builds a Client backed by the Gemini API. The API key is read
// from the GEMINI_API_KEY environment variable.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	c := &Client{
		genai:   gc,
		retrier: NewRetrier(DefaultRetryConfig),
		model:   DefaultModel,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.invoker = &genaiInvoker{client: gc, log: c.log}
	return c, nil
}

// Generate sends a single user prompt and returns the reply text untouched.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("generate: %w", ErrEmptyPrompt)
	}

	cfg := newGenerateConfig(opts...)
	if err := cfg.validate(); err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	model := c.model
	if cfg.model != "" {
		model = cfg.model
	}

	parts := append([]*Part{NewTextPart(prompt)}, cfg.parts...)
	messages := []*Message{NewUserMessage(parts...)}
	contentCfg := cfg.contentConfig()

	c.log.Debug("generating", "model", string(model), "prompt_length", len(prompt), "parts", len(parts))
	return Retry(ctx, c.retrier, func() (string, error) {
		return c.invoker.Generate(ctx, model, messages, contentCfg)
	})
}

// GenerateJSON is Generate with the reply constrained to JSON.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, opts ...GenerateOption) ([]byte, error) {
	text, err := c.Generate(ctx, prompt, append(opts, withJSONOutput())...)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// GenerateRecord asks the model for T: the response is constrained by a
// schema derived from T's tags, then decoded and validated. The declared
// struct is the single source of truth for what comes back.
func GenerateRecord[T any](ctx context.Context, c *Client, prompt string, opts ...GenerateOption) (*T, error) {
	schema, err := ResponseSchemaOf[T]()
	if err != nil {
		return nil, fmt.Errorf("response schema: %w", err)
	}
	raw, err := c.GenerateJSON(ctx, prompt, append(opts, withResponseSchema(schema))...)
	if err != nil {
		return nil, err
	}
	return Decode[T](raw)
}

// genaiInvoker implements Invoker using Google GenAI.
type genaiInvoker struct {
	client *genai.Client
	log    *slog.Logger
}

func (g *genaiInvoker) Generate(
	ctx context.Context,
	model Model,
	messages []*Message,
	cfg *genai.GenerateContentConfig,
) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	var contents []*genai.Content
	for _, msg := range messages {
		var parts []*genai.Part
		for _, part := range msg.Parts {
			switch part.Type {
			case "text":
				parts = append(parts, genai.NewPartFromText(part.Text))
			case "file":
				file := genai.File{
					URI:      part.FileURI,
					MIMEType: part.MIMEType,
				}
				parts = append(parts, genai.NewPartFromFile(file))
			}
		}
		if len(parts) > 0 {
			contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
		}
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("no valid content provided")
	}

	resp, err := g.client.Models.GenerateContent(ctx, string(model), contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in candidate content")
	}
	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("no text in first part of response")
	}

	g.log.Debug("generated content", "model", string(model), "response_length", len(text))
	return text, nil
}
