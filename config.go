package prompting

import (
	"fmt"

	"google.golang.org/genai"
)

// GenerateOption tunes a single generation call. These are the "dials" of
// the API: sampling temperature, nucleus/top-k sampling, output length and
// stop sequences.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	model          Model
	temperature    *float32
	topP           *float32
	topK           *float32
	maxTokens      int32
	stopSequences  []string
	jsonOutput     bool
	responseSchema *genai.Schema
	parts          []*Part // extra non-text parts, e.g. uploaded documents
}

// WithModel overrides the client's default model for one call.
func WithModel(m Model) GenerateOption {
	return func(cfg *generateConfig) { cfg.model = m }
}

// WithTemperature sets the sampling temperature. Low values give
// consistent output, high values give creative output.
func WithTemperature(t float32) GenerateOption {
	return func(cfg *generateConfig) { cfg.temperature = &t }
}

// WithTopP sets the nucleus sampling threshold.
func WithTopP(p float32) GenerateOption {
	return func(cfg *generateConfig) { cfg.topP = &p }
}

// WithTopK sets the top-k sampling cutoff.
func WithTopK(k float32) GenerateOption {
	return func(cfg *generateConfig) { cfg.topK = &k }
}

// WithMaxTokens limits the response length.
func WithMaxTokens(n int32) GenerateOption {
	return func(cfg *generateConfig) { cfg.maxTokens = n }
}

// WithStopSequences stops generation when any of the given strings is
// produced.
func WithStopSequences(seqs ...string) GenerateOption {
	return func(cfg *generateConfig) { cfg.stopSequences = seqs }
}

// WithDocument attaches an uploaded document to the call so the model can
// read its content.
func WithDocument(d *Document) GenerateOption {
	return func(cfg *generateConfig) {
		cfg.parts = append(cfg.parts, NewFilePart(d.URI, d.MIMEType))
	}
}

func withJSONOutput() GenerateOption {
	return func(cfg *generateConfig) { cfg.jsonOutput = true }
}

func withResponseSchema(s *genai.Schema) GenerateOption {
	return func(cfg *generateConfig) {
		cfg.jsonOutput = true
		cfg.responseSchema = s
	}
}

func newGenerateConfig(opts ...GenerateOption) *generateConfig {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

func (cfg *generateConfig) validate() error {
	if cfg.temperature != nil && (*cfg.temperature < 0 || *cfg.temperature > 1) {
		return fmt.Errorf("temperature %v must be between 0.0 and 1.0", *cfg.temperature)
	}
	if cfg.topP != nil && (*cfg.topP < 0 || *cfg.topP > 1) {
		return fmt.Errorf("topP %v must be between 0.0 and 1.0", *cfg.topP)
	}
	if cfg.topK != nil && *cfg.topK <= 0 {
		return fmt.Errorf("topK %v must be greater than 0", *cfg.topK)
	}
	if cfg.maxTokens < 0 {
		return fmt.Errorf("maxTokens %d must not be negative", cfg.maxTokens)
	}
	return nil
}

func (cfg *generateConfig) contentConfig() *genai.GenerateContentConfig {
	out := &genai.GenerateContentConfig{
		Temperature:     cfg.temperature,
		TopP:            cfg.topP,
		TopK:            cfg.topK,
		MaxOutputTokens: cfg.maxTokens,
		StopSequences:   cfg.stopSequences,
	}
	if cfg.jsonOutput {
		out.ResponseMIMEType = "application/json"
		out.ResponseSchema = cfg.responseSchema
	}
	return out
}
