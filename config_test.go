package prompting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []GenerateOption
		wantErr string
	}{
		{"defaults", nil, ""},
		{"all dials in range", []GenerateOption{
			WithTemperature(0.7), WithTopP(0.9), WithTopK(40), WithMaxTokens(500),
		}, ""},
		{"temperature too high", []GenerateOption{WithTemperature(1.5)}, "temperature"},
		{"temperature negative", []GenerateOption{WithTemperature(-0.1)}, "temperature"},
		{"topP too high", []GenerateOption{WithTopP(1.01)}, "topP"},
		{"topK zero", []GenerateOption{WithTopK(0)}, "topK"},
		{"negative max tokens", []GenerateOption{WithMaxTokens(-1)}, "maxTokens"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newGenerateConfig(tt.opts...).validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateConfig_ContentConfig(t *testing.T) {
	cfg := newGenerateConfig(
		WithTemperature(0.2),
		WithMaxTokens(1000),
		WithStopSequences("END", "STOP"),
	)

	out := cfg.contentConfig()
	require.NotNil(t, out.Temperature)
	assert.InDelta(t, 0.2, float64(*out.Temperature), 1e-6)
	assert.EqualValues(t, 1000, out.MaxOutputTokens)
	assert.Equal(t, []string{"END", "STOP"}, out.StopSequences)
	assert.Empty(t, out.ResponseMIMEType)
}

func TestGenerateConfig_JSONOutput(t *testing.T) {
	cfg := newGenerateConfig(withJSONOutput())

	out := cfg.contentConfig()
	assert.Equal(t, "application/json", out.ResponseMIMEType)
	assert.Nil(t, out.ResponseSchema)
}

func TestWithDocument(t *testing.T) {
	doc := &Document{URI: "files/abc", MIMEType: "application/pdf"}
	cfg := newGenerateConfig(WithDocument(doc))

	require.Len(t, cfg.parts, 1)
	assert.Equal(t, "file", cfg.parts[0].Type)
	assert.Equal(t, "files/abc", cfg.parts[0].FileURI)
	assert.Equal(t, "application/pdf", cfg.parts[0].MIMEType)
}
