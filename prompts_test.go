package prompting

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStickPromptProvider_GetPrompt(t *testing.T) {
	p, err := NewStickPromptProvider(WithTemplates(map[string]string{
		"greeting": "Hello {{ name }}!",
	}))
	require.NoError(t, err)

	got, err := p.GetPrompt("greeting", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
}

func TestStickPromptProvider_SharedVars(t *testing.T) {
	p, err := NewStickPromptProvider(
		WithTemplates(map[string]string{
			"q": "Model: {{ model }}. Question: {{ question }}",
		}),
		WithVar("model", "gemini-2.0-flash"),
	)
	require.NoError(t, err)

	got, err := p.GetPrompt("q", map[string]any{"question": "why?"})
	require.NoError(t, err)
	assert.Equal(t, "Model: gemini-2.0-flash. Question: why?", got)
}

func TestStickPromptProvider_CallVarsWinOverShared(t *testing.T) {
	p, err := NewStickPromptProvider(
		WithTemplates(map[string]string{"t": "{{ tone }}"}),
		WithVar("tone", "formal"),
	)
	require.NoError(t, err)

	got, err := p.GetPrompt("t", map[string]any{"tone": "casual"})
	require.NoError(t, err)
	assert.Equal(t, "casual", got)
}

func TestStickPromptProvider_WithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/extraction.twig": &fstest.MapFile{Data: []byte("Extract from: {{ text }}")},
		"prompts/readme.md":       &fstest.MapFile{Data: []byte("ignored")},
	}

	p, err := NewStickPromptProvider(WithFS(fsys, "prompts"))
	require.NoError(t, err)

	got, err := p.GetPrompt("extraction", map[string]any{"text": "a review"})
	require.NoError(t, err)
	assert.Equal(t, "Extract from: a review", got)

	_, err = p.GetPrompt("readme", nil)
	assert.Error(t, err)
}

func TestStickPromptProvider_MissingTemplate(t *testing.T) {
	p, err := NewStickPromptProvider()
	require.NoError(t, err)

	_, err = p.GetPrompt("nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestStickPromptProvider_AddTemplate(t *testing.T) {
	p, err := NewStickPromptProvider()
	require.NoError(t, err)

	p.AddTemplate("late", "added {{ when }}")
	got, err := p.GetPrompt("late", map[string]any{"when": "later"})
	require.NoError(t, err)
	assert.Equal(t, "added later", got)
}

func TestSimplePromptProvider(t *testing.T) {
	p := SimplePromptProvider{"fixed": "always the same"}

	got, err := p.GetPrompt("fixed", map[string]any{"ignored": true})
	require.NoError(t, err)
	assert.Equal(t, "always the same", got)

	_, err = p.GetPrompt("absent", nil)
	assert.Error(t, err)
}
