package prompting

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tyler-sommer/stick"
)

// PromptProvider returns the rendered prompt text for a given name.
type PromptProvider interface {
	GetPrompt(name string, vars map[string]any) (string, error)
}

// StickPromptProvider renders Twig-style templates; it is fs-agnostic.
type StickPromptProvider struct {
	env       *stick.Env
	templates map[string]string
	vars      map[string]any // variables shared by all templates
}

// PromptOption keeps the constructor flexible.
type PromptOption func(*StickPromptProvider) error

// WithFS loads every *.twig file found under dir in the supplied FS. The
// template name is the file base name without the extension.
func WithFS(fsys fs.FS, dir string) PromptOption {
	return func(p *StickPromptProvider) error {
		return fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".twig") {
				return nil
			}
			content, readErr := fs.ReadFile(fsys, path)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", path, readErr)
			}
			name := strings.TrimSuffix(filepath.Base(path), ".twig")
			p.templates[name] = string(content)
			return nil
		})
	}
}

// WithTemplates lets you inject an in-memory map.
func WithTemplates(m map[string]string) PromptOption {
	return func(p *StickPromptProvider) error {
		for k, v := range m {
			p.templates[k] = v
		}
		return nil
	}
}

// WithVar adds a variable that will be available in all templates.
func WithVar(key string, value any) PromptOption {
	return func(p *StickPromptProvider) error {
		p.vars[key] = value
		return nil
	}
}

// NewStickPromptProvider builds a provider from any combination of options.
func NewStickPromptProvider(opts ...PromptOption) (*StickPromptProvider, error) {
	p := &StickPromptProvider{
		env:       stick.New(nil),
		templates: make(map[string]string),
		vars:      make(map[string]any),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddTemplate updates or inserts one template.
func (p *StickPromptProvider) AddTemplate(name, tpl string) { p.templates[name] = tpl }

// GetPrompt renders the named template with the call-site variables laid
// over the shared ones.
func (p *StickPromptProvider) GetPrompt(name string, vars map[string]any) (string, error) {
	tpl, ok := p.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}

	templateCtx := make(map[string]stick.Value, len(p.vars)+len(vars))
	for k, v := range p.vars {
		templateCtx[k] = v
	}
	for k, v := range vars {
		templateCtx[k] = v
	}

	var out strings.Builder
	if err := p.env.Execute(tpl, &out, templateCtx); err != nil {
		return "", fmt.Errorf("execute %q: %w", name, err)
	}
	return out.String(), nil
}

// SimplePromptProvider serves literal prompt strings with no templating.
type SimplePromptProvider map[string]string

func (s SimplePromptProvider) GetPrompt(name string, _ map[string]any) (string, error) {
	if tpl, ok := s[name]; ok {
		return tpl, nil
	}
	return "", fmt.Errorf("prompt %q not found", name)
}
