// Package tasks holds the worked prompt engineering examples. Each task is
// self-contained: it renders its prompt template, calls the model, coerces
// the reply into a validated record and writes a short report. The registry
// is just a list so the command line runner can run one task or all of them.
package tasks

import (
	"context"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

//go:embed prompts/*.twig
var promptFS embed.FS

// prompts serves the embedded templates to every task.
var prompts = mustPromptProvider()

func mustPromptProvider() *prompting.StickPromptProvider {
	p, err := prompting.NewStickPromptProvider(prompting.WithFS(promptFS, "prompts"))
	if err != nil {
		panic(fmt.Sprintf("load prompt templates: %v", err))
	}
	return p
}

// Task is one runnable example.
type Task struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, c *prompting.Client, out io.Writer) error
}

// All returns every task in teaching order.
func All() []Task {
	return []Task{
		{"validation", "JSON parsing and record validation with intentional failures", runValidation},
		{"dials", "Sampling parameters: temperature, topP, max tokens and stop sequences", runDials},
		{"extraction", "Structured extraction of a movie review", runExtraction},
		{"classification", "Few-shot email classification", runClassification},
		{"chain-of-thought", "Step-by-step reasoning on a business math problem", runChainOfThought},
		{"synthetic-data", "Synthetic product catalog generation", runSyntheticData},
		{"etl", "Document ETL through the Files API", runETL},
		{"flags", "Flag-style prompting for a technical explanation", runFlags},
		{"comparison", "Comparative analysis across multiple criteria", runComparison},
	}
}

// Lookup resolves task names, preserving the requested order.
func Lookup(names ...string) ([]Task, error) {
	byName := make(map[string]Task)
	for _, t := range All() {
		byName[t.Name] = t
	}

	tasks := make([]Task, 0, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			known := make([]string, 0, len(byName))
			for k := range byName {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown task %q (known: %s)", name, strings.Join(known, ", "))
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// RunAll executes tasks sequentially with a pause between them and returns
// how many succeeded. A failing task is reported and the rest still run.
func RunAll(ctx context.Context, c *prompting.Client, tasks []Task, pause time.Duration, out io.Writer) int {
	succeeded := 0
	for i, t := range tasks {
		fmt.Fprintf(out, "\nRunning: %s\n", t.Name)
		fmt.Fprintln(out, strings.Repeat("-", 40))

		if err := t.Run(ctx, c, out); err != nil {
			fmt.Fprintf(out, "✗ %s failed: %v\n", t.Name, err)
		} else {
			succeeded++
		}

		if pause > 0 && i < len(tasks)-1 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
				return succeeded
			}
		}
	}
	return succeeded
}

// RunConcurrent executes tasks with bounded parallelism. Each task writes
// into its own buffer so reports do not interleave.
func RunConcurrent(ctx context.Context, c *prompting.Client, tasks []Task, parallel int, out io.Writer) int {
	runner := prompting.NewLimitedRunner(ctx, parallel)

	var mu sync.Mutex
	succeeded := 0
	for _, t := range tasks {
		runner.Go(func() error {
			var buf strings.Builder
			fmt.Fprintf(&buf, "\nRunning: %s\n", t.Name)
			fmt.Fprintln(&buf, strings.Repeat("-", 40))

			err := t.Run(ctx, c, &buf)
			if err != nil {
				fmt.Fprintf(&buf, "✗ %s failed: %v\n", t.Name, err)
			}

			mu.Lock()
			io.WriteString(out, buf.String())
			if err == nil {
				succeeded++
			}
			mu.Unlock()
			return nil // one failed task must not cancel the others
		})
	}
	_ = runner.Wait()

	mu.Lock()
	defer mu.Unlock()
	return succeeded
}
