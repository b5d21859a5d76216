package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// DocumentEnv names the environment variable pointing at the document to
// process. PDFs, Word files and plain text all work; the Files API reads
// the content directly, so no local text extraction happens.
const DocumentEnv = "PROMPTENG_DOCUMENT"

// processedPaperFile is where the extracted record is written.
const processedPaperFile = "processed_paper.json"

// ProcessedPaper is the structured output extracted from an academic paper.
type ProcessedPaper struct {
	Title       string   `json:"title" description:"Paper title"`
	Authors     []string `json:"authors" description:"Author names in order"`
	Abstract    string   `json:"abstract" description:"Abstract or a faithful summary of it"`
	KeyFindings []string `json:"key_findings" description:"Main findings or contributions"`
	Methodology string   `json:"methodology" description:"Methods used, in one or two sentences"`
	Topics      []string `json:"topics" description:"Research topics and keywords"`
}

// runETL uploads a document, extracts a ProcessedPaper from it and writes
// the result to processed_paper.json.
func runETL(ctx context.Context, c *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== ETL Document Processing ===")

	path := os.Getenv(DocumentEnv)
	if path == "" {
		return fmt.Errorf("set %s to the document you want to process", DocumentEnv)
	}

	doc, err := c.UploadDocument(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Uploaded %s (%s, %d bytes)\n", doc.DisplayName, doc.MIMEType, doc.Size)

	prompt, err := prompts.GetPrompt("etl", nil)
	if err != nil {
		return err
	}

	paper, err := prompting.GenerateRecord[ProcessedPaper](ctx, c, prompt,
		prompting.WithTemperature(0.5),
		prompting.WithMaxTokens(2000),
		prompting.WithDocument(doc),
	)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(paper, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal paper: %w", err)
	}
	if err := os.WriteFile(processedPaperFile, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", processedPaperFile, err)
	}

	fmt.Fprintf(out, "Title: %s\n", paper.Title)
	fmt.Fprintf(out, "Authors: %s\n", strings.Join(paper.Authors, ", "))
	fmt.Fprintln(out, "Key Findings:")
	for _, f := range paper.KeyFindings {
		fmt.Fprintf(out, "  - %s\n", f)
	}
	fmt.Fprintf(out, "Wrote %s\n", processedPaperFile)
	return nil
}
