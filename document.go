package prompting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

// Document is a local file uploaded to the Files API so the model can read
// its content directly, without any local text extraction. Uploads expire
// on the API side after their retention window, so no cleanup is required.
type Document struct {
	Path        string
	DisplayName string
	URI         string
	MIMEType    string
	Size        int64
}

// UploadDocument pushes a local file (PDF, Word, markdown, plain text) to
// the Files API and returns a reference usable with WithDocument.
func (c *Client) UploadDocument(ctx context.Context, path string) (*Document, error) {
	if c.genai == nil {
		return nil, fmt.Errorf("document upload requires an API-backed client")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}

	mimeType, err := mimeTypeFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("detect mime type of %s: %w", path, err)
	}
	displayName := fmt.Sprintf("Document Upload - %s", filepath.Base(path))

	c.log.Debug("uploading document", "path", path, "mime_type", mimeType, "size", info.Size())
	file, err := c.genai.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file %s: %w", path, err)
	}

	if file.State != "ACTIVE" {
		c.log.Warn("uploaded file is not in ACTIVE state yet", "state", file.State, "uri", file.URI)
	}
	c.log.Debug("document uploaded", "uri", file.URI, "name", file.Name, "state", file.State)

	return &Document{
		Path:        path,
		DisplayName: displayName,
		URI:         file.URI,
		MIMEType:    mimeType,
		Size:        info.Size(),
	}, nil
}

// mimeTypeFromPath sniffs the file content; the extension alone is not
// trustworthy for user-supplied documents.
func mimeTypeFromPath(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}
