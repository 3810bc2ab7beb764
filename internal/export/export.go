// Package export serializes a generated prompt to text, Markdown or JSON
// and encodes configurations into shareable links.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// ErrUnknownFormat indicates an export format other than text, markdown or json.
var ErrUnknownFormat = errors.New("export: unknown format, must be one of: text, markdown, json")

// Format is an export file format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// MarkdownHeading prefixes every Markdown export.
const MarkdownHeading = "# UI Design Prompt\n\n"

// exportedAtLayout matches JavaScript's Date.toISOString.
const exportedAtLayout = "2006-01-02T15:04:05.000Z"

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON}
}

// ParseFormat resolves a format name or its file extension alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DefaultFilename returns the file name used when none is given.
func (f Format) DefaultFilename() string {
	switch f {
	case FormatMarkdown:
		return "prompt.md"
	case FormatJSON:
		return "config.json"
	default:
		return "prompt.txt"
	}
}

// Document is the JSON export shape.
type Document struct {
	UIType     models.UIType        `json:"uiType"`
	Config     models.Configuration `json:"config"`
	Prompt     string               `json:"prompt"`
	ExportedAt string               `json:"exportedAt"`
}

// Text returns the prompt unchanged.
func Text(prompt string) []byte {
	return []byte(prompt)
}

// Markdown returns the prompt under a top-level heading.
func Markdown(prompt string) []byte {
	return []byte(MarkdownHeading + prompt)
}

// JSON returns the indented Document for the given state, stamped with now.
func JSON(uiType models.UIType, cfg models.Configuration, prompt string, now time.Time) ([]byte, error) {
	if cfg == nil {
		cfg = models.Configuration{}
	}
	doc := Document{
		UIType:     uiType,
		Config:     cfg,
		Prompt:     prompt,
		ExportedAt: now.UTC().Format(exportedAtLayout),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Render produces the bytes of the given format.
func Render(f Format, uiType models.UIType, cfg models.Configuration, prompt string, now time.Time) ([]byte, error) {
	switch f {
	case FormatText:
		return Text(prompt), nil
	case FormatMarkdown:
		return Markdown(prompt), nil
	case FormatJSON:
		return JSON(uiType, cfg, prompt, now)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile writes data to path atomically, creating parent directories.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".uiprompt-export-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
