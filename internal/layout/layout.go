// Package layout defines the boundary to the document layout collaborator
// that turns stored resume documents into ordered text lines. The real
// engine (an OCR service such as Textract) lives outside this process;
// this package owns the line model and a plain-text implementation for
// documents that are already text.
package layout

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// LineKind classifies a document line.
type LineKind string

// Line classifications. Only text lines contribute to extraction;
// everything else (tables, form fields, page artifacts) is skipped.
const (
	LineText    LineKind = "TEXT"
	LineNonText LineKind = "NON_TEXT"
)

// DocumentLine is one ordered line of a laid-out document.
type DocumentLine struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// Provider supplies the ordered line sequence for a stored document
// reference. Implementations may call out to an OCR service; calls are
// cancellable through ctx.
type Provider interface {
	Lines(ctx context.Context, ref string) ([]DocumentLine, error)
}

// SplitPlainText converts already-plain resume text into document lines,
// one text line per newline-separated segment.
func SplitPlainText(text string) []DocumentLine {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]DocumentLine, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, DocumentLine{Text: part, Kind: LineText})
	}
	return lines
}

// FileProvider reads plain-text documents from the local filesystem.
// The document reference is a file path. Used by the CLI; the server
// receives resume text directly in the request body.
type FileProvider struct{}

// Lines reads the file at ref and splits it into text lines.
func (FileProvider) Lines(_ context.Context, ref string) ([]DocumentLine, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", ref, err)
	}
	return SplitPlainText(string(data)), nil
}
