// Package extraction turns uploaded resume documents into plain text.
// It is a collaborator of the scoring core: whatever text comes out — even a
// sentinel error string — is valid normalizer input.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file types the extractor cannot read.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Format)
}

// FromFile extracts text from a resume document, dispatching on extension.
// Supported formats: .pdf, .docx, .txt. Discovered hyperlinks are appended
// as an annotated block.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := pdfText(path)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF: %w", err)
		}
		return AnnotateLinks(text), nil
	case ".docx":
		text, err := docxText(path)
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX: %w", err)
		}
		return AnnotateLinks(text), nil
	case ".txt":
		text, err := plainText(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return AnnotateLinks(text), nil
	default:
		return "", &ErrUnsupportedFormat{Format: filepath.Ext(path)}
	}
}

// FromBytes extracts text from in-memory document data, dispatching on the
// original filename's extension. Used by the upload handler.
func FromBytes(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfTextFromBytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF: %w", err)
		}
		return AnnotateLinks(text), nil
	case ".docx":
		text, err := docxTextFromBytes(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX: %w", err)
		}
		return AnnotateLinks(text), nil
	case ".txt", "":
		return AnnotateLinks(string(data)), nil
	default:
		return "", &ErrUnsupportedFormat{Format: filepath.Ext(filename)}
	}
}

// SafeText extracts text from a file, degrading failures to a sentinel
// "Error reading ..." string instead of an error. Garbage in, low score out:
// the normalizer tokenizes the sentinel like any other text.
func SafeText(path string) string {
	text, err := FromFile(path)
	if err != nil {
		return fmt.Sprintf("Error reading %s: %v", filepath.Base(path), err)
	}
	return text
}
