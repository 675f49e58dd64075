// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns diary documents into plain text with one paragraph
// per line, ready for day extraction. Backends are selected by file
// extension: .docx, .md/.markdown, and plain text for everything else.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Converter reads a document and returns its paragraphs joined by "\n".
type Converter interface {
	Convert(path string) (string, error)
}

// ForPath returns the backend for the file's extension.
func ForPath(path string) Converter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return DOCXConverter{}
	case ".md", ".markdown":
		return MarkdownConverter{}
	default:
		return TextConverter{}
	}
}

// Name reports a short backend name for progress output.
func Name(c Converter) string {
	switch c.(type) {
	case DOCXConverter, *DOCXConverter:
		return "docx"
	case MarkdownConverter, *MarkdownConverter:
		return "markdown"
	case TextConverter, *TextConverter:
		return "text"
	default:
		return fmt.Sprintf("%T", c)
	}
}

// TextConverter reads plain text files.
type TextConverter struct{}

// Convert returns the file content with CRLF line endings normalized.
func (TextConverter) Convert(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
