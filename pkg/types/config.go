package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputFormat selects the serialization of the rewritten diary.
type OutputFormat string

const (
	OutputDOCX     OutputFormat = "docx"
	OutputMarkdown OutputFormat = "markdown"
)

// FormatForPath infers the output format from a file extension. Anything
// other than .md or .markdown is written as DOCX.
func FormatForPath(path string) OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return OutputMarkdown
	default:
		return OutputDOCX
	}
}

// CasingMode selects how topics are lowercased before they are interpolated
// into intro and evaluation templates.
type CasingMode string

const (
	// CasingUnicode applies the full Unicode lowercase mapping, so İ becomes
	// "i" followed by U+0307. This is the default.
	CasingUnicode CasingMode = "unicode"

	// CasingTurkish applies Turkish case rules (I -> ı, İ -> i).
	CasingTurkish CasingMode = "turkish"
)

const (
	defaultFontName = "Calibri"
	defaultFontSize = 11
)

// FontConfig holds the Normal style font written into DOCX output.
type FontConfig struct {
	// Name is the font family (default Calibri).
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Size is the font size in points (default 11).
	Size int `json:"size" yaml:"size" mapstructure:"size"`
}

// RewriteConfig holds settings for one rewrite run.
type RewriteConfig struct {
	// InputPath is the source diary (.docx, .md, or plain text).
	InputPath string `json:"input" yaml:"input" mapstructure:"input"`

	// OutputPath is where the rewritten diary is written.
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects docx or markdown output. Empty means infer from OutputPath.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Casing selects the topic lowercasing rules (default unicode).
	Casing CasingMode `json:"casing" yaml:"casing" mapstructure:"casing"`

	// TemplatesPath optionally replaces the built-in template pools.
	TemplatesPath string `json:"templates,omitempty" yaml:"templates,omitempty" mapstructure:"templates"`

	Font FontConfig `json:"font" yaml:"font" mapstructure:"font"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c RewriteConfig) WithDefaults() RewriteConfig {
	if c.Format == "" {
		c.Format = FormatForPath(c.OutputPath)
	}
	if c.Casing == "" {
		c.Casing = CasingUnicode
	}
	if c.Font.Name == "" {
		c.Font.Name = defaultFontName
	}
	if c.Font.Size <= 0 {
		c.Font.Size = defaultFontSize
	}
	return c
}

// Validate reports the first invalid setting, if any.
func (c RewriteConfig) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if filepath.Clean(c.InputPath) == filepath.Clean(c.OutputPath) {
		return fmt.Errorf("output path %s would overwrite the input", c.OutputPath)
	}
	switch c.Format {
	case "", OutputDOCX, OutputMarkdown:
	default:
		return fmt.Errorf("unsupported format %q: use docx or markdown", c.Format)
	}
	switch c.Casing {
	case "", CasingTurkish, CasingUnicode:
	default:
		return fmt.Errorf("unsupported casing %q: use unicode or turkish", c.Casing)
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("font size must be positive, got %d", c.Font.Size)
	}
	return nil
}
