// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a diary rewrite end to end: convert the input to
// text, extract day entries, generate filler prose, and write the rebuilt
// document.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/pdiddy/diary-rewriter/internal/convert"
	"github.com/pdiddy/diary-rewriter/internal/extract"
	"github.com/pdiddy/diary-rewriter/internal/prose"
	"github.com/pdiddy/diary-rewriter/internal/render"
	"github.com/pdiddy/diary-rewriter/pkg/types"
)

// Summary describes a completed run.
type Summary struct {
	Days   int
	Output string
	Format types.OutputFormat
}

// Pipeline holds the stages for one rewrite.
type Pipeline struct {
	cfg  types.RewriteConfig
	conv convert.Converter
	gen  render.ContentSource
	log  *zap.Logger
}

// New validates cfg and assembles the default stages: the converter for the
// input's extension and a prose generator over the built-in or configured
// template pools.
func New(cfg types.RewriteConfig, log *zap.Logger) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := NewGenerator(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:  cfg,
		conv: convert.ForPath(cfg.InputPath),
		gen:  gen,
		log:  log,
	}, nil
}

// NewGenerator builds the prose generator selected by cfg.
func NewGenerator(cfg types.RewriteConfig, log *zap.Logger) (*prose.Generator, error) {
	var (
		pools *prose.Pools
		err   error
	)
	if cfg.TemplatesPath != "" {
		pools, err = prose.LoadPools(cfg.TemplatesPath)
	} else {
		pools, err = prose.DefaultPools()
	}
	if err != nil {
		return nil, err
	}
	return prose.NewGenerator(pools, cfg.Casing, log)
}

// Run executes the rewrite, writing progress lines to w. If the input holds
// no recognizable days it returns extract.ErrNoDays and writes nothing.
func (p *Pipeline) Run(w io.Writer) (Summary, error) {
	start := time.Now()

	fmt.Fprintf(w, "reading %s (%s)\n", p.cfg.InputPath, convert.Name(p.conv))
	text, err := p.conv.Convert(p.cfg.InputPath)
	if err != nil {
		return Summary{}, err
	}
	p.log.Debug("input converted",
		zap.String("input", p.cfg.InputPath),
		zap.Int("bytes", len(text)))

	entries, err := extract.Days(text)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "found %d days\n", len(entries))

	doc := render.BuildProgress(entries, p.gen, w)

	var buf bytes.Buffer
	switch p.cfg.Format {
	case types.OutputMarkdown:
		err = render.WriteMarkdown(&buf, doc)
	default:
		err = render.WriteDOCX(&buf, doc, p.cfg.Font)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("rendering %s: %w", p.cfg.Format, err)
	}

	if err := writeOutput(p.cfg.OutputPath, &buf); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "wrote %s (%d days)\n", p.cfg.OutputPath, len(entries))

	p.log.Info("rewrite complete",
		zap.String("input", p.cfg.InputPath),
		zap.String("output", p.cfg.OutputPath),
		zap.String("format", string(p.cfg.Format)),
		zap.Int("days", len(entries)),
		zap.Duration("elapsed", time.Since(start)))

	return Summary{Days: len(entries), Output: p.cfg.OutputPath, Format: p.cfg.Format}, nil
}

// writeOutput replaces path atomically, so a failed write never leaves a
// truncated document behind.
func writeOutput(path string, r io.Reader) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, r); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
