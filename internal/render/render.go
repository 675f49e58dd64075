// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles the rewritten diary as a small block model and
// serializes it to DOCX or Markdown.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/diary-rewriter/pkg/types"
)

// Section labels written for every day.
const (
	TopicLabel      = "Yapılan Çalışmanın Konusu : "
	WorkLabel       = "Yapılan Çalışmalar:"
	ProblemLabel    = "Karşılaşılan Problemler / Çözümler:"
	EvaluationLabel = "Günlük Değerlendirme:"
)

// signatureFormat closes every day; the page number is the day number.
const signatureFormat = "\nTarih : ____/____/20____      Kaşe / İmza      Sayfa No : %d"

// Style names a paragraph style.
type Style string

const (
	StyleNormal   Style = ""
	StyleHeading1 Style = "Heading1"
)

// BlockKind distinguishes paragraphs from page breaks.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindPageBreak
)

// Run is a span of text with uniform formatting. Text may contain "\n"
// (line break) and "\t".
type Run struct {
	Text string
	Bold bool
}

// Block is one paragraph or a page break.
type Block struct {
	Kind  BlockKind
	Style Style
	Runs  []Run
}

// Text returns the concatenated run text.
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is an ordered list of blocks.
type Document struct {
	Blocks []Block
}

// ContentSource produces the filler text for a day.
type ContentSource interface {
	Day(e types.DayEntry) types.DayContent
}

// Build renders every entry in order, with a page break between consecutive
// days and none after the last.
func Build(entries []types.DayEntry, src ContentSource) *Document {
	return BuildProgress(entries, src, io.Discard)
}

// BuildProgress is Build with a "processed day N" line written to w after
// each section.
func BuildProgress(entries []types.DayEntry, src ContentSource, w io.Writer) *Document {
	doc := &Document{}
	for i, e := range entries {
		doc.AddDay(e, src.Day(e), i == len(entries)-1)
		fmt.Fprintf(w, "processed day %d\n", e.Number)
	}
	return doc
}

// AddDay appends one day's section. A page break follows unless last is set.
func (d *Document) AddDay(e types.DayEntry, c types.DayContent, last bool) {
	d.paragraph(StyleHeading1, Run{Text: fmt.Sprintf("%d. Gün", e.Number)})
	d.paragraph(StyleNormal, Run{Text: TopicLabel, Bold: true}, Run{Text: e.Topic})

	d.paragraph(StyleNormal, Run{Text: WorkLabel, Bold: true})
	for _, p := range c.Work {
		d.paragraph(StyleNormal, Run{Text: p})
	}

	d.paragraph(StyleNormal, Run{Text: ProblemLabel, Bold: true})
	d.paragraph(StyleNormal, Run{Text: c.Problem})

	d.paragraph(StyleNormal, Run{Text: EvaluationLabel, Bold: true})
	d.paragraph(StyleNormal, Run{Text: c.Evaluation})

	d.paragraph(StyleNormal, Run{Text: fmt.Sprintf(signatureFormat, e.Number)})

	if !last {
		d.Blocks = append(d.Blocks, Block{Kind: KindPageBreak})
	}
}

func (d *Document) paragraph(style Style, runs ...Run) {
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Style: style, Runs: runs})
}

// Headings returns the text of every Heading1 paragraph.
func (d *Document) Headings() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Kind == KindParagraph && b.Style == StyleHeading1 {
			out = append(out, b.Text())
		}
	}
	return out
}

// PageBreaks counts page break blocks.
func (d *Document) PageBreaks() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == KindPageBreak {
			n++
		}
	}
	return n
}
