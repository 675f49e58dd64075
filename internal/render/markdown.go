// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// mdInline lists characters escaped anywhere in Markdown text.
const mdInline = "\\`*_[]<>|"

// orderedMarker matches text that CommonMark would read as a list item.
var orderedMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)

// WriteMarkdown serializes doc as CommonMark. Days are separated by a
// thematic break; bold labels are wrapped in ** with surrounding spaces
// moved outside the markers.
func WriteMarkdown(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for i, blk := range doc.Blocks {
		if i > 0 {
			bw.WriteString("\n")
		}
		switch {
		case blk.Kind == KindPageBreak:
			bw.WriteString("---\n")
		case blk.Style == StyleHeading1:
			bw.WriteString("# " + escapeInline(blk.Text()) + "\n")
		default:
			bw.WriteString(markdownParagraph(blk) + "\n")
		}
	}
	return bw.Flush()
}

func markdownParagraph(blk Block) string {
	var b strings.Builder
	for _, r := range blk.Runs {
		text := r.Text
		if b.Len() == 0 {
			text = strings.TrimLeft(text, "\n")
		}
		text = escapeInline(text)
		if !r.Bold {
			b.WriteString(text)
			continue
		}
		core := strings.TrimSpace(text)
		if core == "" {
			b.WriteString(text)
			continue
		}
		lead := text[:strings.Index(text, core)]
		trail := text[len(lead)+len(core):]
		b.WriteString(lead + "**" + core + "**" + trail)
	}
	// Remaining newlines are hard line breaks.
	return strings.ReplaceAll(escapeLineStarts(b.String()), "\n", "\\\n")
}

// escapeInline backslash-escapes inline markup characters.
func escapeInline(s string) string {
	var b strings.Builder
	for _, c := range s {
		if strings.ContainsRune(mdInline, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// escapeLineStarts escapes any line start that would otherwise open a
// heading, quote, list, or setext underline.
func escapeLineStarts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		switch {
		case strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, ">"),
			strings.HasPrefix(trimmed, "-"), strings.HasPrefix(trimmed, "+"),
			strings.HasPrefix(trimmed, "="):
			lines[i] = indent + "\\" + trimmed
		default:
			if m := orderedMarker.FindStringSubmatchIndex(trimmed); m != nil {
				lines[i] = indent + trimmed[:m[4]] + "\\" + trimmed[m[4]:]
			}
		}
	}
	return strings.Join(lines, "\n")
}
