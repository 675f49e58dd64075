// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownConverter reads CommonMark documents.
type MarkdownConverter struct{}

// Convert parses the file and returns one line per text block. A line like
// "5. Gün" is an ordered list item in CommonMark, so list numbers are written
// back in front of the item text.
func (MarkdownConverter) Convert(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	return markdownText(src)
}

func markdownText(src []byte) (string, error) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var (
		lines  []string
		prefix string
	)
	emit := func(s string) {
		lines = append(lines, prefix+s)
		prefix = ""
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Kind() == ast.KindListItem {
				prefix = ""
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.ListItem:
			if list, ok := node.Parent().(*ast.List); ok && list.IsOrdered() {
				prefix = fmt.Sprintf("%d%c ", list.Start+itemIndex(node), list.Marker)
			}
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			emit(inlineText(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segs := node.Lines()
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				emit(strings.TrimRight(string(seg.Value(src)), "\n"))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking markdown: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

// inlineText flattens the inline children of a block. Soft and hard line
// breaks become "\n"; emphasis and links contribute only their text.
func inlineText(block ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			value := node.Segment.Value(src)
			if _, inCode := node.Parent().(*ast.CodeSpan); !inCode {
				value = unescape(value)
			}
			b.Write(value)
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func itemIndex(item ast.Node) int {
	i := 0
	for s := item.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		i++
	}
	return i
}

// unescape drops the backslash from CommonMark backslash escapes.
func unescape(b []byte) []byte {
	if bytes.IndexByte(b, '\\') < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) && isASCIIPunct(b[i+1]) {
			i++
		}
		out = append(out, b[i])
	}
	return out
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
