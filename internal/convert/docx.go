// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// wordNS is the WordprocessingML main namespace.
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	// documentPart is the main document part inside the package.
	documentPart = "word/document.xml"
)

// DOCXConverter reads Office Open XML word processing documents.
type DOCXConverter struct{}

// Convert returns the text of each body-level paragraph, one per line.
// Paragraphs nested in tables, text boxes, headers, and footers are not part
// of the body paragraph list and are skipped.
func (DOCXConverter) Convert(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("reading docx %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		paras, err := bodyParagraphs(rc)
		if err != nil {
			return "", fmt.Errorf("parsing %s in %s: %w", documentPart, path, err)
		}
		return strings.Join(paras, "\n"), nil
	}
	return "", fmt.Errorf("reading docx %s: %s not found", path, documentPart)
}

// bodyParagraphs streams document.xml and returns the text of every w:p that
// is a direct child of w:body. Run text comes from w:t; w:tab is "\t"; w:br
// and w:cr are "\n" except page and column breaks, which produce nothing.
// Runs wrapped in w:hyperlink count as paragraph runs.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		stack []string
		paras []string
		cur   strings.Builder
		pIdx  = -1 // stack index of the open body-level paragraph
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			name := localName(el.Name)
			if name == "p" && pIdx < 0 && len(stack) > 0 && stack[len(stack)-1] == "body" {
				pIdx = len(stack)
				cur.Reset()
			}
			stack = append(stack, name)
			if pIdx < 0 || !isRunChild(stack[pIdx+1:]) {
				continue
			}
			switch name {
			case "tab", "ptab":
				cur.WriteByte('\t')
			case "noBreakHyphen":
				cur.WriteByte('-')
			case "cr":
				cur.WriteByte('\n')
			case "br":
				if breakType(el) == "" || breakType(el) == "textWrapping" {
					cur.WriteByte('\n')
				}
			}

		case xml.CharData:
			if pIdx >= 0 && len(stack) > 0 && stack[len(stack)-1] == "t" && isRunChild(stack[pIdx+1:]) {
				cur.Write(el)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			if len(stack)-1 == pIdx {
				paras = append(paras, cur.String())
				pIdx = -1
			}
			stack = stack[:len(stack)-1]
		}
	}
	return paras, nil
}

// localName returns the element's local name for WordprocessingML elements
// and a marker for anything else, so foreign elements never match.
func localName(n xml.Name) string {
	if n.Space == wordNS {
		return n.Local
	}
	return "~" + n.Local
}

// isRunChild reports whether rel, the element path below a paragraph, names
// a direct child of one of the paragraph's runs.
func isRunChild(rel []string) bool {
	switch len(rel) {
	case 2:
		return rel[0] == "r"
	case 3:
		return rel[0] == "hyperlink" && rel[1] == "r"
	default:
		return false
	}
}

func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}
