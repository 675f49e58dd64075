// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/diary-rewriter/pkg/types"
)

// zipEpoch stamps every package entry so identical documents produce
// identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// stylesFormat takes the font name four times and the size in half-points.
const stylesFormat = xmlHeader +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s" w:eastAsia="%[1]s"/>` +
	`<w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/><w:lang w:val="tr-TR"/>` +
	`</w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/>` +
	`<w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
	`<w:pPr><w:keepNext/><w:spacing w:before="480" w:after="0"/><w:outlineLvl w:val="0"/></w:pPr>` +
	`<w:rPr><w:b/><w:bCs/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr></w:style>` +
	`</w:styles>`

const documentOpen = xmlHeader +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:body>`

// A4 portrait, one-inch margins.
const documentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
	`</w:sectPr></w:body></w:document>`

// WriteDOCX serializes doc as a WordprocessingML package. The Normal style
// uses the given font.
func WriteDOCX(w io.Writer, doc *Document, font types.FontConfig) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", fmt.Sprintf(stylesFormat, escape(font.Name), font.Size*2)},
		{"word/document.xml", documentXML(doc)},
	}
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := io.WriteString(fw, p.content); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing docx: %w", err)
	}
	return nil
}

func documentXML(doc *Document) string {
	var b strings.Builder
	b.WriteString(documentOpen)
	for _, blk := range doc.Blocks {
		if blk.Kind == KindPageBreak {
			b.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
			continue
		}
		b.WriteString("<w:p>")
		if blk.Style != StyleNormal {
			fmt.Fprintf(&b, `<w:pPr><w:pStyle w:val="%s"/><w:jc w:val="left"/></w:pPr>`, escape(string(blk.Style)))
		}
		for _, r := range blk.Runs {
			writeRun(&b, r)
		}
		b.WriteString("</w:p>")
	}
	b.WriteString(documentClose)
	return b.String()
}

// writeRun emits one w:r. Line breaks and tabs inside the text become
// w:br and w:tab siblings of the w:t segments.
func writeRun(b *strings.Builder, r Run) {
	b.WriteString("<w:r>")
	if r.Bold {
		b.WriteString("<w:rPr><w:b/><w:bCs/></w:rPr>")
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				b.WriteString("<w:tab/>")
			}
			if seg != "" {
				b.WriteString(`<w:t xml:space="preserve">`)
				b.WriteString(escape(seg))
				b.WriteString("</w:t>")
			}
		}
	}
	b.WriteString("</w:r>")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
