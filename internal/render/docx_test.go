// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/diary-rewriter/internal/convert"
	"github.com/pdiddy/diary-rewriter/internal/extract"
	"github.com/pdiddy/diary-rewriter/pkg/types"
)

var testFont = types.FontConfig{Name: "Calibri", Size: 11}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWriteDOCXParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOCX(&buf, Build(sampleEntries(), fakeContent{}), testFont))

	doc := readPart(t, buf.Bytes(), "word/document.xml")
	assert.Equal(t, 3, strings.Count(doc, `<w:pStyle w:val="Heading1"/>`))
	assert.Equal(t, 2, strings.Count(doc, `<w:br w:type="page"/>`))
	assert.Contains(t, doc, `<w:rPr><w:b/><w:bCs/></w:rPr><w:t xml:space="preserve">Yapılan Çalışmanın Konusu : </w:t>`)
	assert.Contains(t, doc, `<w:r><w:br/><w:t xml:space="preserve">Tarih : ____/____/20____      Kaşe / İmza      Sayfa No : 3</w:t></w:r>`)

	styles := readPart(t, buf.Bytes(), "word/styles.xml")
	assert.Contains(t, styles, `w:ascii="Calibri"`)
	assert.Contains(t, styles, `<w:sz w:val="22"/>`)

	assert.Contains(t, readPart(t, buf.Bytes(), "[Content_Types].xml"), "/word/document.xml")
	assert.Contains(t, readPart(t, buf.Bytes(), "_rels/.rels"), "word/document.xml")
}

func TestWriteDOCXEscapesText(t *testing.T) {
	doc := Build([]types.DayEntry{{Number: 1, Topic: `<script> & "quotes"`}}, fakeContent{})
	var buf bytes.Buffer
	require.NoError(t, WriteDOCX(&buf, doc, types.FontConfig{Name: `A&B`, Size: 12}))

	assert.Contains(t, readPart(t, buf.Bytes(), "word/document.xml"), "&lt;script&gt; &amp; &#34;quotes&#34;")
	styles := readPart(t, buf.Bytes(), "word/styles.xml")
	assert.Contains(t, styles, `w:ascii="A&amp;B"`)
	assert.Contains(t, styles, `<w:sz w:val="24"/>`)
}

func TestWriteDOCXIsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteDOCX(&a, Build(sampleEntries(), fakeContent{}), testFont))
	require.NoError(t, WriteDOCX(&b, Build(sampleEntries(), fakeContent{}), testFont))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteDOCXRoundTrip(t *testing.T) {
	entries := append(sampleEntries(), types.DayEntry{Number: 4, Topic: "SQL & NoSQL <karşılaştırma>"})

	path := filepath.Join(t.TempDir(), "out.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteDOCX(f, Build(entries, fakeContent{}), testFont))
	require.NoError(t, f.Close())

	text, err := convert.DOCXConverter{}.Convert(path)
	require.NoError(t, err)
	assert.Contains(t, text, "intro 2\nmiddle 2\nclosing 2")

	got, err := extract.Days(text)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
