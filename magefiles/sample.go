//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sampleInput = "testdata/sample-diary.md"

// sampleTopics cycles through typical internship topics.
var sampleTopics = []string{
	"Oryantasyon ve şirket tanıtımı",
	"Geliştirme ortamının kurulumu",
	"Git ve GitHub kullanımı",
	"Veritabanı tasarımı",
	"REST API geliştirme",
	"Birim testleri",
	"Docker ile konteynerleştirme",
	"İstemci tarafı arayüz geliştirme",
	"Kod incelemesi",
	"Proje sunumu",
}

const sampleDays = 20

// writeSampleDiary writes a Markdown diary in the layout rewrite expects.
func writeSampleDiary(path string) error {
	var b strings.Builder
	b.WriteString("# Staj Defteri\n\n")
	for day := 1; day <= sampleDays; day++ {
		fmt.Fprintf(&b, "%d. Gün\nYapılan Çalışmanın Konusu : %s\n\n", day, sampleTopics[(day-1)%len(sampleTopics)])
		b.WriteString("Bu gün için eski defter metni.\n\n")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Println("Wrote", path)
	return nil
}
