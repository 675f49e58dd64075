// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers day entries from the text of a diary document.
package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/diary-rewriter/pkg/types"
)

// ErrNoDays is returned when the text contains no recognizable day block.
var ErrNoDays = errors.New("no days found")

// dayPattern matches a day marker followed by its topic line:
//
//	5. Gün
//	Yapılan Çalışmanın Konusu : Veritabanı tasarımı
//
// The topic runs to the end of the line. Whitespace is any Unicode space,
// so the no-break spaces Word inserts around the colon still match.
var dayPattern = regexp.MustCompile(
	`(\d+)\. Gün` + space + `*\n*Yapılan Çalışmanın Konusu` + space + `*:` + space + `*([^\n]+)`)

// space is the class of runes for which unicode.IsSpace reports true, plus
// the information separators U+001C..U+001F.
const space = `[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]`

// Days returns the entries found in text, in document order. Blocks that do
// not match the pattern are skipped without notice, as are day numbers too
// large for an int. Duplicate day numbers are kept.
func Days(text string) ([]types.DayEntry, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var entries []types.DayEntry
	for _, m := range dayPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, types.DayEntry{Number: n, Topic: m[2]})
	}
	if len(entries) == 0 {
		return nil, ErrNoDays
	}
	return entries, nil
}
