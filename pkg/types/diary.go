// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DayEntry is one day recovered from the source diary.
type DayEntry struct {
	// Number is the day number as written in the source ("5. Gün" -> 5).
	Number int `json:"day" yaml:"day"`

	// Topic is the rest of the "Yapılan Çalışmanın Konusu" line, case preserved.
	Topic string `json:"topic" yaml:"topic"`
}

// DayContent is the generated filler text for one day.
type DayContent struct {
	// Work holds the intro, middle, and closing paragraphs in that order.
	Work [3]string `json:"work" yaml:"work"`

	Problem    string `json:"problem" yaml:"problem"`
	Evaluation string `json:"evaluation" yaml:"evaluation"`
}
