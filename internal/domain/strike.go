package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// StrikeMark is the combining long stroke overlay appended to every rune of
// a completed task's display text.
const StrikeMark = '\u0336'

// StrikeThrough appends StrikeMark after every rune of s.
func StrikeThrough(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(StrikeMark)
	}
	return b.String()
}

// ClearStrike removes every nonspacing combining mark from s.
func ClearStrike(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), s)
	if err != nil {
		return s
	}
	return out
}

// DisplayText renders the text shown for a task: struck through when the
// task is completed, plain otherwise. The stored text is never modified.
func DisplayText(t Task) string {
	if t.Completed {
		return StrikeThrough(t.Text)
	}
	return t.Text
}
