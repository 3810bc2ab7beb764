package template

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatList joins items into an English list using conjunction before the
// last item: "a", "a and b", "a, b, and c".
func FormatList(items []string, conjunction string) string {
	if conjunction == "" {
		conjunction = "and"
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conjunction + " " + items[len(items)-1]
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ToSentenceCase splits a camelCase identifier into capitalized words:
// "dataVisualization" becomes "Data Visualization".
func ToSentenceCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(Capitalize(b.String()))
}
