package keywords

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
	urlRe       = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://\S+`)
	nonLetterRe = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Normalize strips fenced code blocks (including their contents), URL-shaped
// substrings, and every character that is not an ASCII letter or whitespace,
// then lowercases the result. It never fails; the worst case for garbage
// input is an empty string.
func Normalize(text string) string {
	text = codeFenceRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = nonLetterRe.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}
