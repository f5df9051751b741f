package resolve

import (
	"regexp"
	"strings"
)

var (
	phoneticsRe  = regexp.MustCompile(`\[[^\]]*\]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean strips dictionary markup from raw article text: bracketed phonetic
// transcriptions are removed, underscores (italic markers) and zero-width
// spaces are dropped, and whitespace runs collapse to a single space with
// the ends trimmed. Newlines inside multi-line bodies collapse too, so a
// whole article cleans to one line.
func Clean(text string) string {
	text = phoneticsRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "_", "")
	text = strings.ReplaceAll(text, "\u200b", "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
