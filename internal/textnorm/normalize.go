// Package textnorm normalizes free text and locates resume sections for the extractors.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	horizontalSpace = regexp.MustCompile(`[^\S\n]+`)
	newlineRun      = regexp.MustCompile(` ?\n[ \n]*`)
	blankLineRun    = regexp.MustCompile(`\n{3,}`)
)

// fold decomposes compatibility characters (ligatures, non-breaking spaces) and
// drops combining marks so accented letters compare as their ASCII base.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lowercases text, collapses runs of spaces/tabs to a single space and
// runs of newlines to a single newline. It is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(fold(text))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// Clean prepares raw text for section detection. Unlike Normalize it keeps case
// and single blank lines, which carry the document structure.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return tidy(fold(text))
}

// Tidy is Clean without accent folding: compatibility characters are composed
// (NFKC) but the letters stay as written. Use it for text that is shown back to
// the user.
func Tidy(text string) string {
	if text == "" {
		return ""
	}
	return tidy(norm.NFKC.String(text))
}

func tidy(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankLineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
