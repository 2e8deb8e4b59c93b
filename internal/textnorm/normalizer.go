// Package textnorm repairs whitespace, page-marker noise, and PDF converter
// artifacts in raw document text before field extraction.
package textnorm

import (
	"regexp"
	"strings"
)

// DefaultDoubledPairThreshold is the fraction of aligned letter pairs that
// must be duplicates before the doubled-letter repair pass activates.
const DefaultDoubledPairThreshold = 0.20

var (
	// Footer artifacts like "4 | P a g e 12" where the converter spaced out
	// every glyph. The pipe is required so prose mentioning "Page 12" survives.
	spacedPageFooter = regexp.MustCompile(`\|\s*P\s*a\s*g\s*e\s*\d+`)

	// Whole lines that are only a page header/footer token.
	pageTokenLine = regexp.MustCompile(`(?i)^\s*Page\s+\d+\s*$`)

	// Standalone page numbers. Bounded at 3 digits so numeric data lines survive.
	bareNumberLine = regexp.MustCompile(`^\d{1,3}\s*$`)

	// A stray single letter split off the following short fragment ("t o",
	// "i n", "o f"). Common in OCR output.
	splitShortWord = regexp.MustCompile(`\b([A-Za-z])\s+([a-z]{1,2})\b`)

	multiBlank = regexp.MustCompile(`\n{3,}`)
)

// Normalizer cleans raw document text. The zero value is not usable; call New.
type Normalizer struct {
	doubledThreshold float64
}

// New returns a Normalizer with the default corruption threshold.
func New() *Normalizer {
	return &Normalizer{doubledThreshold: DefaultDoubledPairThreshold}
}

// Normalize repairs raw text in a fixed order: line endings, page noise,
// OCR spacing, blank-line collapse, trim, then the conditional doubled-letter
// repair.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "")

	text = spacedPageFooter.ReplaceAllString(text, "")
	text = stripPageLines(text)

	text = splitShortWord.ReplaceAllString(text, "$1$2")

	text = multiBlank.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if n.isDoubled(text) {
		text = collapseRuns(text)
	}
	return text
}

// stripPageLines drops page-token lines and blanks standalone page numbers.
// Blanking (rather than dropping) a number line keeps the paragraph break
// the page boundary introduced.
func stripPageLines(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		switch {
		case pageTokenLine.MatchString(line):
			continue
		case bareNumberLine.MatchString(line):
			out = append(out, "")
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
