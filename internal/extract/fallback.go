package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// The fallback works the document's A.2.n subsection layout directly; the
// head and boundary shapes are structural, only the admission keywords and
// the paragraph hint are tunable.
var (
	subsectionHead     = regexp.MustCompile(`(?i)A\.?\s*2\.?\s*\d+[^\n]*\n`)
	subsectionBoundary = regexp.MustCompile(`(?i)\nA\.?\s*2\.?\s*\d+|\nA\.?\s*3|\nB\.`)
)

const fallbackMinLen = 100

// fallbackScan is the last resort after every challenges group came up
// empty: collect keyword-bearing A.2.n subsections, or failing that, any
// paragraph that names key challenges outright.
type fallbackScan struct {
	keywords  []string
	paragraph *regexp.Regexp
}

func newFallbackScan(keywords []string, paragraphPattern string) (*fallbackScan, error) {
	if paragraphPattern == "" {
		return nil, fmt.Errorf("paragraph pattern must not be empty")
	}
	paragraph, err := compilePattern(paragraphPattern)
	if err != nil {
		return nil, fmt.Errorf("paragraph pattern: %w", err)
	}
	return &fallbackScan{keywords: keywords, paragraph: paragraph}, nil
}

// run returns the fallback text and the name of the stage that produced it.
func (f *fallbackScan) run(doc string) (string, string) {
	if sections := f.subsections(doc); len(sections) > 0 {
		return strings.Join(sections, "\n\n"), "a2_subsections"
	}
	if paras := f.paragraphs(doc); len(paras) > 0 {
		return strings.Join(paras, "\n\n"), "keyword_paragraphs"
	}
	return "", ""
}

// subsections captures each A.2.n heading through the next subsection or
// section boundary, keeping those that mention the admission keywords. A
// trailing subsection with no boundary after it is unbounded and dropped.
func (f *fallbackScan) subsections(doc string) []string {
	var out []string
	consumed := -1
	for _, m := range subsectionHead.FindAllStringIndex(doc, -1) {
		if m[0] < consumed {
			continue
		}
		loc := subsectionBoundary.FindStringIndex(doc[m[1]:])
		if loc == nil {
			continue
		}
		end := m[1] + loc[0]
		consumed = end
		section := strings.TrimSpace(doc[m[0]:end])
		if utf8.RuneCountInString(section) <= fallbackMinLen {
			continue
		}
		if !containsAny(section, f.keywords) {
			continue
		}
		out = append(out, section)
	}
	return out
}

func (f *fallbackScan) paragraphs(doc string) []string {
	var out []string
	for _, para := range strings.Split(doc, "\n\n") {
		if !f.paragraph.MatchString(para) {
			continue
		}
		tidy := strings.TrimSpace(para)
		if utf8.RuneCountInString(tidy) <= fallbackMinLen {
			continue
		}
		out = append(out, tidy)
	}
	return out
}
