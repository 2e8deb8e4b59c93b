package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Patterns shared by capture assembly. The run patterns carry no letters, so
// case handling does not apply; the section-break scan is case-sensitive on
// purpose, a lowercase continuation line is prose rather than a heading.
var (
	sentenceBreak = regexp.MustCompile(`\.\s+[A-Z]`)
	bulletRun     = regexp.MustCompile(`(?:\s*[•\-\*►●]\s*[^\n]+\n?)+`)
	numberedRun   = regexp.MustCompile(`(?:\s*\d+[\.\)]\s*[^\n]+\n?)+`)
	sectionBreak  = regexp.MustCompile(`\n\n\s*(?:\d+\.\s+[A-Z]|[A-Z][a-z]+\s+[A-Z])`)
)

// listTailLimit bounds the forward scan for a bullet or numbered run after a
// list-introducing phrase, in runes.
const listTailLimit = 5000

type compiledRule struct {
	spec        Rule
	anchor      *regexp.Regexp
	end         *regexp.Regexp
	scopeAnchor *regexp.Regexp
	scopeEnd    *regexp.Regexp
}

type compiledGroup struct {
	name  string
	mode  GroupMode
	rules []compiledRule
}

// Engine evaluates the two rule cascades against normalized document text.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	brief      []compiledGroup
	challenges []compiledGroup
	fallback   *fallbackScan
}

// NewEngine compiles the configured rule sets. Every pattern is validated
// here so a malformed override surfaces at startup rather than mid-batch.
func NewEngine(cfg Config) (*Engine, error) {
	brief, err := compileGroups(cfg.Brief)
	if err != nil {
		return nil, fmt.Errorf("brief rules: %w", err)
	}
	challenges, err := compileGroups(cfg.Challenges)
	if err != nil {
		return nil, fmt.Errorf("challenges rules: %w", err)
	}
	fallback, err := newFallbackScan(cfg.SectionKeywords, cfg.ParagraphPattern)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return &Engine{brief: brief, challenges: challenges, fallback: fallback}, nil
}

func compileGroups(groups []RuleGroup) ([]compiledGroup, error) {
	out := make([]compiledGroup, 0, len(groups))
	for _, g := range groups {
		cg := compiledGroup{name: g.Name, mode: g.Mode}
		if cg.mode == "" {
			cg.mode = GroupFirst
		}
		for _, r := range g.Rules {
			cr, err := compileRule(r)
			if err != nil {
				return nil, fmt.Errorf("group %q: rule %q: %w", g.Name, r.Name, err)
			}
			cg.rules = append(cg.rules, cr)
		}
		out = append(out, cg)
	}
	return out, nil
}

func compileRule(r Rule) (compiledRule, error) {
	cr := compiledRule{spec: r}
	var err error
	if cr.anchor, err = compilePattern(r.Anchor); err != nil {
		return cr, fmt.Errorf("anchor: %w", err)
	}
	if r.End != "" {
		if cr.end, err = compilePattern(r.End); err != nil {
			return cr, fmt.Errorf("end: %w", err)
		}
	} else if r.EndRequired {
		return cr, fmt.Errorf("end_required set without an end pattern")
	}
	if r.Scope != nil {
		if r.Scope.Anchor == "" || r.Scope.End == "" {
			return cr, fmt.Errorf("scope needs both anchor and end patterns")
		}
		if cr.scopeAnchor, err = compilePattern(r.Scope.Anchor); err != nil {
			return cr, fmt.Errorf("scope anchor: %w", err)
		}
		if cr.scopeEnd, err = compilePattern(r.Scope.End); err != nil {
			return cr, fmt.Errorf("scope end: %w", err)
		}
	}
	if r.SelfContained && r.CaptureGroup >= cr.anchor.NumSubexp()+1 {
		return cr, fmt.Errorf("capture group %d not present in anchor", r.CaptureGroup)
	}
	return cr, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

// ExtractBrief runs the brief-description cascade.
func (e *Engine) ExtractBrief(text string) Result {
	return e.run(e.brief, text)
}

// ExtractChallenges runs the challenges cascade, then the keyword fallback
// when no group matched.
func (e *Engine) ExtractChallenges(text string) Result {
	res := e.run(e.challenges, text)
	if res.Matched() {
		return res
	}
	res.GroupsTried = append(res.GroupsTried, FallbackGroup)
	if text, rule := e.fallback.run(text); text != "" {
		res.Text = text
		res.Group = FallbackGroup
		res.Rules = []string{rule}
	}
	return res
}

// run walks the groups in order and stops at the first one that yields an
// accepted capture. First-mode groups return their first accepted capture;
// concat-mode groups gather every accepted capture, deduplicate, and join.
func (e *Engine) run(groups []compiledGroup, text string) Result {
	var res Result
	for i := range groups {
		g := &groups[i]
		res.GroupsTried = append(res.GroupsTried, g.name)
		var captures, rulesHit []string
		for j := range g.rules {
			got := evalRule(&g.rules[j], text)
			if len(got) == 0 {
				continue
			}
			rulesHit = append(rulesHit, g.rules[j].spec.Name)
			if g.mode == GroupFirst {
				res.Text = got[0]
				res.Group = g.name
				res.Rules = rulesHit
				return res
			}
			captures = append(captures, got...)
		}
		if len(captures) > 0 {
			res.Text = strings.Join(dedupe(captures), Separator)
			res.Group = g.name
			res.Rules = rulesHit
			return res
		}
	}
	return res
}

// evalRule returns every accepted capture the rule produces on the document.
// Rules without AllMatches stop at the first anchor occurrence that yields a
// candidate, whether or not the candidate passes acceptance.
func evalRule(cr *compiledRule, doc string) []string {
	region, scopeText, ok := resolveRegion(cr, doc)
	if !ok {
		return nil
	}

	// A required end means the first anchor occurrence may not be the one
	// that matches; scan them all.
	limit := 1
	if cr.spec.AllMatches || cr.spec.EndRequired {
		limit = -1
	}
	matches := cr.anchor.FindAllStringSubmatchIndex(region, limit)

	var out []string
	consumed := -1
	for _, m := range matches {
		// A required end marker makes the capture part of the matched
		// span, so later anchors inside it are not fresh occurrences.
		if cr.spec.AllMatches && cr.spec.EndRequired && m[0] < consumed {
			continue
		}
		capture, captureEnd, ok := assembleCapture(cr, region, m)
		if !ok {
			continue
		}
		consumed = captureEnd
		if accepted, ok := acceptCapture(&cr.spec, capture, scopeText); ok {
			out = append(out, accepted)
		}
		if !cr.spec.AllMatches {
			break
		}
	}
	return out
}

// resolveRegion locates the text a rule evaluates against: the whole
// document, or the enclosing scope section, optionally truncated to the
// rule's scan limit. scopeText is the untruncated scope for keyword gating.
func resolveRegion(cr *compiledRule, doc string) (region, scopeText string, ok bool) {
	region = doc
	if cr.spec.Scope != nil {
		m := cr.scopeAnchor.FindStringIndex(doc)
		if m == nil {
			return "", "", false
		}
		endRel := cr.scopeEnd.FindStringIndex(doc[m[1]:])
		if endRel == nil {
			return "", "", false
		}
		scopeText = doc[m[1] : m[1]+endRel[0]]
		region = scopeText
	}
	if lim := cr.spec.ScanLimit; lim > 0 {
		region = region[:advanceRunes(region, 0, lim)]
	}
	return region, scopeText, true
}

// assembleCapture turns one anchor match into a candidate span. ok is false
// when a required end marker is absent or a submatch group did not
// participate; such anchors are skipped without consuming text.
func assembleCapture(cr *compiledRule, region string, m []int) (capture string, captureEnd int, ok bool) {
	r := &cr.spec
	if r.SelfContained {
		lo, hi := m[2*r.CaptureGroup], m[2*r.CaptureGroup+1]
		if lo < 0 {
			return "", 0, false
		}
		return region[lo:hi], m[1], true
	}
	if r.ListCapture {
		return listCapture(region, m)
	}

	start := m[1]
	if r.IncludeAnchor {
		start = m[0]
	}
	if cr.end != nil {
		if loc := cr.end.FindStringIndex(region[m[1]:]); loc != nil {
			end := m[1] + loc[0]
			return region[start:end], end, true
		}
		if r.EndRequired {
			return "", 0, false
		}
	}
	end := len(region)
	if r.Window > 0 {
		end = advanceRunes(region, start, r.Window)
	}
	return region[start:end], end, true
}

// listCapture backs up to the start of the paragraph holding the anchor and
// extends forward over the introduced list: a bullet run, a numbered run, or
// free text up to the next section heading.
func listCapture(region string, m []int) (string, int, bool) {
	start := 0
	if idx := strings.LastIndex(region[:m[0]], "\n\n"); idx >= 0 {
		start = idx + 2
	}

	tail := region[m[1]:advanceRunes(region, m[1], listTailLimit)]
	var end int
	if loc := bulletRun.FindStringIndex(tail); loc != nil {
		end = m[1] + loc[1]
	} else if loc := numberedRun.FindStringIndex(tail); loc != nil {
		end = m[1] + loc[1]
	} else if loc := sectionBreak.FindStringIndex(region[m[1]:]); loc != nil {
		end = m[1] + loc[0]
	} else {
		end = advanceRunes(region, m[1], listTailLimit)
	}
	return region[start:end], end, true
}

// acceptCapture applies the rule's acceptance predicate and returns the
// trimmed capture. Keyword gates read the scope section when one exists,
// otherwise the capture itself.
func acceptCapture(r *Rule, capture, scopeText string) (string, bool) {
	tidy := strings.TrimSpace(capture)
	if tidy == "" {
		return "", false
	}
	n := utf8.RuneCountInString(tidy)
	if n <= r.MinLen {
		return "", false
	}
	if r.MaxLen > 0 && n >= r.MaxLen {
		return "", false
	}
	if r.RequireSentence && !sentenceBreak.MatchString(tidy) {
		return "", false
	}
	if len(r.Keywords) > 0 {
		gated := tidy
		if r.Scope != nil {
			gated = scopeText
		}
		if !containsAny(gated, r.Keywords) {
			return "", false
		}
	}
	return tidy, true
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// dedupe drops captures whose first 100 runes repeat an earlier capture.
// Long sections extracted twice through sibling rules differ, if at all,
// only in their tails.
func dedupe(captures []string) []string {
	seen := make(map[string]struct{}, len(captures))
	out := captures[:0]
	for _, c := range captures {
		key := c[:advanceRunes(c, 0, 100)]
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// advanceRunes returns the byte offset n runes past off, capped at the end
// of s. Slice bounds derived from it never split a rune.
func advanceRunes(s string, off, n int) int {
	for i := 0; i < n && off < len(s); i++ {
		_, w := utf8.DecodeRuneInString(s[off:])
		off += w
	}
	return off
}
