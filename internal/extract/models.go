// Package extract implements the field-extraction cascade: ordered groups of
// declarative pattern rules evaluated against normalized document text, one
// generic evaluator for both target fields.
package extract

// Separator joins multiple accepted sub-matches from one rule group.
const Separator = "\n\n---\n\n"

// FallbackGroup is the pseudo-group name reported when the last-resort
// keyword scan produced the challenges field.
const FallbackGroup = "keyword_fallback"

// GroupMode controls how a rule group turns accepted captures into a field
// value.
type GroupMode string

const (
	// GroupFirst returns the first accepted capture and ignores the rest.
	GroupFirst GroupMode = "first"
	// GroupConcat collects every accepted capture from every rule in the
	// group, deduplicates, and joins with Separator.
	GroupConcat GroupMode = "concat"
)

// Scope restricts a rule to an enclosing section. The section spans from the
// end of the anchor match to the start of the end match; a scope whose end
// marker is missing does not exist, and scoped rules yield nothing.
type Scope struct {
	Anchor string `json:"anchor"`
	End    string `json:"end"`
}

// Rule is one declarative extraction rule. All patterns are regular
// expressions applied case-insensitively.
//
// Two capture shapes exist. Self-contained rules bound their own span: the
// pattern's capture_group submatch is the candidate. Anchored rules locate a
// section start with anchor and scan forward for the earliest end match; if
// none is found the capture runs to the window cap (or to the end of the
// scanned region when window is 0) unless end_required discards it.
type Rule struct {
	Name string `json:"name"`

	Anchor        string `json:"anchor"`
	SelfContained bool   `json:"self_contained,omitempty"`
	CaptureGroup  int    `json:"capture_group,omitempty"`

	End         string `json:"end,omitempty"`
	EndRequired bool   `json:"end_required,omitempty"`
	Window      int    `json:"window,omitempty"`

	// Acceptance predicate on the trimmed capture, in runes. MinLen and
	// MaxLen are strict bounds; 0 disables MaxLen.
	MinLen int `json:"min_len"`
	MaxLen int `json:"max_len,omitempty"`

	// Keywords gates acceptance on challenge-flavored vocabulary: at least
	// one entry must occur (case-insensitive substring). For scoped rules
	// the gate applies to the whole scoped section, matching how loosely
	// named sections ("Situation Analysis") are screened before a slice of
	// them is captured.
	Keywords []string `json:"keywords,omitempty"`

	// RequireSentence demands a sentence terminator followed by a capital
	// letter inside the capture, which screens out tables of contents.
	RequireSentence bool `json:"require_sentence,omitempty"`

	// ScanLimit bounds the region (of the document or of the scope) in
	// which both the anchor search and the capture happen.
	ScanLimit int `json:"scan_limit,omitempty"`

	// IncludeAnchor starts the capture at the anchor match instead of
	// after it (section headers that belong in the output, e.g. "Barrier
	// Analysis").
	IncludeAnchor bool `json:"include_anchor,omitempty"`

	// AllMatches evaluates every anchor occurrence instead of the first.
	AllMatches bool `json:"all_matches,omitempty"`

	// ListCapture extends the capture back to the start of the paragraph
	// containing the anchor and forward over a trailing bullet or numbered
	// run (context phrases like "the sector faces the following
	// challenges:").
	ListCapture bool `json:"list_capture,omitempty"`

	Scope *Scope `json:"scope,omitempty"`
}

// RuleGroup is an ordered set of rules sharing one document-dialect
// rationale. Groups are tried in order and the cascade stops at the first
// group that yields at least one accepted capture.
type RuleGroup struct {
	Name  string    `json:"name"`
	Mode  GroupMode `json:"mode"`
	Rules []Rule    `json:"rules"`
}

// Config holds the rule sets and the fallback tuning for one engine. The
// keyword lists are corpus-tuned heuristics, kept as data so they can be
// replaced without touching the cascade.
type Config struct {
	Brief      []RuleGroup `json:"brief"`
	Challenges []RuleGroup `json:"challenges"`

	// SectionKeywords admit an "A.2.n" subsection into the fallback output.
	SectionKeywords []string `json:"section_keywords"`
	// ParagraphPattern admits a free paragraph into the fallback output.
	ParagraphPattern string `json:"paragraph_pattern"`
}

// Result is the outcome of one cascade run. Empty Text means no rule
// accepted a capture; GroupsTried records how far the cascade ran, in order.
type Result struct {
	Text        string   `json:"text"`
	Group       string   `json:"group"`
	Rules       []string `json:"rules,omitempty"`
	GroupsTried []string `json:"groups_tried,omitempty"`
}

// Matched reports whether the cascade produced a field value.
func (r Result) Matched() bool { return r.Text != "" }
