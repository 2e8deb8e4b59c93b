package extract

import (
	"encoding/json"
	"fmt"
	"os"
)

// Overrides adjusts the built-in rule sets from a JSON file. Groups are
// matched by name: a group named like a built-in replaces it in place, any
// other is appended after the built-ins. Keyword lists and the paragraph
// hint replace wholesale when set.
type Overrides struct {
	DisableGroups    []string    `json:"disable_groups,omitempty"`
	Brief            []RuleGroup `json:"brief,omitempty"`
	Challenges       []RuleGroup `json:"challenges,omitempty"`
	SectionKeywords  []string    `json:"section_keywords,omitempty"`
	ParagraphPattern string      `json:"paragraph_pattern,omitempty"`
}

// LoadOverrides reads a rule override file.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return o, nil
}

// Apply returns a copy of the config with the overrides folded in. Disabling
// an unknown group is a no-op rather than an error, override files outlive
// rule-set revisions.
func (c Config) Apply(o Overrides) Config {
	out := c
	out.Brief = mergeGroups(c.Brief, o.Brief, o.DisableGroups)
	out.Challenges = mergeGroups(c.Challenges, o.Challenges, o.DisableGroups)
	if o.SectionKeywords != nil {
		out.SectionKeywords = o.SectionKeywords
	}
	if o.ParagraphPattern != "" {
		out.ParagraphPattern = o.ParagraphPattern
	}
	return out
}

func mergeGroups(base, overrides []RuleGroup, disabled []string) []RuleGroup {
	replaced := make(map[string]bool, len(overrides))
	out := make([]RuleGroup, 0, len(base)+len(overrides))
	for _, g := range base {
		merged := g
		for _, og := range overrides {
			if og.Name == g.Name {
				merged = og
				replaced[og.Name] = true
				break
			}
		}
		out = append(out, merged)
	}
	for _, og := range overrides {
		if !replaced[og.Name] {
			out = append(out, og)
		}
	}

	if len(disabled) == 0 {
		return out
	}
	off := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		off[name] = true
	}
	kept := out[:0]
	for _, g := range out {
		if !off[g.Name] {
			kept = append(kept, g)
		}
	}
	return kept
}
