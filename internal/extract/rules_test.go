package extract

import "testing"

func TestDefaultConfigCompiles(t *testing.T) {
	if _, err := NewEngine(DefaultConfig()); err != nil {
		t.Fatalf("default config must compile, got %v", err)
	}
}

func TestDefaultConfigGroupOrder(t *testing.T) {
	cfg := DefaultConfig()

	wantBrief := []string{
		"brief_standard",
		"brief_gef_objective",
		"brief_executive_summary",
		"brief_project_summary",
		"brief_undp_aims",
		"brief_gef_ppg",
		"brief_situation_intro",
		"brief_abstract",
		"brief_programme",
		"brief_cpf",
		"brief_value_chain",
	}
	wantChallenges := []string{
		"gef_endorsement",
		"gef_pif",
		"unido_a2",
		"undp_situation",
		"numbered_challenges",
		"standalone_challenges",
		"problem_statement",
		"context_lists",
		"bullet_lists",
		"context_section",
		"development_challenge",
		"situation_full",
	}

	if len(cfg.Brief) != len(wantBrief) {
		t.Fatalf("expected %d brief groups, got %d", len(wantBrief), len(cfg.Brief))
	}
	for i, name := range wantBrief {
		if cfg.Brief[i].Name != name {
			t.Errorf("brief group %d: expected %q, got %q", i, name, cfg.Brief[i].Name)
		}
	}

	if len(cfg.Challenges) != len(wantChallenges) {
		t.Fatalf("expected %d challenges groups, got %d", len(wantChallenges), len(cfg.Challenges))
	}
	for i, name := range wantChallenges {
		if cfg.Challenges[i].Name != name {
			t.Errorf("challenges group %d: expected %q, got %q", i, name, cfg.Challenges[i].Name)
		}
	}
}

func TestDefaultConfigRuleNamesUnique(t *testing.T) {
	cfg := DefaultConfig()
	seen := make(map[string]bool)
	for _, groups := range [][]RuleGroup{cfg.Brief, cfg.Challenges} {
		for _, g := range groups {
			for _, r := range g.Rules {
				if r.Name == "" {
					t.Errorf("group %q has a rule without a name", g.Name)
				}
				if seen[r.Name] {
					t.Errorf("rule name %q appears more than once", r.Name)
				}
				seen[r.Name] = true
			}
		}
	}
}

func TestDefaultConfigFallbackTuning(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.SectionKeywords) == 0 {
		t.Error("expected default section keywords")
	}
	if cfg.ParagraphPattern == "" {
		t.Error("expected a default paragraph pattern")
	}
}
