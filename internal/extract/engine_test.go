package extract

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gefEndorsement carries both an A.4 baseline/problem narrative and a
// barrier analysis, the two section shapes of a CEO endorsement request.
const gefEndorsement = `PART II: PROJECT JUSTIFICATION

A.4. The baseline project and the problem that it seeks to address

Artisanal processors lose up to thirty percent of each catch to spoilage because cold storage at landing sites is unreliable and hygiene practices fall short of sanitary requirements for export markets.

Barrier Analysis

The first barrier is the absence of affordable finance for smokehouse upgrades. The second barrier is weak enforcement of sanitary inspection protocols at municipal landing sites.

A.5 Incremental cost reasoning

Standard incremental text follows here.
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestExtractBrief_MarkedSection(t *testing.T) {
	doc := `UNITED NATIONS INDUSTRIAL DEVELOPMENT ORGANIZATION

Project number: 140337

Brief description:
The project will modernize fish landing sites along the northern coast and introduce traceability systems that meet European Union import requirements.

Approved: 12 May 2016
`
	res := newTestEngine(t).ExtractBrief(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "brief_standard", res.Group)
	assert.Equal(t, []string{"brief_description_marked"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "The project will modernize"))
	assert.True(t, strings.HasSuffix(res.Text, "import requirements."))
	assert.NotContains(t, res.Text, "Approved")
}

func TestExtractBrief_StopsAtFirstGroup(t *testing.T) {
	doc := `Brief description:
The project will modernize fish landing sites along the northern coast and introduce traceability systems that meet European Union import requirements.

Approved: 12 May 2016

EXECUTIVE SUMMARY

Extensive summary material that the cascade must never reach because an earlier group already produced the field.
`
	res := newTestEngine(t).ExtractBrief(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "brief_standard", res.Group)
	assert.Equal(t, []string{"brief_standard"}, res.GroupsTried)
	assert.NotContains(t, res.Text, "Extensive summary material")
}

func TestExtractBrief_OpenEndedFallback(t *testing.T) {
	// No end marker and no capitalized follow-on paragraph: the open
	// variant captures up to the separator line.
	doc := `Project of the Government of Kenya

Brief description
The programme establishes common facility centres for leather clusters and links them to regional buyers through a vendor development scheme run with the national investment authority.

________________________
`
	res := newTestEngine(t).ExtractBrief(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "brief_standard", res.Group)
	assert.Equal(t, []string{"brief_description_open"}, res.Rules)
	assert.True(t, strings.HasSuffix(res.Text, "national investment authority."))
	assert.NotContains(t, res.Text, "____")
}

func TestExtractBrief_OpeningParagraph(t *testing.T) {
	doc := `PROJECT DOCUMENT

Country: Uganda
Implementing Partner: Ministry of Agriculture

The project aims to reduce post-harvest losses in the maize value chain by financing hermetic storage at aggregation centres and by training cooperative extension officers in aflatoxin control.

Total budget: USD 4,500,000
`
	res := newTestEngine(t).ExtractBrief(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "brief_undp_aims", res.Group)
	assert.Len(t, res.GroupsTried, 5)
	assert.Equal(t,
		"The project aims to reduce post-harvest losses in the maize value chain "+
			"by financing hermetic storage at aggregation centres and by training "+
			"cooperative extension officers in aflatoxin control.",
		res.Text)
}

func TestExtractBrief_NoMatch(t *testing.T) {
	res := newTestEngine(t).ExtractBrief("Routine correspondence about travel arrangements.")
	assert.False(t, res.Matched())
	assert.Empty(t, res.Group)
	assert.Len(t, res.GroupsTried, 11)
}

func TestExtractChallenges_EndorsementSections(t *testing.T) {
	res := newTestEngine(t).ExtractChallenges(gefEndorsement)
	require.True(t, res.Matched())
	assert.Equal(t, "gef_endorsement", res.Group)
	assert.Equal(t, []string{"a4_baseline_problem", "barrier_analysis"}, res.Rules)
	assert.Equal(t, []string{"gef_endorsement"}, res.GroupsTried)

	parts := strings.Split(res.Text, Separator)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "Artisanal processors")
	assert.True(t, strings.HasPrefix(parts[1], "Barrier Analysis"))
	assert.NotContains(t, res.Text, "Incremental cost")
}

func TestExtractChallenges_DropsDuplicateCaptures(t *testing.T) {
	body := "Weak quality infrastructure keeps smallholder cooperatives out of formal " +
		"export channels because accredited laboratories cannot issue internationally " +
		"recognized certificates."
	doc := "A.4 baseline project and problem\n\n" + body + "\n\nA.5 Coordination\n\n" +
		"Annex material repeats the section verbatim below.\n\n" +
		"A.4 baseline project and problem\n\n" + body + "\n\nA.5 Coordination\n"

	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, body, res.Text)
	assert.NotContains(t, res.Text, Separator)
}

func TestExtractChallenges_NumberedHeading(t *testing.T) {
	doc := `COUNTRY PROGRAMME 2016-2020

3.1 Challenges to be addressed

Producer groups cite three recurring difficulties. Access to working capital remains rationed, power supply at rural processing sites is erratic, and compliance costs for export certification exceed the margins of most cooperatives.

3.2 Programme response

The programme finances shared service centres.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "numbered_challenges", res.Group)
	assert.Equal(t, []string{"numbered_challenges_section"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "Producer groups"))
	assert.NotContains(t, res.Text, "Programme response")
}

func TestExtractChallenges_ScopedSituation(t *testing.T) {
	doc := `PROJECT DOCUMENT

I. SITUATION ANALYSIS

Rural agro-processing remains fragmented across the central corridor. The main challenges facing the dairy subsector are low milk collection rates, weak cold chains, and frequent power interruptions at collection centres, all of which depress farmgate prices for smallholder households.

To alleviate these pressures, cooperatives have begun pooling refrigerated transport.

II. STRATEGY

The project will consolidate collection routes.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "undp_situation", res.Group)
	// The scoped and the document-wide variant capture the same span; the
	// duplicate collapses.
	assert.Equal(t, []string{"situation_challenges", "global_challenges"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "the dairy subsector"))
	assert.NotContains(t, res.Text, "To alleviate")
	assert.NotContains(t, res.Text, Separator)
}

func TestExtractChallenges_ListIntroduction(t *testing.T) {
	doc := `SECTOR REVIEW NOTE

Apparel enterprises face the following major challenges:
• High cost of imported inputs driven by tariff escalation
• Limited compliance with international buyer codes of conduct
• Ageing machinery and low digital adoption across mills

Donor coordination remains strong.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, "context_lists", res.Group)
	assert.Equal(t, []string{"sector_faces"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "Apparel enterprises"))
	assert.Contains(t, res.Text, "Ageing machinery")
	assert.NotContains(t, res.Text, "Donor coordination")
}

func TestExtractChallenges_SubsectionFallback(t *testing.T) {
	doc := `A.2.1 Sector background

Energy intensity across the manufacturing base remains well above regional benchmarks, and the constraint most often cited by plant operators is the acute shortage of accredited energy auditors.

A.2.2 Policy setting

Tariff schedules continue to mask the real cost of electricity for industrial consumers, which lowers the return on efficiency retrofits and slows uptake of modern motor systems.

A.3 Project objectives

The programme responds to the findings above.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, FallbackGroup, res.Group)
	assert.Equal(t, []string{"a2_subsections"}, res.Rules)
	assert.Equal(t, FallbackGroup, res.GroupsTried[len(res.GroupsTried)-1])
	assert.Contains(t, res.Text, "Energy intensity")
	// The policy subsection mentions none of the admission keywords.
	assert.NotContains(t, res.Text, "Tariff schedules")
}

func TestExtractChallenges_ParagraphFallback(t *testing.T) {
	doc := `BACK TO OFFICE MISSION REPORT

The mission reviewed progress with national counterparts in March.

The key challenges identified during the mission were persistent power outages at the pilot sites, limited access to affordable credit for small producers, and the absence of accredited testing laboratories for export certification.

Follow-up actions were agreed with the steering committee.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, FallbackGroup, res.Group)
	assert.Equal(t, []string{"keyword_paragraphs"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "The key challenges identified"))
	assert.NotContains(t, res.Text, "Follow-up actions")
}

func TestExtractChallenges_ProseChallengeSentence(t *testing.T) {
	// No heading anywhere near the statement: the sentence sits in plain
	// narrative prose, so only the keyword fallback can pick it up.
	doc := `ANNUAL SECTOR REVIEW

Consultations were held with provincial chambers of commerce during the reporting period.

Stakeholders agreed that the main challenges facing the sector include lack of financing, limited technical capacity, and unreliable electricity supply across the industrial estates.

The review panel endorsed the workplan for the coming year.
`
	res := newTestEngine(t).ExtractChallenges(doc)
	require.True(t, res.Matched())
	assert.Equal(t, FallbackGroup, res.Group)
	assert.Equal(t, []string{"keyword_paragraphs"}, res.Rules)
	assert.True(t, strings.HasPrefix(res.Text, "Stakeholders agreed"))
	assert.Contains(t, res.Text, "lack of financing, limited technical capacity")
	assert.NotContains(t, res.Text, "review panel")
}

func TestExtractChallenges_NoMatch(t *testing.T) {
	doc := `Brief description:
The project will modernize fish landing sites along the northern coast and introduce traceability systems that meet European Union import requirements.

Approved: 12 May 2016
`
	res := newTestEngine(t).ExtractChallenges(doc)
	assert.False(t, res.Matched())
	assert.Empty(t, res.Group)
	assert.Len(t, res.GroupsTried, 13)
	assert.Equal(t, FallbackGroup, res.GroupsTried[12])
}

func TestExtract_Deterministic(t *testing.T) {
	engine := newTestEngine(t)
	for i := 0; i < 3; i++ {
		assert.Equal(t, engine.ExtractBrief(gefEndorsement), engine.ExtractBrief(gefEndorsement))
		assert.Equal(t, engine.ExtractChallenges(gefEndorsement), engine.ExtractChallenges(gefEndorsement))
	}
}

func TestExtract_ConcurrentUse(t *testing.T) {
	// One engine instance is shared by every batch worker.
	engine := newTestEngine(t)
	wantBrief := engine.ExtractBrief(gefEndorsement)
	wantChallenges := engine.ExtractChallenges(gefEndorsement)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				assert.Equal(t, wantBrief, engine.ExtractBrief(gefEndorsement))
				assert.Equal(t, wantChallenges, engine.ExtractChallenges(gefEndorsement))
			}
		}()
	}
	wg.Wait()
}

func TestExtract_BothFieldsFromOneDocument(t *testing.T) {
	doc := `I. SITUATION ANALYSIS

Rural agro-processing remains fragmented across the central corridor. The main challenges facing the dairy subsector are low milk collection rates, weak cold chains, and frequent power interruptions at collection centres, all of which depress farmgate prices for smallholder households.

To alleviate these pressures, cooperatives have begun pooling refrigerated transport.

II. STRATEGY

The project will consolidate collection routes.
`
	engine := newTestEngine(t)

	brief := engine.ExtractBrief(doc)
	require.True(t, brief.Matched())
	assert.Equal(t, "brief_situation_intro", brief.Group)
	assert.Contains(t, brief.Text, "Rural agro-processing")
	assert.Contains(t, brief.Text, "To alleviate")

	challenges := engine.ExtractChallenges(doc)
	require.True(t, challenges.Matched())
	assert.Equal(t, "undp_situation", challenges.Group)
}

func TestNewEngine_InvalidPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Challenges = []RuleGroup{{
		Name:  "broken",
		Mode:  GroupConcat,
		Rules: []Rule{{Name: "bad_anchor", Anchor: `[unclosed`, MinLen: 10}},
	}}

	_, err := NewEngine(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "bad_anchor")
}

func TestNewEngine_EndRequiredNeedsEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brief = []RuleGroup{{
		Name:  "misconfigured",
		Mode:  GroupFirst,
		Rules: []Rule{{Name: "no_end", Anchor: `Summary`, EndRequired: true, MinLen: 10}},
	}}

	_, err := NewEngine(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_required")
}
