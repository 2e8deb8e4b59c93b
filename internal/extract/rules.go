package extract

// Default rule sets for the UNIDO-style project-document corpus. Order is
// load-bearing: dialect-specific anchors come first because their headings
// are unambiguous, generic structural headers next, keyword-gated loose
// sections after, and the engine's keyword fallback runs last. All patterns
// are compiled case-insensitively by the engine.

// briefEndMarkers bound a "Brief description" front-page section: approval
// lines, contents listings, and the first structured section of the body.
const briefEndMarkers = `\n\s*Approved[:\s]` +
	`|\n\s*TABLE\s+OF\s+CONTENTS` +
	`|\n\s*INDEX\s*\n` +
	`|\n\s*EXECUTIVE\s+SUMMARY` +
	`|\n\s*On\s+behalf\s+of` +
	`|\n\s*Signature[:\s]` +
	`|\n\s*PART\s+[IV1-9]` +
	`|\n\s*A\.\s+CONTEXT` +
	`|\n\s*A\.1\s+` +
	`|\n\s*B\.\s+` +
	`|\n\s*1\.\s+[A-Z]` +
	`|\n\s*ABBREVIATIONS` +
	`|\n\s*LIST\s+OF\s+ABBREVIATIONS` +
	`|\n\s*ACRONYMS` +
	`|\n\s*Contents\s*\n`

// briefBreakMarkers are the looser break points for the open-ended variant,
// which may otherwise capture to the end of the document.
const briefBreakMarkers = `\n\s*Approved` +
	`|\n\s*TABLE\s+OF` +
	`|\n\s*INDEX\s*\n` +
	`|\n\s*A\.\s` +
	`|\n\s*PART\s+I` +
	`|\n\s*_{5,}` +
	`|\n\s*-{5,}`

func defaultBriefGroups() []RuleGroup {
	return []RuleGroup{
		{
			Name: "brief_standard",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "brief_description_marked",
					Anchor:      `Brief\s+description\s*[:\-]?\s*\n`,
					End:         briefEndMarkers,
					EndRequired: true,
					MinLen:      50,
				},
				{
					Name:        "brief_description_paragraph",
					Anchor:      `Brief\s+description\s*[:\-]?\s*\n`,
					End:         `\n\n\s*[A-Z][a-z]+[:\s]|\n\n\s*\d+\.\s`,
					EndRequired: true,
					MinLen:      50,
				},
				{
					Name:   "brief_description_open",
					Anchor: `Brief\s+description\s*[:\-]?\s*\n`,
					End:    briefBreakMarkers,
					MinLen: 50,
				},
			},
		},
		{
			Name: "brief_gef_objective",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "project_objective",
					Anchor:      `Project\s+Objective\s*[:\-]\s*`,
					End:         `\n\s*(?:Trust|Grant|Project\s+Component|Expected|Type|\(select\)|[A-Z]\.\s+)`,
					EndRequired: true,
					MinLen:      20,
				},
				{
					// Table-cell layout: the objective is a run of lines
					// ending at a blank line or the next cell label.
					Name:   "project_objective_cell",
					Anchor: `Project\s+Objective\s*[:\-]\s*`,
					End:    `\n\n|\n[A-Z0-9]\.`,
					MinLen: 20,
				},
			},
		},
		{
			Name: "brief_executive_summary",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "executive_summary",
					Anchor:      `EXECUTIVE\s+SUMMARY\s*\n`,
					End:         `\n\s*(?:PART\s+|[A-Z]\.\s+|\d+\.\s+[A-Z]|TABLE\s+OF\s+CONTENTS)`,
					EndRequired: true,
					MinLen:      100,
				},
				{
					Name:        "executive_summary_inline",
					Anchor:      `Executive\s+Summary\s*[:\n]`,
					End:         `\n\s*(?:\d+\.\s+|[A-Z]\.\s+|Introduction|Background)`,
					EndRequired: true,
					MinLen:      100,
				},
			},
		},
		{
			Name: "brief_project_summary",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "project_summary",
					Anchor:      `Project\s+Summary\s*[:\-]?\s*\n`,
					End:         `\n\s*(?:[A-Z]\.\s+|\d+\.\s+[A-Z]|PART\s+)`,
					EndRequired: true,
					MinLen:      50,
				},
				{
					Name:        "project_description",
					Anchor:      `Project\s+Description\s*[:\-]?\s*\n`,
					End:         `\n\s*(?:[A-Z]\.\s+|\d+\.\s+[A-Z]|PART\s+)`,
					EndRequired: true,
					MinLen:      50,
				},
			},
		},
		{
			// UNDP front matter rarely labels the summary; the opening
			// "This project aims to ..." sentence run stands in for it.
			Name: "brief_undp_aims",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:          "undp_aims_spaced",
					Anchor:        `((?:T\s*hi\s*s|Th\s*e)\s+project\s+(?:aims|seeks|is\s+designed|is\s+expected|will)\s+to[^.]+\.(?:[^.]+\.){0,5})`,
					SelfContained: true,
					CaptureGroup:  1,
					ScanLimit:     5000,
					MinLen:        50,
					MaxLen:        3000,
				},
				{
					Name:          "undp_aims",
					Anchor:        `((?:This|The)\s+project\s+(?:aims|seeks|is\s+designed|is\s+expected|will)\s+to[^.]+\.(?:[^.]+\.){0,5})`,
					SelfContained: true,
					CaptureGroup:  1,
					ScanLimit:     5000,
					MinLen:        50,
					MaxLen:        3000,
				},
				{
					Name:          "undp_after_agency",
					Anchor:        `Implementing\s+(?:Agency|Partner)\s*:\s*[^\n]+\n\s*([A-Z][^.]+(?:project|programme|initiative)[^.]*\.(?:[^.]+\.){0,5})`,
					SelfContained: true,
					CaptureGroup:  1,
					ScanLimit:     5000,
					MinLen:        50,
					MaxLen:        3000,
				},
				{
					Name:          "undp_after_entity",
					Anchor:        `(?:Executing\s+Entity|Implementing\s+Agency)\s*:\s*[^\n]+\n\s*([A-Z][^.]*(?:project|programme|initiative|aims|seeks|will|is\s+designed)[^.]*\.(?:[^.]+\.){0,5})`,
					SelfContained: true,
					CaptureGroup:  1,
					ScanLimit:     5000,
					MinLen:        50,
					MaxLen:        3000,
				},
			},
		},
		{
			Name: "brief_gef_ppg",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "ppg_activities",
					Anchor:      `Describe\s+the\s+PPG\s+activities\s+and\s+justifications\s*[:\-]?\s*`,
					End:         `\n\s*(?:List\s+of\s+Proposed|The\s+following\s+provides|Component\s+\d|[A-Z]\.\s+[A-Z])`,
					EndRequired: true,
					MinLen:      50,
				},
				{
					Name:          "ppg_project_title",
					Anchor:        `PROJECT\s+TITLE\s*[:\-]\s*([^\n]+)`,
					SelfContained: true,
					CaptureGroup:  1,
					MinLen:        50,
				},
			},
		},
		{
			Name: "brief_situation_intro",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "situation_intro",
					Anchor:      `(?:I\.|1\.)\s*SITUATION\s+ANALYSIS\s*\n`,
					End:         `\n\s*(?:II\.|2\.|Economy|Energy|Agriculture|[A-Z][a-z]+\s*:)`,
					EndRequired: true,
					MinLen:      100,
				},
			},
		},
		{
			Name: "brief_abstract",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "abstract",
					Anchor:      `\n\s*Abstract\s*\n`,
					End:         `\n\s*(?:Content|Table\s+of\s+Contents|Introduction|\d+\s+[A-Z]|[A-Z]+\s+[A-Z]+:)`,
					EndRequired: true,
					MinLen:      100,
				},
				{
					Name:        "abstract_caps",
					Anchor:      `\n\s*ABSTRACT\s*\n`,
					End:         `\n\s*(?:CONTENT|TABLE\s+OF|INTRODUCTION|\d+\s+[A-Z])`,
					EndRequired: true,
					MinLen:      100,
				},
			},
		},
		{
			Name: "brief_programme",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "programme_vision",
					Anchor:      `Program\s+Vision\s+and\s+Mission\s*\n`,
					End:         `\n\s*(?:Program\s+Objectives|The\s+\dADI|[A-Z][a-z]+\s+Objectives|\d+\s*\n)`,
					EndRequired: true,
					MinLen:      100,
				},
				{
					Name:        "programme_objectives",
					Anchor:      `Program\s+Objectives(?:\s+and\s+Expected\s+Impact)?\s*\n`,
					End:         `\n\s*(?:For\s+the\s+|Support\s+to|I\.\s+Problem|Table\s+\d)`,
					EndRequired: true,
					MinLen:      100,
				},
			},
		},
		{
			Name: "brief_cpf",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "cpf_front",
					Anchor:      `COUNTRY\s+PROGRAMME\s+(?:FRAMEWORK|FOR)\s+[^\n]+\n(?:for\s+[^\n]+\n)?(?:INCLUSIVE[^\n]+\n)?(?:\d{4}[^\n]*\n)?`,
					End:         `\n\s*_{5,}|\n\s*[A-Z][a-z]+\s+[A-Z][a-z]+\s*\n\s*Director`,
					EndRequired: true,
					MinLen:      100,
					MaxLen:      5000,
				},
				{
					Name:          "cpf_sentence",
					Anchor:        `(The\s+[A-Z][a-z]+\s+Country\s+Programme\s+Framework[^.]+\.(?:[^.]+\.){1,10})`,
					SelfContained: true,
					CaptureGroup:  1,
					MinLen:        100,
					MaxLen:        5000,
				},
			},
		},
		{
			Name: "brief_value_chain",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "value_chain_front",
					Anchor:      `(?:Value\s+Chain|Support\s+Program)[^\n]*\n(?:Prospective[^\n]*\n)?`,
					End:         `\n\s*(?:Contents|Table\s+of\s+Contents|Acronyms|\d+\s*\n)`,
					EndRequired: true,
					MinLen:      100,
					MaxLen:      5000,
				},
				{
					Name:        "country_context",
					Anchor:      `Country\s+Context\s*\n`,
					End:         `\n\s*(?:The\s+\dADI|Contents|Acronyms|Tables\s+and)`,
					EndRequired: true,
					MinLen:      100,
					MaxLen:      5000,
				},
			},
		},
	}
}

// situationScope encloses the UNDP "I. SITUATION ANALYSIS" body.
var situationScope = Scope{
	Anchor: `I\.\s*SITUATION\s+ANALYSIS\s*\n`,
	End:    `\n\s*(?:II\.|2\.|STRATEGY|PART\s+)`,
}

func defaultChallengeGroups() []RuleGroup {
	return []RuleGroup{
		{
			// GEF CEO endorsement: the A.4 baseline/problem narrative and
			// barrier analysis are the authoritative problem statements.
			Name: "gef_endorsement",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:       "a4_baseline_problem",
					Anchor:     `A\.?\s*4\.?\s*(?:The\s+)?baseline\s+project\s+and\s+(?:the\s+)?problem(?:\s+that\s+it\s+seeks\s+to\s+address)?`,
					End:        `\n\s*(?:A\.?\s*[5-9]|B\.?\s+[A-Z]|C\.?\s+)`,
					Window:     30000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "a_problem_to_address",
					Anchor:     `A\.?\s*\d+\.?\s*(?:The\s+)?problem(?:\s+that\s+it\s+seeks)?\s+to\s+(?:be\s+)?address`,
					End:        `\n\s*(?:A\.?\s*[5-9]|B\.?\s+[A-Z]|C\.?\s+)`,
					Window:     30000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:          "barrier_analysis",
					Anchor:        `\n\s*Barrier\s+Analysis\s*\n`,
					End:           `\n\s*(?:[A-Z]\.?\s*\d+\.?\s+[A-Z]|\d+\.\s+[A-Z][a-z]+\s+[A-Z]|The\s+project\s+(?:strategy|will|aims))`,
					Window:        15000,
					MinLen:        100,
					IncludeAnchor: true,
					AllMatches:    true,
				},
				{
					Name:          "barriers_to_development",
					Anchor:        `\n\s*(?:Key\s+)?Barriers?\s+(?:to\s+)?(?:the\s+)?(?:Development|Achievement|Implementation)`,
					End:           `\n\s*(?:[A-Z]\.?\s*\d+\.?\s+[A-Z]|\d+\.\s+[A-Z][a-z]+\s+[A-Z]|The\s+project\s+(?:strategy|will|aims))`,
					Window:        15000,
					MinLen:        100,
					IncludeAnchor: true,
					AllMatches:    true,
				},
				{
					Name:          "barriers_inline",
					Anchor:        `(?:main|key|significant)\s+barriers?\s+(?:to\s+achieving|include|are)`,
					End:           `\n\s*(?:[A-Z]\.?\s*\d+\.?\s+[A-Z]|\d+\.\s+[A-Z][a-z]+\s+[A-Z]|The\s+project\s+(?:strategy|will|aims))`,
					Window:        15000,
					MinLen:        100,
					IncludeAnchor: true,
					AllMatches:    true,
				},
			},
		},
		{
			Name: "gef_pif",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:       "b1_baseline_problem",
					Anchor:     `B\.?\s*1\.?\s*(?:Describe\s+the\s+)?baseline\s+(?:project\s+and\s+(?:the\s+)?)?problem(?:\s+that\s+it\s+seeks\s+to\s+address)?`,
					End:        `\n\s*(?:B\.?\s*[2-9]|C\.?\s+|PART\s+)`,
					Window:     30000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "b1_describe_baseline",
					Anchor:     `B\.?\s*1\.?\s*Describe\s+the\s+baseline\s+project`,
					End:        `\n\s*(?:B\.?\s*[2-9]|C\.?\s+|PART\s+)`,
					Window:     30000,
					MinLen:     100,
					AllMatches: true,
				},
			},
		},
		{
			Name: "unido_a2",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:            "a2_challenges",
					Anchor:          `A\.?\s*2\.?\s*(?:THEMATIC\s+CONTEXT[:\s]*)?CHALLENGES\s+TO\s+BE\s+ADDRESSED`,
					End:             `\n\s*(?:A\.?\s*3\s|B\.?\s+[A-Z]|C\.?\s+[A-Z]|PART\s+)`,
					Window:          50000,
					MinLen:          100,
					RequireSentence: true,
					AllMatches:      true,
				},
				{
					Name:            "a2_situation_problems",
					Anchor:          `A\.?\s*2\.?\s*(?:GLOBAL\s+)?(?:CURRENT\s+)?SITUATION\s+AND\s+PROBLEMS?/?CHALLENGES?`,
					End:             `\n\s*(?:A\.?\s*3\s|B\.?\s+[A-Z]|C\.?\s+[A-Z]|PART\s+)`,
					Window:          50000,
					MinLen:          100,
					RequireSentence: true,
					AllMatches:      true,
				},
				{
					Name:            "a2_problems_challenges",
					Anchor:          `A\.?\s*2\.?\s*PROBLEMS?\s+(?:AND\s+)?CHALLENGES?`,
					End:             `\n\s*(?:A\.?\s*3\s|B\.?\s+[A-Z]|C\.?\s+[A-Z]|PART\s+)`,
					Window:          50000,
					MinLen:          100,
					RequireSentence: true,
					AllMatches:      true,
				},
			},
		},
		{
			Name: "undp_situation",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:        "situation_challenges",
					Anchor:      `(?:main|major|key)\s+(?:socio-economic\s+)?challenges?\s+(?:facing|include|are)[:\s]*`,
					End:         `\n\s*(?:II\.|2\.|To\s+alleviate|In\s+response|The\s+project|Barriers?|Demand)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
					Scope:       &situationScope,
				},
				{
					Name:        "situation_barriers",
					Anchor:      `Barriers?\s+(?:for|to)\s+(?:effective\s+)?[^\n]+\n`,
					End:         `\n\s*(?:II\.|2\.|[A-Z]\.\s+|The\s+project|Demand)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
					Scope:       &situationScope,
				},
				{
					Name:        "situation_reasons",
					Anchor:      `(?:main|major|key)\s+reasons?\s+(?:for|why)[^\n]+\n`,
					End:         `\n\s*(?:II\.|2\.|[A-Z]\.\s+|The\s+project|Demand)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
					Scope:       &situationScope,
				},
				{
					Name:        "situation_constraints",
					Anchor:      `(?:main|major|key)\s+constraints?\s+(?:being|include|are)[:\s]*`,
					End:         `\n\s*(?:II\.|2\.|In\s+agriculture|\([a-z]\)|The\s+project)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
					Scope:       &situationScope,
				},
				{
					Name:        "global_challenges",
					Anchor:      `(?:main|major|key)\s+(?:socio-economic\s+)?challenges?\s+(?:facing|include|are)[:\s]*`,
					End:         `\n\s*(?:II\.|2\.|To\s+alleviate|In\s+response|The\s+project)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
				},
				{
					Name:        "global_barriers",
					Anchor:      `Barriers?\s+(?:for|to)\s+(?:effective\s+)?[^\n]+\n`,
					End:         `\n\s*(?:II\.|2\.|[A-Z]\.\s+|The\s+project)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
				},
			},
		},
		{
			Name: "numbered_challenges",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:        "numbered_challenges_section",
					Anchor:      `\d+\.?\s*\d*\.?\s*Challenges?\s+to\s+be\s+addressed\s*\n`,
					End:         `\n\s*(?:\d+\.?\s*\d*\.?\s*[A-Z][a-z]+|[A-Z]\.\s+|\d+\.0\s+)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
				},
				{
					Name:        "plain_challenges_section",
					Anchor:      `Challenges?\s+to\s+be\s+addressed\s*\n`,
					End:         `\n\s*(?:\d+\.\s*[A-Z]|[A-Z]\.\s+|II\.|2\.)`,
					EndRequired: true,
					MinLen:      100,
					AllMatches:  true,
				},
			},
		},
		{
			Name: "standalone_challenges",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:            "challenges_header",
					Anchor:          `\n\s*CHALLENGES?\s+TO\s+BE\s+ADDRESSED\s*\n`,
					End:             `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|PART\s+)`,
					Window:          30000,
					MinLen:          100,
					RequireSentence: true,
					AllMatches:      true,
				},
			},
		},
		{
			Name: "problem_statement",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:       "problem_statement_header",
					Anchor:     `\n\s*(?:Problem|Issue)s?\s+(?:Statement|Analysis|Description|Identification)\s*\n`,
					End:        `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|II\.\s+|III\.\s+)`,
					Window:     20000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "problems_addressed_header",
					Anchor:     `\n\s*(?:Key\s+)?(?:Problems?|Issues?)\s+(?:to\s+be\s+)?(?:Addressed|Identified|Tackled)\s*\n`,
					End:        `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|II\.\s+|III\.\s+)`,
					Window:     20000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "main_problems_header",
					Anchor:     `\n\s*(?:Main|Major|Key)\s+(?:Problems?|Challenges?|Issues?|Constraints?)\s*\n`,
					End:        `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|II\.\s+|III\.\s+)`,
					Window:     20000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "challenge_analysis_header",
					Anchor:     `\n\s*(?:Development\s+)?(?:Problem|Challenge)\s+(?:Analysis|Statement)\s*\n`,
					End:        `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|II\.\s+|III\.\s+)`,
					Window:     20000,
					MinLen:     100,
					AllMatches: true,
				},
				{
					Name:       "roman_problem_statement",
					Anchor:     `\n\s*[IVX]+\.?\s*Problem\s+Statement\s*\n`,
					End:        `\n\s*(?:[A-Z]\.?\s*\d|\d+\.\s+[A-Z]|[IVX]+\.\s+|II\.\s+|III\.\s+)`,
					Window:     20000,
					MinLen:     100,
					AllMatches: true,
				},
			},
		},
		{
			Name: "context_lists",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:        "challenges_facing",
					Anchor:      `(?:challenges?\s+facing\s+the\s+(?:industrial|manufacturing|SME|country)|challenges?\s+include\s*[:\n])`,
					ListCapture: true,
					MinLen:      100,
					AllMatches:  true,
				},
				{
					Name:        "key_challenges_include",
					Anchor:      `(?:key|main|major)\s+(?:challenges?|problems?|constraints?|issues?)\s+(?:include|are|identified)\s*[:\n]`,
					ListCapture: true,
					MinLen:      100,
					AllMatches:  true,
				},
				{
					Name:        "sector_faces",
					Anchor:      `(?:industries?|sector|enterprises?|SMEs?)\s+face\s+(?:the\s+following\s+)?(?:major\s+)?(?:challenges?|problems?)`,
					ListCapture: true,
					MinLen:      100,
					AllMatches:  true,
				},
			},
		},
		{
			Name: "bullet_lists",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:          "bulleted_challenges",
					Anchor:        `(?:challenges?|problems?|constraints?|issues?)\s*(?:include|are|facing)?[:\s]*\n((?:\s*[•\-\*►●]\s*[^\n]+\n?){2,})`,
					SelfContained: true,
					CaptureGroup:  0,
					MinLen:        50,
					AllMatches:    true,
				},
				{
					Name:          "listed_challenges",
					Anchor:        `(?:the\s+following|these)\s+(?:challenges?|problems?|issues?)[:\s]*\n((?:\s*[•\-\*►●\d]+[\.\)]\s*[^\n]+\n?){2,})`,
					SelfContained: true,
					CaptureGroup:  0,
					MinLen:        50,
					AllMatches:    true,
				},
			},
		},
		{
			Name: "context_section",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "a_context",
					Anchor:      `A\.?\s*CONTEXT\s*\n`,
					End:         `\n\s*(?:B\.?\s+|II\.|2\.\s+[A-Z])`,
					EndRequired: true,
					MinLen:      200,
					Keywords: []string{
						"problem", "challeng", "threat", "risk",
						"pollut", "contamin", "danger", "hazard",
					},
				},
			},
		},
		{
			Name: "development_challenge",
			Mode: GroupFirst,
			Rules: []Rule{
				{
					Name:        "numbered_development_challenge",
					Anchor:      `\d+\s+(?:THE\s+)?DEVELOPMENT\s+CHALLENGE[:\s]*\n(?:[^\n]+\n)?`,
					End:         `\n\s*(?:\d+\s+[A-Z]|[A-Z]\.\s+|PART\s+)`,
					EndRequired: true,
					MinLen:      100,
				},
				{
					Name:        "development_challenge_header",
					Anchor:      `DEVELOPMENT\s+CHALLENGE[:\s]*\n`,
					End:         `\n\s*(?:\d+\s+[A-Z]|[A-Z]\.\s+|Value\s+Chain)`,
					EndRequired: true,
					MinLen:      100,
				},
			},
		},
		{
			// Whole opening slice of a situation analysis, only when the
			// section talks about problems at all.
			Name: "situation_full",
			Mode: GroupConcat,
			Rules: []Rule{
				{
					Name:      "situation_opening",
					Anchor:    ``,
					End:       `(?:To\s+alleviate|In\s+response|The\s+project|Barriers?|Demand)`,
					ScanLimit: 5000,
					MinLen:    200,
					Scope:     &situationScope,
					Keywords: []string{
						"challeng", "problem", "constraint", "barrier",
						"difficult", "impediment", "obstacle", "issue",
						"risk", "threat",
					},
				},
			},
		},
	}
}

func defaultSectionKeywords() []string {
	return []string{
		"challeng", "problem", "constraint", "difficult",
		"impediment", "obstacle", "issue", "barrier",
	}
}

const defaultParagraphPattern = `(?:key|main|major)\s+(?:challenges?|problems?|constraints?)`

// DefaultConfig returns the built-in rule sets and fallback tuning.
func DefaultConfig() Config {
	return Config{
		Brief:            defaultBriefGroups(),
		Challenges:       defaultChallengeGroups(),
		SectionKeywords:  defaultSectionKeywords(),
		ParagraphPattern: defaultParagraphPattern,
	}
}
