package descriptions

import (
	"sort"
	"strings"
)

// Comprehensive tool descriptions with practical examples and use cases

const (
	NormalizeTextDescription = `Repair raw converter output before extraction: page noise, OCR artifacts, whitespace.

**When to use:** Text pulled from a PDF carries page numbers, "P a g e" footers, split words, or systematically doubled letters.

**Why it's useful:** The extraction rules assume clean paragraph structure; normalizing first is the difference between a match and a miss on converter-damaged documents.

**Examples:**
• Clean one document: "Normalize the text of 140337_prodoc.txt before inspecting its sections"
• Diagnose a miss: "Normalize this text to see what the extractor actually scans"

**Common workflows:**
1. Diagnosis: Normalize text → Compare against raw → Spot converter damage
2. Manual pipeline: Normalize → extract_fields → Review field provenance

**Best practices:** extract_fields and process_directory normalize internally; call this directly only to inspect or debug the repair step.`

	ResolveProjectIDDescription = `Derive the project identifier from a document filename.

**When to use:** Need the project ID a result record will carry, or want to check how an unconventional filename resolves.

**Why it's useful:** Corpus files follow the "<id>_<title>.txt" convention, but decades of archives also hold bare IDs, extra underscores, and renamed files; this applies the same resolution rules the batch pipeline uses.

**Examples:**
• Conventional name: "Resolve 140337_Project Document.txt"
• Unconventional name: "Resolve scanned-final-v2.txt to see the fallback identifier"

**Common workflows:**
1. Record lookup: Resolve filename → Find record in results JSON → Review fields

**Best practices:** Pass the filename or full path exactly as it appears on disk; resolution is purely lexical and never reads the file.`

	ExtractFieldsDescription = `Run both extraction cascades over one document's text and report the fields with their provenance.

**When to use:** Need the brief description and challenges/problem statements from a single document, or want to know which rule group produced (or failed to produce) a field.

**Why it's useful:** Shows not just the extracted text but the matched rule group, the individual rules that captured text, and how many groups were tried, which is what you need to tune rule overrides.

**Examples:**
• Single document: "Extract fields from this project document text"
• Rule debugging: "Extract fields and tell me which group matched the challenges section"

**Common workflows:**
1. Spot check: Extract fields → Verify text against the source document
2. Rule tuning: Extract fields → Note the group that matched or fell through → Adjust the rules override file

**Best practices:** Provide the filename argument when you have it so the project ID in the response matches the batch output.`

	ProcessDirectoryDescription = `Process every matching document in a directory and summarize extraction coverage.

**When to use:** Need results for a whole corpus directory, or a coverage summary after changing rules.

**Why it's useful:** Runs the same concurrent pipeline as the command line tool: deterministic record order, per-document error capture, and a summary of how many documents yielded each field.

**Examples:**
• Full corpus: "Process /data/text and save results to project_info.json"
• Coverage check: "Process the sample directory and report how many briefs were found"

**Common workflows:**
1. Batch run: Process directory → Save results → Build the review workbook
2. Rule iteration: Adjust overrides → Process a sample directory → Compare coverage

**Best practices:** Unreadable documents become error records instead of stopping the run; check the summary's error count.`

	ServerInfoDescription = `Get server information, available tools, configuration, and usage guidance.

**When to use:** Starting a session against this server, or unsure which tool fits a task.

**Why it's useful:** Lists every tool with its purpose plus the configured input directory, worker count, and version in one call.

**Common workflows:**
1. Orientation: Get server info → Pick the right tool → Proceed with the task

**Best practices:** Call once at the start of a session; the configuration it reports does not change while the server runs.`
)

// ServerUsageGuidance summarizes how the tools combine into workflows.
const ServerUsageGuidance = `Usage Guidance:
• For one document: pass its text to extract_fields; the response carries field text and rule provenance.
• For a corpus: process_directory runs the full pipeline and can save the results JSON for the reporting tools.
• When a field comes back null: normalize_text shows what the rules actually scanned, and the provenance in extract_fields shows where the cascade stopped.
• Project identifiers come from filenames; resolve_project_id shows the mapping for any name.`

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"normalize_text":     NormalizeTextDescription,
	"resolve_project_id": ResolveProjectIDDescription,
	"extract_fields":     ExtractFieldsDescription,
	"process_directory":  ProcessDirectoryDescription,
	"server_info":        ServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns all tool names in stable order
func GetAllToolNames() []string {
	names := make([]string, 0, len(ToolDescriptions))
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Headline returns the first line of a tool's description, suitable for
// compact tool listings.
func Headline(toolName string) string {
	desc := GetToolDescription(toolName)
	if line, _, found := strings.Cut(desc, "\n"); found {
		return line
	}
	return desc
}
