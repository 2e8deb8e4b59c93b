package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tcs-research/prodoc-extract/internal/batch"
)

// Analysis buckets records by which extracted fields are missing. The
// buckets are exclusive: unreadable documents land in Errors, every other
// record lands in exactly one missing bucket, or in none when both fields
// are present.
type Analysis struct {
	Total                 int
	MissingBriefOnly      []string
	MissingChallengesOnly []string
	MissingBoth           []string
	Errors                []string
}

// Analyze inspects every record and collects the project identifiers with
// missing fields. An empty string counts as missing, matching a null.
func Analyze(records []batch.Record) Analysis {
	a := Analysis{Total: len(records)}
	for _, rec := range records {
		if rec.Error != "" {
			a.Errors = append(a.Errors, rec.ProjectID)
			continue
		}
		hasBrief := rec.Brief != nil && *rec.Brief != ""
		hasChallenges := rec.Challenges != nil && *rec.Challenges != ""

		switch {
		case !hasBrief && !hasChallenges:
			a.MissingBoth = append(a.MissingBoth, rec.ProjectID)
		case !hasBrief:
			a.MissingBriefOnly = append(a.MissingBriefOnly, rec.ProjectID)
		case !hasChallenges:
			a.MissingChallengesOnly = append(a.MissingChallengesOnly, rec.ProjectID)
		}
	}
	sortIDs(a.MissingBriefOnly)
	sortIDs(a.MissingChallengesOnly)
	sortIDs(a.MissingBoth)
	sortIDs(a.Errors)
	return a
}

// MissingBriefTotal counts every record without a brief description,
// unreadable documents included.
func (a Analysis) MissingBriefTotal() int {
	return len(a.MissingBriefOnly) + len(a.MissingBoth) + len(a.Errors)
}

// MissingChallengesTotal counts every record without challenge statements,
// unreadable documents included.
func (a Analysis) MissingChallengesTotal() int {
	return len(a.MissingChallengesOnly) + len(a.MissingBoth) + len(a.Errors)
}

// AllMissing returns every project identifier with at least one missing
// field, in numeric order.
func (a Analysis) AllMissing() []string {
	all := make([]string, 0,
		len(a.MissingBriefOnly)+len(a.MissingChallengesOnly)+len(a.MissingBoth)+len(a.Errors))
	all = append(all, a.MissingBriefOnly...)
	all = append(all, a.MissingChallengesOnly...)
	all = append(all, a.MissingBoth...)
	all = append(all, a.Errors...)
	sortIDs(all)
	return all
}

// Format renders the analysis as a review text report.
func (a Analysis) Format() string {
	rule := strings.Repeat("=", 70)
	line := strings.Repeat("-", 70)

	var b strings.Builder
	b.WriteString("MISSING FIELD ANALYSIS\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Total documents: %d\n\n", a.Total)
	b.WriteString("SUMMARY\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Missing brief_description only: %d\n", len(a.MissingBriefOnly))
	fmt.Fprintf(&b, "Missing challenges_problem_statements only: %d\n", len(a.MissingChallengesOnly))
	fmt.Fprintf(&b, "Missing both: %d\n", len(a.MissingBoth))
	fmt.Fprintf(&b, "Unreadable documents: %d\n", len(a.Errors))
	fmt.Fprintf(&b, "\nTotal with missing brief_description: %d\n", a.MissingBriefTotal())
	fmt.Fprintf(&b, "Total with missing challenges_problem_statements: %d\n", a.MissingChallengesTotal())

	writeBucket := func(title string, ids []string) {
		if len(ids) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s (%d projects):\n", title, len(ids))
		b.WriteString(line + "\n")
		for _, id := range ids {
			b.WriteString(id + "\n")
		}
	}
	writeBucket("1. Missing brief_description only", a.MissingBriefOnly)
	writeBucket("2. Missing challenges_problem_statements only", a.MissingChallengesOnly)
	writeBucket("3. Missing both", a.MissingBoth)
	writeBucket("4. Unreadable documents", a.Errors)

	if all := a.AllMissing(); len(all) > 0 {
		fmt.Fprintf(&b, "\n5. All project IDs with missing values (total: %d):\n", len(all))
		b.WriteString(line + "\n")
		for _, id := range all {
			b.WriteString(id + "\n")
		}
	}
	return b.String()
}

// sortIDs orders project identifiers numerically; identifiers that are not
// plain numbers sort first.
func sortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return idKey(ids[i]) < idKey(ids[j])
	})
}

func idKey(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
