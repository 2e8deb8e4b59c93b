// Package batch runs the extraction pipeline over document collections and
// shapes the output records.
package batch

// Record is one output row. The two field pointers serialize as explicit
// nulls when extraction found nothing; Error is present only for documents
// that could not be read at all.
type Record struct {
	ProjectID  string  `json:"project_id"`
	Brief      *string `json:"brief_description"`
	Challenges *string `json:"challenges_problem_statements"`
	Error      string  `json:"error,omitempty"`
}

// Summary aggregates extraction coverage over a batch.
type Summary struct {
	Total          int `json:"total"`
	WithBrief      int `json:"with_brief"`
	WithChallenges int `json:"with_challenges"`
	WithBoth       int `json:"with_both"`
	Errors         int `json:"errors"`
}

// Summarize counts field coverage across records.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Error != "" {
			s.Errors++
			continue
		}
		if r.Brief != nil {
			s.WithBrief++
		}
		if r.Challenges != nil {
			s.WithChallenges++
		}
		if r.Brief != nil && r.Challenges != nil {
			s.WithBoth++
		}
	}
	return s
}

// Percent renders n as a share of the batch total, in percent.
func (s Summary) Percent(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.Total)
}
