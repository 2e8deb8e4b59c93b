// Package report combines stored extraction results into review artifacts:
// a spreadsheet of all records and an analysis of missing fields.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/tcs-research/prodoc-extract/internal/batch"
)

// Reporter is a tiny façade over stored results that produces the combined
// workbook and the missing-field analysis.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter creates a reporter. A nil logger falls back to slog.Default.
func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{logger: logger}
}

// Load reads extraction records from a results file, or merges every *.json
// file in a results directory. Unreadable files are skipped with a warning;
// only an empty outcome is an error.
func (r *Reporter) Load(path string) ([]batch.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access results path %s: %w", path, err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = filepath.Glob(filepath.Join(path, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list results directory: %w", err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no JSON files found in %s", path)
		}
		sort.Strings(paths)
	}

	var all []batch.Record
	for _, p := range paths {
		records, err := readRecords(p)
		if err != nil {
			r.logger.Warn("report.load.skipped", "file", filepath.Base(p), "error", err)
			continue
		}
		all = append(all, records...)
		r.logger.Debug("report.load.file", "file", filepath.Base(p), "records", len(records))
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no records found in %s", path)
	}
	return all, nil
}

// readRecords parses one results file. Files hold either a record array or
// a single record object.
func readRecords(path string) ([]batch.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []batch.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single batch.Record
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []batch.Record{single}, nil
}
