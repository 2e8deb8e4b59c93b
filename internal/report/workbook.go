package report

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tcs-research/prodoc-extract/internal/batch"
)

const (
	sheetName = "Results"

	// Column widths track the widest cell, with headroom, up to this cap.
	maxColWidth = 50
	colPadding  = 2
)

var headers = []string{
	"project_id",
	"brief_description",
	"challenges_problem_statements",
	"error",
}

// WriteWorkbook writes all records to an XLSX workbook at path, one row per
// record under a header row.
func (r *Reporter) WriteWorkbook(path string, records []batch.Record) error {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(sheetName); err == nil {
		f.SetActiveSheet(index)
	}
	_ = f.DeleteSheet("Sheet1")

	widths := make([]int, len(headers))
	write := func(col, row int, v string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if n := utf8.RuneCountInString(v); n > widths[col-1] {
			widths[col-1] = n
		}
		return f.SetCellValue(sheetName, cell, v)
	}

	for i, h := range headers {
		if err := write(i+1, 1, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, rec := range records {
		row := i + 2
		cells := []string{
			rec.ProjectID,
			stringOrEmpty(rec.Brief),
			stringOrEmpty(rec.Challenges),
			rec.Error,
		}
		for col, v := range cells {
			if err := write(col+1, row, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	for i := range headers {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := widths[i] + colPadding
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	r.logger.Info("report.xlsx.ok",
		"path", path,
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
