// Package convert turns source PDF project documents into the plain-text
// corpus the extraction pipeline consumes.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxFileSize bounds source PDFs at 100MB.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Dispositions for one source PDF.
const (
	DispositionText    = "text"    // text layer extracted and written
	DispositionScanned = "scanned" // valid PDF without a usable text layer
	DispositionFailed  = "failed"  // unreadable or invalid PDF
)

// ConversionResult records the outcome for one source PDF.
type ConversionResult struct {
	Path        string
	OutputPath  string
	Pages       int
	Chars       int
	Disposition string
}

// Stats summarizes a conversion run by disposition.
type Stats struct {
	Found     int
	Converted int
	Scanned   int
	Failed    int
}

// Converter validates PDFs and writes their text layer to an output
// directory, one .txt per source document.
type Converter struct {
	validator *Validator
	extractor *Extractor
	logger    *slog.Logger
}

// NewConverter creates a converter with the given source size limit. A nil
// logger falls back to slog.Default.
func NewConverter(maxFileSize int64, logger *slog.Logger) *Converter {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		validator: NewValidator(maxFileSize),
		extractor: NewExtractor(),
		logger:    logger,
	}
}

// ConvertFile converts one PDF, writing {stem}.txt into outputDir when the
// file carries a text layer. PDF-level problems land in the disposition;
// the error return is reserved for output write failures.
func (c *Converter) ConvertFile(path, outputDir string) (ConversionResult, error) {
	res := ConversionResult{Path: path, Disposition: DispositionFailed}

	valid, err := c.validator.ValidateFile(path)
	if err != nil {
		return res, err
	}
	if !valid.Valid {
		c.logger.Warn("convert.pdf.failed", "file", filepath.Base(path), "reason", valid.Message)
		return res, nil
	}
	res.Pages = valid.Pages

	text, err := c.extractor.ExtractText(path)
	if errors.Is(err, ErrNoTextLayer) {
		res.Disposition = DispositionScanned
		c.logger.Warn("convert.pdf.scanned", "file", filepath.Base(path), "pages", res.Pages)
		return res, nil
	}
	if err != nil {
		c.logger.Warn("convert.pdf.failed", "file", filepath.Base(path), "error", err)
		return res, nil
	}

	outPath := filepath.Join(outputDir, txtName(path))
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	res.OutputPath = outPath
	res.Chars = len(text)
	res.Disposition = DispositionText
	c.logger.Debug("convert.pdf.converted",
		"file", filepath.Base(path), "pages", res.Pages, "chars", res.Chars)
	return res, nil
}

// Run converts every PDF under inputDir into a .txt file under outputDir.
// Invalid and scanned files are counted, and neither stops the run; only
// context cancellation or an unusable directory does.
func (c *Converter) Run(ctx context.Context, inputDir, outputDir string) (Stats, error) {
	var stats Stats

	paths, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
	if err != nil {
		return stats, fmt.Errorf("failed to list input directory: %w", err)
	}
	if len(paths) == 0 {
		return stats, fmt.Errorf("no PDF files found in %s", inputDir)
	}
	sort.Strings(paths)
	stats.Found = len(paths)

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return stats, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	c.logger.Info("convert.run.start", "dir", inputDir, "files", len(paths))

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		res, err := c.ConvertFile(path, outputDir)
		if err != nil {
			return stats, err
		}
		switch res.Disposition {
		case DispositionText:
			stats.Converted++
		case DispositionScanned:
			stats.Scanned++
		default:
			stats.Failed++
		}
	}

	c.logger.Info("convert.run.complete",
		"found", stats.Found,
		"converted", stats.Converted,
		"scanned", stats.Scanned,
		"failed", stats.Failed,
	)
	return stats, nil
}

// txtName maps a source PDF name to its text corpus name.
func txtName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
}
