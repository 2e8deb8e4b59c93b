package batch

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tcs-research/prodoc-extract/internal/extract"
	"github.com/tcs-research/prodoc-extract/internal/projectid"
	"github.com/tcs-research/prodoc-extract/internal/textnorm"
)

// Processor turns one document into an output record. It is safe for
// concurrent use.
type Processor struct {
	normalizer *textnorm.Normalizer
	engine     *extract.Engine
	logger     *slog.Logger
}

// NewProcessor creates a processor around the given rule engine. A nil
// logger falls back to slog.Default.
func NewProcessor(engine *extract.Engine, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		normalizer: textnorm.New(),
		engine:     engine,
		logger:     logger,
	}
}

// ProcessFile reads, normalizes, and extracts one document. Read failures
// are reported inside the record so a batch run never stops on a single
// bad file.
func (p *Processor) ProcessFile(path string) Record {
	id := projectid.Resolve(path)

	data, err := os.ReadFile(path)
	if err != nil {
		rec := Record{ProjectID: id}
		if os.IsNotExist(err) {
			rec.Error = fmt.Sprintf("File not found: %s", path)
		} else {
			rec.Error = fmt.Sprintf("Failed to read file: %v", err)
		}
		p.logger.Warn("batch.process.unreadable", "project_id", id, "path", path, "error", err)
		return rec
	}

	// Source files come from many converters and a few carry byte ranges
	// that are not valid UTF-8. Those bytes carry no rule-relevant text.
	raw := strings.ToValidUTF8(string(data), "")
	return p.ProcessText(path, raw)
}

// ProcessText runs normalization and both extraction cascades over raw
// document text. The path is used only to derive the project identifier.
func (p *Processor) ProcessText(path, raw string) Record {
	id := projectid.Resolve(path)
	doc := p.normalizer.Normalize(raw)

	brief := p.engine.ExtractBrief(doc)
	challenges := p.engine.ExtractChallenges(doc)

	p.logger.Debug("batch.process.complete",
		"project_id", id,
		"brief_group", brief.Group,
		"brief_len", len(brief.Text),
		"challenges_group", challenges.Group,
		"challenges_len", len(challenges.Text),
	)

	return Record{
		ProjectID:  id,
		Brief:      optional(brief.Text),
		Challenges: optional(challenges.Text),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
