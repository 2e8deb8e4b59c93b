package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrNoDocuments is returned when the input directory contains no files
// matching the configured pattern.
var ErrNoDocuments = errors.New("no documents matched the input pattern")

// Runner fans a directory of documents out over a worker pool. Records
// come back in sorted filename order regardless of completion order.
type Runner struct {
	processor *Processor
	pattern   string
	workers   int
	verbose   bool
	logger    *slog.Logger
}

// NewRunner creates a runner over the given processor. Pattern is a glob
// matched against file names in the input directory; workers caps the
// number of documents processed at once.
func NewRunner(processor *Processor, pattern string, workers int, verbose bool, logger *slog.Logger) (*Runner, error) {
	if pattern == "" {
		return nil, errors.New("file pattern must not be empty")
	}
	if workers < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", workers)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		processor: processor,
		pattern:   pattern,
		workers:   workers,
		verbose:   verbose,
		logger:    logger,
	}, nil
}

// Run processes every matching file under dir. Per-document failures are
// recorded in the result slice; only pattern errors or context
// cancellation abort the batch.
func (r *Runner) Run(ctx context.Context, dir string) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, r.pattern))
	if err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", r.pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, filepath.Join(dir, r.pattern))
	}
	sort.Strings(paths)

	r.logger.Info("batch.run.start", "dir", dir, "files", len(paths), "workers", r.workers)

	records := make([]Record, len(paths))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			records[i] = r.processor.ProcessFile(path)

			n := done.Add(1)
			if r.verbose || n%100 == 0 {
				r.logger.Info("batch.run.progress",
					"done", n,
					"total", len(paths),
					"file", filepath.Base(path),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(records)
	r.logger.Info("batch.run.complete",
		"total", summary.Total,
		"with_brief", summary.WithBrief,
		"with_challenges", summary.WithChallenges,
		"errors", summary.Errors,
	)
	return records, nil
}
