package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline reads and evaluates individual files.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery (sorted path) order regardless of
// which worker finishes first. Per-file read failures are recorded on the
// outcome; only discovery failures and cancellation are returned as errors.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return Collect(), nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger := logging.FromContext(ctx)
	logger.Debug("running", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	// Each worker owns its own slot, so no locking is needed.
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err //nolint:wrapcheck // Wrapped once below.
			}
			outcomes[idx] = r.process(groupCtx, path)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	return Collect(outcomes...), nil
}

func (r *Runner) process(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	pr, err := r.Pipeline.ProcessFile(ctx, path)
	if err != nil {
		logging.FromContext(ctx).Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
		outcome.Error = err
		return outcome
	}

	outcome.Result = pr
	return outcome
}
