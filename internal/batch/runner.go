// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/analytica/internal/calc"
	"github.com/katalvlaran/analytica/matrix"
	"github.com/katalvlaran/analytica/polynomial"
)

// Result is the outcome of one job. Index is the job's position in the input.
type Result struct {
	Index    int
	Name     string
	Kind     string
	Output   string
	Err      error
	Duration time.Duration
}

// Runner executes jobs with at most Workers in flight.
type Runner struct {
	workers int
	style   string
	logger  *slog.Logger
}

// NewRunner returns a Runner. workers < 1 is treated as 1; style selects the
// matrix rendering (calc.StyleAligned or calc.StyleCompact).
func NewRunner(workers int, style string, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{workers: workers, style: style, logger: logger}
}

// Run executes every job and returns one Result per job, in input order.
//
// # Execution Model
//
//  1. An errgroup with SetLimit(workers) bounds concurrency.
//  2. Each goroutine writes only its own results slot, so no locking is needed.
//  3. Job failures are stored in Result.Err; the goroutine still returns nil
//     so that siblings keep running.
//  4. Jobs not started before ctx is cancelled report ctx.Err().
//
// The returned error is ctx.Err() when the context ended early, nil otherwise.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		g.Go(func() error {
			res := Result{Index: i, Name: job.Name, Kind: job.Kind}
			if err := gCtx.Err(); err != nil {
				res.Err = err
				results[i] = res
				return nil
			}

			start := time.Now()
			res.Output, res.Err = r.execute(job)
			res.Duration = time.Since(start)
			results[i] = res

			if res.Err != nil {
				r.logger.Warn("job failed", "job", job.Name, "kind", job.Kind, "error", res.Err)
			} else {
				r.logger.Debug("job done", "job", job.Name, "kind", job.Kind, "duration", res.Duration)
			}

			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("batch finished", "jobs", len(jobs), "failed", failed, "workers", r.workers)

	return results, ctx.Err()
}

// execute dispatches one job by kind.
func (r *Runner) execute(job Job) (string, error) {
	if err := job.Validate(); err != nil {
		return "", err
	}

	switch job.Kind {
	case KindRoots:
		roots, err := polynomial.Solve(job.Coefficients...)
		if err != nil {
			return "", err
		}

		return calc.FormatRoots(roots), nil

	case KindDeterminant, KindInverse:
		m, err := matrix.NewDenseFromRows(job.Matrix)
		if err != nil {
			return "", err
		}
		op := "det"
		if job.Kind == KindInverse {
			op = "inv"
		}
		res, err := calc.Matrix(op, m, 0)
		if err != nil {
			return "", err
		}

		return res.Render(r.style), nil

	default: // KindComplex; Validate rejected everything else.
		args, err := calc.ParseComplexArgs(job.Operands)
		if err != nil {
			return "", err
		}
		z, err := calc.Complex(job.Op, args)
		if err != nil {
			return "", err
		}

		return z.String(), nil
	}
}
