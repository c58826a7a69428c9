// Package runner checks regression cases against the puzzle solvers on a
// bounded pool of workers.
package runner

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/advent-go/advent/pkg/puzzle"
	"github.com/advent-go/advent/pkg/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds runner settings.
type Config struct {
	Workers int         // defaults to runtime.NumCPU()
	Logger  *zap.Logger // defaults to a no-op logger
}

// Runner solves cases and compares the answers.
type Runner struct {
	registry *puzzle.Registry
	workers  int
	logger   *zap.Logger
}

// New creates a runner over registry.
func New(registry *puzzle.Registry, cfg Config) *Runner {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, workers: workers, logger: logger}
}

// Run solves every case and returns one outcome per case, in input order.
// Solver failures are recorded on the outcome; only cancellation of ctx
// makes Run itself fail.
func (r *Runner) Run(ctx context.Context, cases []types.Case) ([]types.Outcome, error) {
	outcomes := make([]types.Outcome, len(cases))

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	indexCh := make(chan int, r.workers*2)

	// Feed case indexes to workers
	g.Go(func() error {
		defer close(indexCh)
		for i := range cases {
			select {
			case indexCh <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for i := range indexCh {
				if err := ctx.Err(); err != nil {
					return err
				}
				outcomes[i] = r.runCase(cases[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := origCtx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (r *Runner) runCase(c types.Case) types.Outcome {
	start := time.Now()
	got, err := r.registry.Solve(c.Day, c.Part, strings.NewReader(c.Input))
	o := types.NewOutcome(c, got, err, time.Since(start))

	fields := []zap.Field{
		zap.String("case", c.Name),
		zap.Stringer("day", c.Day),
		zap.Int("part", int(c.Part)),
		zap.Int64("got", got),
		zap.Int64("want", c.Want),
		zap.Duration("elapsed", o.Duration),
	}
	switch o.Status {
	case types.StatusPass:
		r.logger.Debug("case passed", fields...)
	case types.StatusFail:
		r.logger.Warn("case failed", fields...)
	default:
		r.logger.Warn("case errored", append(fields, zap.Error(err))...)
	}
	return o
}

// Summary counts outcomes by status.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []types.Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case types.StatusPass:
			s.Passed++
		case types.StatusFail:
			s.Failed++
		default:
			s.Errored++
		}
	}
	return s
}

// OK reports whether every case passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}
