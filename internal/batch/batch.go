// Package batch checks many identifiers at once for bulk collaborators such
// as imports and report generators.
package batch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"rutid/pkg/rut"
)

// Result is the outcome for a single input.
type Result struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

// Checker fans identifier checks out over a bounded number of goroutines.
type Checker struct {
	workers int
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a Checker. workers below 1 is treated as 1; logger and
// metrics may be nil.
func New(workers int, logger *slog.Logger, metrics *Metrics) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{workers: workers, logger: logger, metrics: metrics}
}

// Check evaluates every input and returns results in input order. It stops
// early and returns ctx's error if ctx is cancelled.
func (c *Checker) Check(ctx context.Context, inputs []string) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = CheckOne(input)
			return nil
		})
	}

	// gctx is cancelled once Wait returns, so the caller's ctx decides.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := Summarize(results)
	c.metrics.RecordSummary(s)
	c.metrics.ObserveBatchDuration(time.Since(start))

	if c.logger != nil {
		c.logger.InfoContext(ctx, "batch checked",
			"total", s.Total,
			"valid", s.Valid,
			"invalid", s.Invalid,
			"workers", c.workers,
		)
	}
	return results, nil
}

// CheckOne evaluates a single input.
func CheckOne(input string) Result {
	return Result{
		Input:     input,
		Canonical: rut.Canonicalize(input),
		Formatted: rut.Format(input),
		Valid:     rut.Validate(input),
	}
}

// Summary counts batch outcomes.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Summarize counts valid and invalid results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Valid {
			s.Valid++
		}
	}
	s.Invalid = s.Total - s.Valid
	return s
}
