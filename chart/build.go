// SPDX-License-Identifier: MIT

package chart

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/checkout/checkout"
)

const rowCount = checkout.MaxScore - checkout.MinScore + 1

// Build solves every score concurrently and returns the chart.
// It returns ErrWorkers for a worker limit below 1, or the context error if
// ctx is cancelled before every row is solved.
func Build(ctx context.Context, prefs checkout.Preferences, opts ...Option) (*Chart, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, ErrWorkers
	}

	rows := make([]Row, rowCount)
	solveOpts := cfg.solveOptions()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range rows {
		score := checkout.MinScore + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[score-checkout.MinScore] = Row{Score: score, Result: checkout.Solve(score, prefs, solveOpts...)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Chart{Preferences: prefs, MaxDarts: cfg.MaxDarts, Rows: rows}, nil
}

// BuildSequential solves every score in order on the calling goroutine.
// The Workers option is ignored.
func BuildSequential(prefs checkout.Preferences, opts ...Option) *Chart {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	solveOpts := cfg.solveOptions()

	rows := make([]Row, 0, rowCount)
	for score := checkout.MinScore; score <= checkout.MaxScore; score++ {
		rows = append(rows, Row{Score: score, Result: checkout.Solve(score, prefs, solveOpts...)})
	}
	return &Chart{Preferences: prefs, MaxDarts: cfg.MaxDarts, Rows: rows}
}
