// SPDX-License-Identifier: MIT

package checkout

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/checkout/board"
)

// searchPaths is the path enumerator used by Solve and PlanMiss.
// Tests replace it through export_test.go.
var searchPaths = Search

// Solve returns the best checkout for score under prefs.
//
// Solve is total: it never panics and never returns an error. Every failure
// is reported in the Result (Impossible, Explanation, Reason).
//
// Steps (in order):
//  1. Reject scores outside [2, 170] (ErrOutOfRange) and bogey numbers
//     (ErrBogeyNumber), then budgets outside [1, 3] (ErrDartBudget).
//  2. Search lengths 1..MaxDarts and keep the first length with any path.
//  3. No path: fall back to Setup (Reason ErrNoFinish, IsSetup), or report
//     impossible if Setup yields nothing.
//  4. Rank, take the best, annotate remainders, attach Plan B when the
//     budget is at least 2, and narrate.
func Solve(score int, prefs Preferences, opts ...Option) (res Result) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		if r := recover(); r != nil {
			err := eris.Wrapf(ErrInternal, "solving %d with %d darts: %v", score, cfg.MaxDarts, r)
			if cfg.Logger != nil {
				cfg.Logger.Error("checkout engine failure", "score", score, "err", eris.ToString(err, true))
			}
			res = impossible(score, ErrInternal, msgInternal)
		}
	}()

	return solve(score, prefs, cfg)
}

func solve(score int, prefs Preferences, cfg Options) Result {
	switch {
	case score > MaxScore:
		return impossible(score, ErrOutOfRange, msgTooHigh)
	case score < MinScore:
		return impossible(score, ErrOutOfRange, msgTooLow)
	case board.IsBogey(score):
		return impossible(score, ErrBogeyNumber, msgBogey)
	case cfg.MaxDarts < 1 || cfg.MaxDarts > MaxDarts:
		return impossible(score, ErrDartBudget, msgBudget)
	}

	var paths [][]board.Throw
	for d := 1; d <= cfg.MaxDarts; d++ {
		if paths = searchPaths(score, d); len(paths) > 0 {
			break
		}
	}

	if len(paths) == 0 {
		setup := Setup(score, cfg.MaxDarts, prefs)
		if len(setup) == 0 {
			return impossible(score, ErrNoFinish, msgNoPath)
		}
		steps := Annotate(score, setup)
		return Result{
			Score:         score,
			Path:          steps,
			Explanation:   msgSetup,
			IsSetup:       true,
			MissScenarios: []MissScenario{},
			DartsUsed:     len(steps),
			Reason:        ErrNoFinish,
		}
	}

	best := Order(paths, prefs)[0]
	steps := Annotate(score, best)

	scenarios := []MissScenario{}
	if cfg.MaxDarts >= 2 {
		if ms, ok := PlanMiss(steps, prefs); ok {
			scenarios = append(scenarios, ms)
		}
	}

	return Result{
		Score:         score,
		Path:          steps,
		Explanation:   Explain(best, score, prefs),
		MissScenarios: scenarios,
		DartsUsed:     len(steps),
	}
}

// impossible builds a result without a path.
func impossible(score int, reason error, msg string) Result {
	return Result{
		Score:         score,
		Path:          []Step{},
		Explanation:   msg,
		Impossible:    true,
		MissScenarios: []MissScenario{},
		DartsUsed:     0,
		Reason:        reason,
	}
}
