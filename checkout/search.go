// SPDX-License-Identifier: MIT

package checkout

import "github.com/katalvlaran/checkout/board"

// Search returns every finishing path of exactly dartsLeft throws for target.
//
// Contract:
//   - dartsLeft must be 1..3 and target at least 2; otherwise the result is nil.
//   - Every non-final throw leaves at least 2 points, and the final throw is
//     the finisher (a double or Bull) worth exactly what is left.
//   - Paths are emitted in catalog order of their first throw, then second;
//     no ranking is applied.
//
// Each returned path is a freshly allocated slice.
//
// Complexity: O(62^(dartsLeft−1)) time.
func Search(target, dartsLeft int) [][]board.Throw {
	if dartsLeft < 1 || dartsLeft > MaxDarts || target < minRemaining {
		return nil
	}
	return search(target, dartsLeft, nil)
}

// search extends prefix by every legal throw for the remaining darts.
func search(target, dartsLeft int, prefix []board.Throw) [][]board.Throw {
	if dartsLeft == 1 {
		f, ok := board.FinishFor(target)
		if !ok {
			return nil
		}
		return [][]board.Throw{extend(prefix, f)}
	}

	// Reserve at least D1 for the darts that follow.
	maxValue := target - minRemaining
	if maxValue <= 0 {
		return nil
	}

	var paths [][]board.Throw
	board.Each(func(t board.Throw) bool {
		if t.Value <= maxValue {
			paths = append(paths, search(target-t.Value, dartsLeft-1, extend(prefix, t))...)
		}
		return true
	})
	return paths
}

// extend returns a new slice holding prefix followed by t.
func extend(prefix []board.Throw, t board.Throw) []board.Throw {
	out := make([]board.Throw, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, t)
}

// Annotate converts throws into Steps, recording the score left after each
// throw starting from start.
func Annotate(start int, throws []board.Throw) []Step {
	steps := make([]Step, len(throws))
	rem := start
	for i, t := range throws {
		rem -= t.Value
		steps[i] = Step{Throw: t, Remaining: rem}
	}
	return steps
}
