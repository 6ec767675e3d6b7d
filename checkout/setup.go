// SPDX-License-Identifier: MIT

package checkout

import "github.com/katalvlaran/checkout/board"

// defaultSetupLabel is the setup target when no favourite triple is set.
const defaultSetupLabel = "T20"

// Setup builds a greedy scoring sequence for when no finish fits the budget.
//
// Each dart aims at the first favourite triple (T20 when none is set or the
// label is unknown). If that would leave less than 2, the dart instead takes
// the highest-value throw that leaves at least 2, the earliest in catalog
// order on ties. Planning stops when the darts run out or the score drops to
// 2 or below.
//
// The sequence never busts; it is not guaranteed to score the most points.
// Returns nil when score ≤ 2 or dartsLeft ≤ 0.
func Setup(score, dartsLeft int, prefs Preferences) []board.Throw {
	var out []board.Throw
	for ; dartsLeft > 0 && score > minRemaining; dartsLeft-- {
		t, ok := setupThrow(score, prefs)
		if !ok {
			break
		}
		out = append(out, t)
		score -= t.Value
	}
	return out
}

// setupThrow picks the throw for one setup dart at the given score.
func setupThrow(score int, prefs Preferences) (board.Throw, bool) {
	label := defaultSetupLabel
	if len(prefs.FavoriteTriples) > 0 {
		label = prefs.FavoriteTriples[0]
	}
	t, err := board.Lookup(label)
	if err != nil {
		t = board.MustLookup(defaultSetupLabel)
	}
	if score-t.Value >= minRemaining {
		return t, true
	}
	return highestLeaving(score)
}

// highestLeaving returns the highest-value throw that leaves at least 2.
func highestLeaving(score int) (board.Throw, bool) {
	var (
		best  board.Throw
		found bool
	)
	board.Each(func(t board.Throw) bool {
		if score-t.Value >= minRemaining && (!found || t.Value > best.Value) {
			best, found = t, true
		}
		return true
	})
	return best, found
}
