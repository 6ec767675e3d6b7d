// SPDX-License-Identifier: MIT

package checkout

import "github.com/katalvlaran/checkout/board"

// PlanMiss computes Plan B for path: the best continuation if its opening
// triple lands in the single of the same number instead.
//
// It reports false when path is empty, opens with anything but a triple, or
// has no darts left after the first throw. Otherwise the recovery is searched
// at exactly the number of darts the path had left; if no finish exists
// there, a Setup sequence is returned with IsSetup set.
//
// path is not modified.
func PlanMiss(path []Step, prefs Preferences) (MissScenario, bool) {
	if len(path) == 0 {
		return MissScenario{}, false
	}
	first := path[0]
	if first.Kind != board.Triple {
		return MissScenario{}, false
	}
	actual, err := board.SingleOf(first.Zone)
	if err != nil {
		return MissScenario{}, false
	}
	dartsLeft := len(path) - 1
	if dartsLeft < 1 {
		return MissScenario{}, false
	}

	start := first.Remaining + first.Value
	after := start - actual.Value

	ms := MissScenario{
		Intended:       first.Throw,
		Actual:         actual,
		ScoreAfterMiss: after,
	}

	paths := searchPaths(after, dartsLeft)
	if len(paths) == 0 {
		ms.IsSetup = true
		ms.RemainingPath = Annotate(after, Setup(after, dartsLeft, prefs))
		ms.Description = describeMissSetup(ms, dartsLeft)
		return ms, true
	}

	ms.RemainingPath = Annotate(after, Order(paths, prefs)[0])
	ms.Description = describeMissFinish(ms, prefs)
	return ms, true
}
