// SPDX-License-Identifier: MIT

package checkout

import (
	"fmt"

	"github.com/katalvlaran/checkout/board"
)

// Fixed messages for results without a finishing path.
const (
	msgNoAnalysis = "No analysis possible."
	msgTooHigh    = "Score too high."
	msgTooLow     = "Score too low."
	msgBogey      = "Bogey number - no finish possible."
	msgBudget     = "Dart budget must be between 1 and 3."
	msgNoPath     = "No valid path found."
	msgSetup      = "No finish possible with the remaining darts. Use these darts for an optimal setup."
	msgInternal   = "Error."
)

// Explain narrates a chosen finishing path for score.
// It returns non-empty text for every input.
func Explain(path []board.Throw, score int, prefs Preferences) string {
	if len(path) == 0 {
		return msgNoAnalysis
	}
	first, last := path[0], path[len(path)-1]

	switch {
	case score == MaxScore:
		return "The 170 finish is the highest checkout in darts.\n" +
			"Only the route via T20, T20 and the bullseye succeeds. No other double can be reached."
	case score >= 130:
		return fmt.Sprintf("A high finish demands maximum precision. The route via %s is the safest way "+
			"to leave yourself a double with three darts.", first.Label)
	case len(path) == 1:
		if prefs.IsFavoriteDouble(last.Label) {
			return "You are standing directly on a checkout. Right on your favourite double!"
		}
		return "You are standing directly on a checkout. Aim cleanly at the double segment."
	case len(path) == 2 && first.Kind == board.Single:
		return fmt.Sprintf("A classic two-dart route. Use the big single segment of the %d to leave yourself %s.",
			first.Zone, last.Label)
	case prefs.IsFavoriteDouble(last.Label):
		return fmt.Sprintf("This route is built to bring you to your preferred double %s. "+
			"Focus on %s with the first dart.", last.Label, first.Label)
	default:
		return fmt.Sprintf("A solid route to the checkout on %s. The first darts set it up.", last.Label)
	}
}

// describeMissFinish narrates a recovery that still finishes.
func describeMissFinish(ms MissScenario, prefs Preferences) string {
	target := ms.RemainingPath[len(ms.RemainingPath)-1].Label
	lead, double := "Plan B:", "the double"
	if prefs.IsFavoriteDouble(target) {
		lead, double = "No problem!", "your favourite double"
	}
	return fmt.Sprintf("SCENARIO: %s INSTEAD OF %s\n\n%s Correct via %s. That leaves you %s %s at the end.",
		ms.Actual.Label, ms.Intended.Label, lead, ms.RemainingPath[0].Label, double, target)
}

// describeMissSetup narrates a recovery that can only set up the next visit.
func describeMissSetup(ms MissScenario, dartsLeft int) string {
	darts := "two darts"
	if dartsLeft == 1 {
		darts = "one dart"
	}
	aim := "high triples"
	if len(ms.RemainingPath) > 0 {
		aim = ms.RemainingPath[0].Label
	}
	return fmt.Sprintf("SCENARIO: %s INSTEAD OF %s\n\n"+
		"After hitting the single %d, %d points remain. A finish is no longer possible with %s.\n\n"+
		"Use the remaining darts for a setup on %s to leave the lowest score for the next visit.",
		ms.Actual.Label, ms.Intended.Label, ms.Intended.Zone, ms.ScoreAfterMiss, darts, aim)
}
