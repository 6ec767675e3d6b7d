// SPDX-License-Identifier: MIT

package checkout

import "github.com/katalvlaran/checkout/board"

const (
	// MinScore is the lowest score that can be checked out (D1).
	MinScore = 2
	// MaxScore is the highest score that can be checked out (T20 T20 Bull).
	MaxScore = 170
	// MaxDarts is the number of darts in one visit.
	MaxDarts = 3

	// minRemaining is the smallest legal non-zero remainder; 1 is a bust.
	minRemaining = 2
)

// Step is a throw annotated with the score left immediately after it.
type Step struct {
	board.Throw
	Remaining int `json:"remaining"`
}

// MissScenario is the recovery plan for an opening triple that lands in the
// single of the same number.
//
// Intended is always a Triple and Actual the Single of the same zone.
// RemainingPath starts from ScoreAfterMiss and uses the darts the original
// path had left after its first throw. When no finish fits, IsSetup is true
// and RemainingPath is a scoring setup.
type MissScenario struct {
	Intended       board.Throw `json:"intended"`
	Actual         board.Throw `json:"actual"`
	ScoreAfterMiss int         `json:"scoreAfterMiss"`
	RemainingPath  []Step      `json:"remainingPath"`
	Description    string      `json:"description"`
	IsSetup        bool        `json:"isSetup"`
}

// Result is the outcome of one Solve call. It is built fresh every call and
// never modified afterwards.
//
//   - Path is empty when Impossible is true.
//   - MissScenarios holds zero or one entry.
//   - Reason is nil for a finishing path, ErrNoFinish for a setup path, and
//     one of the other sentinels when Impossible is true.
type Result struct {
	Score         int            `json:"score"`
	Path          []Step         `json:"path"`
	Explanation   string         `json:"explanation"`
	Impossible    bool           `json:"isImpossible"`
	IsSetup       bool           `json:"isSetup"`
	MissScenarios []MissScenario `json:"missScenarios"`
	DartsUsed     int            `json:"dartsUsed"`
	Reason        error          `json:"-"`
}

// Finished reports whether the result is a complete checkout.
func (r Result) Finished() bool {
	return !r.Impossible && !r.IsSetup && len(r.Path) > 0
}

// Labels returns the labels of the path in throw order.
func (r Result) Labels() []string {
	return stepLabels(r.Path)
}

func stepLabels(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Label
	}
	return out
}
