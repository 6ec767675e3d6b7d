// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"strings"

	"github.com/katalvlaran/checkout/checkout"
)

// ErrWorkers indicates a non-positive worker limit.
var ErrWorkers = errors.New("chart: workers must be at least 1")

// Row statuses.
const (
	StatusFinish     = "finish"
	StatusSetup      = "setup"
	StatusBogey      = "bogey"
	StatusImpossible = "impossible"
)

// Row is one score of the chart and the solver's answer for it.
type Row struct {
	Score  int             `json:"score"`
	Result checkout.Result `json:"result"`
}

// Status classifies the row as finish, setup, bogey or impossible.
func (r Row) Status() string {
	switch {
	case r.Result.Impossible && errors.Is(r.Result.Reason, checkout.ErrBogeyNumber):
		return StatusBogey
	case r.Result.Impossible:
		return StatusImpossible
	case r.Result.IsSetup:
		return StatusSetup
	default:
		return StatusFinish
	}
}

// Route joins the path labels with spaces, or "-" when there is no path.
func (r Row) Route() string {
	if len(r.Result.Path) == 0 {
		return "-"
	}
	return strings.Join(r.Result.Labels(), " ")
}

// PlanB renders the first miss scenario as "S20: T20 T20 (setup)", or ""
// when the route has none.
func (r Row) PlanB() string {
	if len(r.Result.MissScenarios) == 0 {
		return ""
	}
	ms := r.Result.MissScenarios[0]
	var b strings.Builder
	b.WriteString(ms.Actual.Label)
	b.WriteString(":")
	for _, st := range ms.RemainingPath {
		b.WriteString(" ")
		b.WriteString(st.Label)
	}
	if ms.IsSetup {
		b.WriteString(" (setup)")
	}
	return b.String()
}

// Chart is the table of rows for scores checkout.MinScore..checkout.MaxScore,
// in ascending order.
type Chart struct {
	Preferences checkout.Preferences `json:"preferences"`
	MaxDarts    int                  `json:"maxDarts"`
	Rows        []Row                `json:"rows"`
}

// Row returns the row for score.
func (c *Chart) Row(score int) (Row, bool) {
	i := score - checkout.MinScore
	if i < 0 || i >= len(c.Rows) {
		return Row{}, false
	}
	return c.Rows[i], true
}

// Counts tallies rows per status.
func (c *Chart) Counts() map[string]int {
	out := make(map[string]int, 4)
	for _, r := range c.Rows {
		out[r.Status()]++
	}
	return out
}
