// SPDX-License-Identifier: MIT

package checkout

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/checkout/board"
)

// Ranking weights. Lower total cost is better.
const (
	// WorstCost is returned for empty or malformed paths.
	WorstCost = 99999

	dartCost                = 1000
	favoriteDoubleBonus     = 100
	conventionalDoubleBonus = 50
	favoriteTripleBonus     = 20
	bullFinishPenalty       = 150
)

// conventionalDoubles earn a smaller bonus when they are not favourites.
var conventionalDoubles = []string{"D20", "D16", "D10"}

// Rank returns the cost of path under prefs; see the package documentation
// for the terms. Identical inputs always give the identical cost.
func Rank(path []board.Throw, prefs Preferences) int {
	if len(path) == 0 {
		return WorstCost
	}
	first, last := path[0], path[len(path)-1]
	if first.Label == "" || last.Label == "" {
		return WorstCost
	}

	cost := (len(path) - 1) * dartCost

	switch {
	case prefs.IsFavoriteDouble(last.Label):
		cost -= favoriteDoubleBonus
	case slices.Contains(conventionalDoubles, last.Label):
		cost -= conventionalDoubleBonus
	}

	if len(path) == 3 && prefs.IsFavoriteTriple(first.Label) {
		cost -= favoriteTripleBonus
	}

	if last.Kind == board.Bull && len(path) > 1 {
		cost += bullFinishPenalty
	}

	return cost
}

// Order returns the paths sorted by ascending Rank. Equal costs keep their
// input order, so the result is reproducible for a given Search output.
// The input slice is not modified.
func Order(paths [][]board.Throw, prefs Preferences) [][]board.Throw {
	type ranked struct {
		path []board.Throw
		cost int
	}
	rs := make([]ranked, len(paths))
	for i, p := range paths {
		rs[i] = ranked{path: p, cost: Rank(p, prefs)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return cmp.Compare(a.cost, b.cost)
	})

	out := make([][]board.Throw, len(rs))
	for i, r := range rs {
		out[i] = r.path
	}
	return out
}
