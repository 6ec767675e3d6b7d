package checkout

import "github.com/katalvlaran/checkout/board"

// Test bridge: exposes the path enumerator hook to checkout_test only.

// SetSearchHook swaps the enumerator used by Solve and PlanMiss and returns
// a function restoring the previous one.
func SetSearchHook(fn func(target, dartsLeft int) [][]board.Throw) (restore func()) {
	prev := searchPaths
	searchPaths = fn
	return func() { searchPaths = prev }
}
