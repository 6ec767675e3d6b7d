// SPDX-License-Identifier: MIT

// Package checkout is a darts checkout advisor: given the points a player
// still needs, it names the throws that finish the leg.
//
// 🎯 What does it answer?
//
//	"I need 99 with three darts, I like D20 and T18. What do I throw?"
//		• The best route: T18, S5, D20
//		• Plan B if the T18 lands in the single 18: T15, D18
//		• Why this route, in plain words
//		• A scoring setup when no finish fits the darts left
//
// ✨ Why this module?
//
//   - Deterministic – same score and preferences, same answer, every time
//   - Honest – bogey numbers and impossible scores are reported, never guessed
//   - Pure Go – the solver is allocation-light and safe for concurrent use
//   - Ready to serve – JSON API, WebSocket live mode and a printable chart
//
// Packages:
//
//	board/         the 62 targets of a dart board, finishes and bogey numbers
//	checkout/      path search, ranking, setup, Plan B and explanations
//	chart/         every score 2–170 in one table (text, CSV, HTML)
//	server/        HTTP + WebSocket adapter over the solver
//	cmd/checkout/  command-line entry point
//	examples/      runnable walkthroughs
//
// Quick example:
//
//	res := checkout.Solve(170, checkout.DefaultPreferences())
//	// res.Labels() == ["T20", "T20", "Bull"]
//
//	go get github.com/katalvlaran/checkout
package checkout
