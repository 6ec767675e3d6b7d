// SPDX-License-Identifier: MIT

// Package checkout computes the best way to finish a darts leg.
//
// Overview:
//
//   - Given a remaining score (2–170), a player's favourite doubles and
//     triples, and a dart budget (1–3), Solve returns the single best
//     sequence of throws that reduces the score to exactly zero and ends on
//     a double or the bullseye.
//   - When the chosen route opens with a triple, Solve also returns a Plan B:
//     the best recovery if that triple lands in the single of the same number.
//   - When no finish fits the budget, Solve proposes a scoring setup instead.
//
// Pipeline:
//
//	score, prefs, budget
//	   │
//	   ├─ validate: 2 ≤ score ≤ 170, not a bogey number, 1 ≤ budget ≤ 3
//	   ├─ Search(score, d) for d = 1..budget, stop at the first d with paths
//	   │     └─ none: Setup(score, budget, prefs) → setup result
//	   ├─ Order(paths, prefs) → best = lowest Rank, ties by catalog order
//	   ├─ Annotate(score, best) → Steps with running remainders
//	   ├─ PlanMiss(steps, prefs) → 0 or 1 MissScenario (budget ≥ 2 only)
//	   └─ Explain(best, score, prefs) → narrative text
//
// Ranking (lower is better):
//
//	+1000 per dart beyond the first
//	 −100 if the final throw is a favourite double
//	  −50 else if the final throw is D20, D16 or D10
//	  −20 if a three-dart path opens with a favourite triple
//	 +150 if a path of two or more darts finishes on Bull
//
// The dart term dominates every preference term, so the shortest finish
// always wins; Solve additionally stops searching at the first length with a
// path.
//
// Legality:
//
//	A running remainder of 1 or below zero is a bust. Every non-final step
//	of a finishing path leaves at least 2, and the last step leaves exactly 0.
//	Setup paths never leave less than 2.
//
// Errors (carried in Result.Reason, never returned or panicked):
//
//   - ErrOutOfRange:  score outside [2, 170].
//   - ErrBogeyNumber: score is one of 159, 162, 163, 165, 166, 168, 169.
//   - ErrDartBudget:  budget outside [1, 3].
//   - ErrNoFinish:    no finishing path within the budget; the result is a setup
//     (or impossible if even a setup cannot be formed).
//   - ErrInternal:    any unexpected failure, recovered inside Solve.
//
// Concurrency:
//
//	Every function is pure over immutable inputs. Solve may be called from
//	any number of goroutines; identical inputs always produce identical
//	results.
//
// Complexity:
//
//	Search over d darts visits at most 62^(d−1) prefixes with O(1) finisher
//	lookups, so a full three-dart search is bounded by ~3.8k candidates.
package checkout
