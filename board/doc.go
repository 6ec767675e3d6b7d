// SPDX-License-Identifier: MIT

// Package board is the static catalog of dart board targets.
//
// 🎯 What is in the catalog?
//
//	Every scoring target a dart can be aimed at:
//	  • Singles, doubles and triples of the numbers 1–20 (60 targets)
//	  • The outer bull "25" (SingleBull, 25 points)
//	  • The inner bull "Bull" (Bull, 50 points)
//
//	62 entries in total, ordered S1, D1, T1, S2, D2, T2, …, T20, 25, Bull.
//	That order is part of the contract: solvers break ties by it.
//
// ✨ Derived views:
//   - Finishes(): the legal terminal throws of a checkout (every double + Bull).
//   - Bogeys():   the seven scores ≤ 170 that admit no three-dart checkout.
//   - Lookup(label), SingleOf(zone): constant-time lookups by label or zone.
//
// All tables are built once at package initialisation and never mutated;
// accessors hand out copies, so callers may modify what they receive.
//
// Invariants:
//
//	value == zone * multiplier for numbered zones
//	Bull is zone 25, multiplier 2, value 50; "25" is zone 25, multiplier 1, value 25
//	there is no triple bull
//
// Errors (sentinel):
//
//	– ErrUnknownLabel if a label is not part of the catalog.
//	– ErrUnknownZone  if a zone is neither 1–20 nor 25.
package board
