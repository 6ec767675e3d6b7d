// SPDX-License-Identifier: MIT

// Package chart builds the full checkout table: the best route for every
// score from 2 to 170 under one set of preferences and one dart budget.
//
// 📋 What is a chart?
//
//	A printed checkout chart is what players pin next to the board. Each row
//	holds one score, its recommended route, the darts it needs and the
//	Plan B for a missed opening triple. Bogey numbers appear as rows too,
//	marked as such, so the table has no gaps.
//
// ⚙️ Building:
//
//	Build fans the 169 scores out over a bounded errgroup; each worker
//	calls checkout.Solve and stores the Result at the row for its score.
//	Rows are indexed, not appended, so the concurrent table is identical to
//	BuildSequential for the same inputs. Cancelling ctx aborts the build.
//
// 🖨️ Rendering:
//   - WriteText: fixed-width table for terminals.
//   - WriteCSV:  one record per score, header first.
//   - WriteHTML: standalone page with one <tr data-score="N"> per score.
//
// Errors:
//   - ErrWorkers: worker limit below 1.
//   - Writer failures are wrapped with the score being written.
package chart
