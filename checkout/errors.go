// SPDX-License-Identifier: MIT

package checkout

import "errors"

// Sentinel errors describing why a Result carries no finishing path.
// They are stored in Result.Reason; branch on them with errors.Is.
var (
	// ErrOutOfRange indicates a score above 170 or below 2.
	ErrOutOfRange = errors.New("checkout: score out of range")

	// ErrBogeyNumber indicates a score with no three-dart checkout.
	ErrBogeyNumber = errors.New("checkout: bogey number")

	// ErrDartBudget indicates a dart budget outside [1, 3].
	ErrDartBudget = errors.New("checkout: dart budget out of range")

	// ErrNoFinish indicates that no finishing path fits the dart budget.
	ErrNoFinish = errors.New("checkout: no finish within dart budget")

	// ErrInternal indicates an unexpected failure recovered inside Solve.
	ErrInternal = errors.New("checkout: internal failure")

	// ErrBadPreference indicates a favourite label of the wrong kind,
	// e.g. "T20" listed as a favourite double.
	ErrBadPreference = errors.New("checkout: invalid preference")
)
