// SPDX-License-Identifier: MIT

package checkout

import "log/slog"

// Options configures Solve.
//
// MaxDarts – darts available for the checkout, 1..3 (default 3).
//
//	Values outside the range are not rejected here; Solve reports them as
//	an impossible result with ErrDartBudget.
//
// Logger   – receives internal failures recovered by Solve. Nil disables logging.
type Options struct {
	MaxDarts int
	Logger   *slog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns a three-dart budget with logging disabled.
func DefaultOptions() Options {
	return Options{
		MaxDarts: MaxDarts,
		Logger:   nil,
	}
}

// WithMaxDarts sets the dart budget.
func WithMaxDarts(n int) Option {
	return func(o *Options) {
		o.MaxDarts = n
	}
}

// WithLogger sets the logger used for recovered internal failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
