// SPDX-License-Identifier: MIT

package chart

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/checkout/checkout"
)

// Options configures Build.
//
// MaxDarts – dart budget handed to every Solve call (default 3).
// Workers  – concurrent Solve calls (default GOMAXPROCS).
// Logger   – forwarded to checkout.WithLogger. Nil disables logging.
type Options struct {
	MaxDarts int
	Workers  int
	Logger   *slog.Logger
}

// Option is a functional option for Build.
type Option func(*Options)

// DefaultOptions returns a three-dart chart built on every available CPU.
func DefaultOptions() Options {
	return Options{
		MaxDarts: checkout.MaxDarts,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithMaxDarts sets the dart budget of every row.
func WithMaxDarts(n int) Option {
	return func(o *Options) { o.MaxDarts = n }
}

// WithWorkers bounds the number of concurrent Solve calls.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger forwarded to the solver.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o Options) solveOptions() []checkout.Option {
	return []checkout.Option{checkout.WithMaxDarts(o.MaxDarts), checkout.WithLogger(o.Logger)}
}
