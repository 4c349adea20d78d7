// SPDX-License-Identifier: MIT
// Package: gridmin
//
// options.go: functional options for Sum.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on nil arguments; Sum itself never panics.
//   • Defaults: a discard logger and no row hook.

package gridmin

import (
	"io"
	"log/slog"
)

// Option customizes a Sum run by mutating its config before work begins.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	rowHook func(row int, minima []int64)
}

func newConfig(opts []Option) config {
	c := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger routes phase-level debug records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gridmin: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRowHook invokes fn after each row pass with that row's window minima.
// The slice aliases the intermediate matrix; fn must not retain or modify it.
func WithRowHook(fn func(row int, minima []int64)) Option {
	if fn == nil {
		panic("gridmin: WithRowHook(nil)")
	}
	return func(c *config) {
		c.rowHook = fn
	}
}
