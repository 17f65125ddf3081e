// Package controller provides output adapters for displaying rewrite results.
package controller

import (
	m "github.com/mouse-blink/stdscope/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	strategy m.Strategy
	apply    bool
}

// WithStrategy records which strategy the run uses.
func WithStrategy(strategy m.Strategy) StartOption {
	return func(c *StartConfig) {
		c.strategy = strategy
	}
}

// WithApplyMode switches between dry-run (false) and write (true) reporting.
func WithApplyMode(apply bool) StartOption {
	return func(c *StartConfig) {
		c.apply = apply
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a rewrite run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// DisplayFileResult reports one changed file.
	DisplayFileResult(result m.FileResult)
	// DisplayReport reports the end of the run.
	DisplayReport(report m.Report) error
}
