// Package domain contains the rewrite workflow and strategy registry.
package domain

import (
	"fmt"

	"github.com/mouse-blink/stdscope/internal/domain/rewriters"
	m "github.com/mouse-blink/stdscope/internal/model"
)

// Rewriter is a pure text-to-text rewrite strategy.
type Rewriter interface {
	Strategy() m.Strategy
	Rewrite(text string) (m.Rewrite, error)
}

// DefaultRewriters returns one instance of every built-in strategy.
func DefaultRewriters() []Rewriter {
	return []Rewriter{
		rewriters.NewAggressive(),
		rewriters.NewCleanup(),
		rewriters.NewIntroduce(),
	}
}

// Registry maps strategy names to rewriters.
type Registry map[m.Strategy]Rewriter

// NewRegistry indexes the given rewriters by strategy. Later entries win.
func NewRegistry(rws ...Rewriter) Registry {
	registry := make(Registry, len(rws))
	for _, rw := range rws {
		registry[rw.Strategy()] = rw
	}

	return registry
}

// Lookup returns the rewriter for strategy.
func (r Registry) Lookup(strategy m.Strategy) (Rewriter, error) {
	rw, ok := r[strategy]
	if !ok {
		return nil, fmt.Errorf("unsupported strategy: %v", strategy)
	}

	return rw, nil
}
