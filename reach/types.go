// Package reach defines the strategy selector, options and error types of the
// bounded reachability search.
package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kcover/core"
)

// ErrNegativeWeight indicates that a negative edge weight was encountered
// while relaxing edges.
var ErrNegativeWeight = errors.New("reach: negative edge weight encountered")

// MissingVertexError reports a vertex that the search had to expand but that
// has no adjacency entry in the graph (a dangling edge target, or an absent source).
type MissingVertexError struct {
	// Vertex is the ID without an adjacency entry.
	Vertex int
	// From is the vertex whose edge led to Vertex; equal to Vertex when the
	// missing vertex is the search source itself.
	From int
}

// Error implements error.
func (e *MissingVertexError) Error() string {
	if e.From == e.Vertex {
		return fmt.Sprintf("reach: source vertex %d has no adjacency entry", e.Vertex)
	}

	return fmt.Sprintf("reach: vertex %d (edge from %d) has no adjacency entry", e.Vertex, e.From)
}

// Unwrap lets errors.Is(err, core.ErrVertexNotFound) match.
func (e *MissingVertexError) Unwrap() error { return core.ErrVertexNotFound }

// InvalidRadiusError reports a negative radius.
type InvalidRadiusError struct {
	Radius int64
}

// Error implements error.
func (e *InvalidRadiusError) Error() string {
	return fmt.Sprintf("reach: radius must be non-negative, got %d", e.Radius)
}

// Strategy selects the order in which the search expands vertices.
type Strategy int

const (
	// StrategyWorklist expands vertices in FIFO order, re-expanding a vertex
	// whenever its distance improves.
	StrategyWorklist Strategy = iota

	// StrategyHeap expands vertices in non-decreasing distance order using a
	// min-heap; every vertex is expanded at most once.
	StrategyHeap
)

// String returns the lower-case strategy name used by flags and configs.
func (s Strategy) String() string {
	switch s {
	case StrategyWorklist:
		return "worklist"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "worklist" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "worklist", "":
		return StrategyWorklist, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("reach: unknown strategy %q (want worklist or heap)", name)
	}
}

// Options configures a search.
//
// Strategy – expansion order (StrategyWorklist by default).
// OnExpand – called each time a vertex is expanded, with its distance at that
// moment. With StrategyWorklist a vertex may be reported more than once.
type Options struct {
	Strategy Strategy
	OnExpand func(v int, dist int64)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStrategy selects the expansion order. Unknown values panic.
func WithStrategy(s Strategy) Option {
	if s != StrategyWorklist && s != StrategyHeap {
		panic(fmt.Sprintf("reach: WithStrategy(%d): unknown strategy", int(s)))
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnExpand registers a hook invoked before a vertex's edges are relaxed.
func WithOnExpand(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns the worklist strategy with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyWorklist,
		OnExpand: func(int, int64) {},
	}
}
