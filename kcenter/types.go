package kcenter

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/kcover/reach"
)

// MissingVertexError is returned when a dangling edge target is expanded.
type MissingVertexError = reach.MissingVertexError

// InvalidRadiusError is returned for a negative radius.
type InvalidRadiusError = reach.InvalidRadiusError

// UncoveredError reports a vertex that no center reaches within the radius.
type UncoveredError struct {
	Vertex int
	Radius int64
}

// Error implements error.
func (e *UncoveredError) Error() string {
	return fmt.Sprintf("kcenter: vertex %d is not within radius %d of any center", e.Vertex, e.Radius)
}

// ReachabilitySet pairs a candidate center (Root) with the vertices it still
// covers. Root is a member when the set is built (distance 0) and leaves the
// set only when another selection claims it.
type ReachabilitySet struct {
	Root    int
	members map[int]struct{}
}

// newReachabilitySet copies ids into a fresh member set.
func newReachabilitySet(root int, ids []int) *ReachabilitySet {
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}

	return &ReachabilitySet{Root: root, members: m}
}

// Len returns the number of still-uncovered members.
func (s *ReachabilitySet) Len() int { return len(s.members) }

// Contains reports whether v is a member.
func (s *ReachabilitySet) Contains(v int) bool {
	_, ok := s.members[v]

	return ok
}

// Members returns the members sorted ascending.
func (s *ReachabilitySet) Members() []int {
	ids := make([]int, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// covers reports whether selecting sel voids s: sel reaches s's root.
func (s *ReachabilitySet) covers(sel *ReachabilitySet) bool {
	return sel.Contains(s.Root)
}

// subtract removes sel's root and every member of sel from s.
func (s *ReachabilitySet) subtract(sel *ReachabilitySet) {
	delete(s.members, sel.Root)
	for id := range sel.members {
		delete(s.members, id)
	}
}

// Result is the answer set of a solve.
type Result struct {
	// Order lists centers in selection order.
	Order []int
	// Iterations is the number of greedy rounds; always len(Order).
	Iterations int
}

// Centers returns the centers sorted ascending.
func (r *Result) Centers() []int {
	out := append([]int(nil), r.Order...)
	sort.Ints(out)

	return out
}

// Contains reports whether v was chosen as a center.
func (r *Result) Contains(v int) bool {
	for _, c := range r.Order {
		if c == v {
			return true
		}
	}

	return false
}

// Len returns the number of centers.
func (r *Result) Len() int { return len(r.Order) }

// Options configures Solve.
//
// Workers  – goroutines for the per-vertex search phase (1 = sequential).
// Strategy – expansion order of each bounded search.
// Logger   – receives progress at V(1) and per-iteration detail at V(2).
// Ctx      – cancellation, checked between searches and between iterations.
type Options struct {
	Workers  int
	Strategy reach.Strategy
	Logger   logr.Logger
	Ctx      context.Context
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithWorkers sets the number of goroutines used to build reachability sets.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("kcenter: WithWorkers(%d): must be ≥ 1", n))
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithStrategy selects the bounded search strategy. The cover is the same for
// every strategy.
func WithStrategy(s reach.Strategy) Option {
	// Validate eagerly through reach so both packages agree on valid values.
	_ = reach.WithStrategy(s)

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger attaches a logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns sequential search, worklist strategy, a discarding
// logger and context.Background().
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Strategy: reach.StrategyWorklist,
		Logger:   logr.Discard(),
		Ctx:      context.Background(),
	}
}
