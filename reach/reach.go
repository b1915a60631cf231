package reach

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kcover/core"
)

// Search returns the shortest weighted distance from source to every vertex
// reachable within radius. The source maps to 0.
//
// Preconditions and validation (in order):
//  1. radius ≥ 0 (*InvalidRadiusError).
//  2. source has an adjacency entry (*MissingVertexError with From == source).
//
// Any vertex recorded within the radius is expanded; if it has no adjacency
// entry the search fails with *MissingVertexError. A negative edge weight met
// during relaxation fails with ErrNegativeWeight.
func Search(g core.Graph, source int, radius int64, opts ...Option) (map[int]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if radius < 0 {
		return nil, &InvalidRadiusError{Radius: radius}
	}
	if !g.HasVertex(source) {
		return nil, &MissingVertexError{Vertex: source, From: source}
	}

	r := &runner{
		g:      g,
		opts:   cfg,
		radius: radius,
		dist:   map[int]int64{source: 0},
		via:    map[int]int{source: source},
	}

	var err error
	switch cfg.Strategy {
	case StrategyHeap:
		err = r.runHeap(source)
	default:
		err = r.runWorklist(source)
	}
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

// Within returns the IDs of all vertices within radius of source, sorted ascending.
// It has the same preconditions and errors as Search.
func Within(g core.Graph, source int, radius int64, opts ...Option) ([]int, error) {
	dist, err := Search(g, source, radius, opts...)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(dist))
	for v := range dist {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g      core.Graph    // read-only input
	opts   Options       // strategy and hooks
	radius int64         // inclusive distance bound
	dist   map[int]int64 // best known distance per recorded vertex
	via    map[int]int   // vertex whose edge first recorded the entry, for error context
}

// runWorklist is the FIFO label-correcting loop: pop v, relax its edges, push
// every neighbor whose distance strictly improved.
func (r *runner) runWorklist(source int) error {
	queue := []int{source}
	var v int
	for len(queue) > 0 {
		v = queue[0]
		queue = queue[1:]

		err := r.relax(v, func(n int, _ int64) {
			queue = append(queue, n)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// relax expands v: for each outgoing edge v→n in ascending n order it computes
// the candidate distance and, when candidate ≤ radius and improves dist[n],
// records it and calls push.
func (r *runner) relax(v int, push func(n int, d int64)) error {
	nbrs, ok := r.g[v]
	if !ok {
		return &MissingVertexError{Vertex: v, From: r.via[v]}
	}

	d := r.dist[v]
	r.opts.OnExpand(v, d)

	ids := make([]int, 0, len(nbrs))
	for n := range nbrs {
		ids = append(ids, n)
	}
	sort.Ints(ids)

	var n int
	var w, cand int64
	for _, n = range ids {
		w = nbrs[n]
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, v, n, w)
		}
		// w > radius-d ⇔ d+w > radius, without overflowing on huge weights.
		if w > r.radius-d {
			continue
		}
		cand = d + w
		if known, seen := r.dist[n]; seen && cand >= known {
			continue
		}
		r.dist[n] = cand
		if _, seen := r.via[n]; !seen {
			r.via[n] = v
		}
		push(n, cand)
	}

	return nil
}
