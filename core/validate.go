package core

import "fmt"

// Validate checks the two data-integrity rules algorithms rely on:
// every weight is non-negative and every edge target is a vertex.
//
// Edges are inspected in (From, To) order and the first violation is returned,
// so the result is deterministic for a given graph.
//
// Errors:
//   - ErrBadWeight    wrapped with the edge, for a negative weight.
//   - ErrDanglingEdge wrapped with the edge, for a target without adjacency entry.
//
// Complexity: O(V + E·log E)
func (g Graph) Validate() error {
	var e Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s", ErrBadWeight, e)
		}
		if !g.HasVertex(e.To) {
			return fmt.Errorf("%w: edge %s", ErrDanglingEdge, e)
		}
	}

	return nil
}
