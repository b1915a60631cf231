// Package core: Graph method implementations.
//
// All methods use value receivers: Graph is a map, so mutation through a value
// receiver is visible to the caller. Mutating a nil Graph panics like any nil map.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts id with no outgoing edges if it is absent (idempotent).
// Complexity: O(1)
func (g Graph) AddVertex(id int) {
	if _, ok := g[id]; !ok {
		g[id] = make(map[int]int64)
	}
}

// AddEdge inserts or overwrites the directed edge from→to with weight w.
// Both endpoints are added as vertices if missing.
//
// Errors:
//   - ErrBadWeight if w < 0; the graph is left untouched.
//
// Complexity: O(1)
func (g Graph) AddEdge(from, to int, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrBadWeight, from, to, w)
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g[from][to] = w

	return nil
}

// AddUndirectedEdge stores a—b as the two directed edges a→b and b→a with the
// same weight. For a == b a single self-loop is stored.
// Complexity: O(1)
func (g Graph) AddUndirectedEdge(a, b int, w int64) error {
	if err := g.AddEdge(a, b, w); err != nil {
		return err
	}

	return g.AddEdge(b, a, w)
}

// HasVertex reports whether id has an adjacency entry.
func (g Graph) HasVertex(id int) bool {
	_, ok := g[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g Graph) HasEdge(from, to int) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g Graph) Weight(from, to int) (int64, bool) {
	nbrs, ok := g[from]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[to]

	return w, ok
}

// Neighbors returns the outgoing edges of id as a neighbor→weight mapping.
// The returned map is the graph's own storage and must not be modified.
//
// Errors:
//   - ErrVertexNotFound (wrapped with id) when id has no adjacency entry.
//
// Complexity: O(1)
func (g Graph) Neighbors(id int) (map[int]int64, error) {
	nbrs, ok := g[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return nbrs, nil
}

// NeighborIDs returns the targets of id's outgoing edges sorted ascending.
// Complexity: O(d·log d)
func (g Graph) NeighborIDs(id int) ([]int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return sortedKeys(nbrs), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V)
func (g Graph) Vertices() []int {
	return sortedKeys(g)
}

// Edges returns every directed edge sorted by (From, To).
// Complexity: O(E·log E)
func (g Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	var from, to int
	for _, from = range g.Vertices() {
		for _, to = range sortedKeys(g[from]) {
			out = append(out, Edge{From: from, To: to, Weight: g[from][to]})
		}
	}

	return out
}

// VertexCount returns the number of vertices.
func (g Graph) VertexCount() int { return len(g) }

// EdgeCount returns the number of directed edges (an undirected edge counts twice).
// Complexity: O(V)
func (g Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}

	return n
}

// Clone returns a deep copy; mutating the clone never affects g.
// Complexity: O(V+E)
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}
	out := make(Graph, len(g))
	for v, nbrs := range g {
		cp := make(map[int]int64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		out[v] = cp
	}

	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
