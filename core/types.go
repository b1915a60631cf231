// Package core defines the Graph and Edge types, sentinel errors and the
// constructors used to build graphs from scratch or from edge lists.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that has no
	// adjacency entry in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrDanglingEdge indicates an edge whose target is not a vertex of the graph.
	ErrDanglingEdge = errors.New("core: edge target has no adjacency entry")
)

// Graph is a directed weighted adjacency mapping: g[from][to] = weight.
//
// Every vertex is a key of the outer map, including vertices without outgoing
// edges (their inner map is empty). The zero value (nil) is an empty,
// read-only graph; use NewGraph or a composite literal before mutating.
type Graph map[int]map[int]int64

// Edge is a single directed, weighted connection From→To.
type Edge struct {
	From   int   `yaml:"from" json:"from"`
	To     int   `yaml:"to" json:"to"`
	Weight int64 `yaml:"weight" json:"weight"`
}

// String renders the edge as "from→to(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// NewGraph returns an empty Graph with room for sizeHint vertices.
// Complexity: O(1)
func NewGraph(sizeHint int) Graph {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return make(Graph, sizeHint)
}

// FromEdges builds a Graph from a list of directed edges. Both endpoints of
// every edge become vertices, so the result never has dangling edges.
// When the same (From, To) pair appears twice, the last weight wins.
//
// Errors:
//   - ErrBadWeight (wrapped with the offending edge) for a negative weight.
//
// Complexity: O(E)
func FromEdges(edges []Edge) (Graph, error) {
	g := NewGraph(len(edges))
	var e Edge
	for _, e = range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
