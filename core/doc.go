// Package core provides the Graph type shared by every algorithm in kcover:
// a directed, weighted adjacency mapping keyed by integer vertex IDs.
//
// The representation is deliberately plain:
//
//	g[from][to] = weight
//
// so callers can build graphs with composite literals, decoders can fill them
// directly, and algorithms can read them without locks. A Graph is not safe
// for concurrent mutation; concurrent reads are fine, and every algorithm in
// this module only reads.
//
// Conventions:
//
//   - Directed edges. An undirected graph stores both directions
//     (AddUndirectedEdge does this for you).
//   - Weights are non-negative int64 values. AddEdge rejects negative weights
//     with ErrBadWeight; composite literals bypass that check, so use Validate
//     when the origin of a graph is untrusted.
//   - A vertex exists iff it is a key of the outer map. An edge target that is
//     not a key is a dangling edge; Neighbors reports it as ErrVertexNotFound
//     and Validate as ErrDanglingEdge.
//   - Deterministic enumeration: Vertices, NeighborIDs and Edges return results
//     sorted ascending, so algorithms built on them are reproducible.
//
// Core Methods:
//
//	AddVertex(id int)                              // O(1)
//	AddEdge(from, to int, w int64) error           // O(1)
//	AddUndirectedEdge(a, b int, w int64) error     // O(1)
//	HasVertex(id int) bool                         // O(1)
//	HasEdge(from, to int) bool                     // O(1)
//	Weight(from, to int) (int64, bool)             // O(1)
//	Neighbors(id int) (map[int]int64, error)       // O(1)
//	NeighborIDs(id int) ([]int, error)             // O(d·log d)
//	Vertices() []int                               // O(V·log V)
//	Edges() []Edge                                 // O(E·log E)
//	VertexCount() int / EdgeCount() int            // O(1) / O(V)
//	Clone() Graph                                  // O(V+E)
//	Validate() error                               // O(V+E·log E)
package core
