// Package graphio reads and writes core.Graph values and center sets.
//
// The map-literal format renders the adjacency as nested maps,
// `{1={2=10, 3=5}, 2={1=10}, 3={}}`. Whitespace is ignored, inner maps may be
// empty, and the whole graph may be `{}`. Vertex IDs are integers, weights
// non-negative integers.
//
// The YAML format (JSON is accepted too) looks like:
//
//	undirected: false    # mirror every edge when true
//	vertices: [7]        # extra isolated vertices
//	adjacency:           # from -> to -> weight
//	  1: {2: 10}
//	edges:               # and/or an edge list
//	  - {from: 2, to: 3, weight: 5}
//
// Load picks the decoder by file extension: .yaml, .yml and .json use YAML,
// anything else the map literal.
//
// Centers are printed as a sorted bracketed list: `[1, 2]`.
package graphio
