// Package reach answers bounded reachability queries on a core.Graph:
// which vertices lie within a weighted distance budget (the radius) of a source.
//
// Overview:
//
//   - Search returns the distance of every vertex whose shortest weighted
//     distance from the source is ≤ radius; Within returns just their IDs.
//   - The source is always a member (distance 0).
//   - Edges are never relaxed past the radius, so the search only touches the
//     radius-bounded neighborhood of the source.
//
// Strategies:
//
//   - StrategyWorklist (default): a label-correcting relaxation over a FIFO
//     worklist. A vertex may be expanded several times as its distance
//     improves (Bellman-Ford style). Correct for non-negative weights and
//     cheap on small, radius-limited neighborhoods.
//   - StrategyHeap: Dijkstra with a lazy decrease-key min-heap. Each vertex is
//     expanded at most once. Use it for large radii or dense graphs.
//
// Both strategies return the same distances for any graph with non-negative
// weights; only the amount of work differs.
//
// Complexity:
//
//   - Worklist: O(V·E) worst case on the bounded neighborhood.
//   - Heap:     O((V + E) log V) on the bounded neighborhood.
//   - Space:    O(V) for distances plus the queue.
//
// Errors:
//
//   - *MissingVertexError: a vertex reached within the radius (or the source)
//     has no adjacency entry of its own. It unwraps to core.ErrVertexNotFound.
//     Dangling targets farther than the radius are never expanded and are not
//     reported; use core.Graph.Validate to check the whole graph.
//   - *InvalidRadiusError: radius < 0.
//   - ErrNegativeWeight: a negative edge was about to be relaxed. Reported
//     instead of looping on a negative cycle.
//
// Thread safety:
//
//   - Search only reads the graph; concurrent searches over the same graph are
//     safe as long as nobody mutates it meanwhile.
package reach
