// Package kcenter selects a small set of centers such that every vertex of a
// weighted directed graph lies within a fixed radius of at least one center
// (radius-bounded vertex k-center, solved greedily as a set cover).
//
// Overview:
//
//  1. For every vertex v, reach.Search computes the reachability set of v:
//     all vertices at weighted distance ≤ radius from v (v included).
//  2. While candidate sets remain, the selector picks the largest one (ties go
//     to the smallest root), records its root as a center, removes it, and
//     updates every other candidate R in two phases:
//     • if the chosen set contains R's root, R is dropped (its root is covered);
//     • otherwise the chosen root and all chosen members are removed from R.
//  3. When no candidates remain every vertex is a center or within radius of one.
//
// The result is an approximation: no guarantee on the number of centers.
// Each iteration removes at least the selected candidate, so the loop runs at
// most |V| times.
//
// Error handling:
//
//   - *InvalidRadiusError: radius < 0, checked before any work.
//   - *MissingVertexError: a vertex reached within the radius has no adjacency
//     entry (dangling edge). Unwraps to core.ErrVertexNotFound.
//   - reach.ErrNegativeWeight: a negative edge was relaxed.
//   - context errors when WithContext is cancelled.
//   - An empty graph is not an error: Solve returns an empty Result.
//
// Verification helpers:
//
//   - Verify checks the coverage property for any center set.
//   - Assign maps every vertex to its nearest center.
//
// Concurrency:
//
//   - Solve keeps all state local to the call. WithWorkers(n) runs the
//     per-vertex searches on n goroutines; the result is identical to the
//     sequential run.
package kcenter
