// Package builder provides deterministic "functional-options"-style graph
// constructors that produce core.Graph values: classic topologies for tests,
// benchmarks, examples and the `kcover generate` command.
//
// The package offers the following key components:
//
//   - Entry point:
//     – BuildGraph(bopts, cons...): allocate a graph and apply constructors in order.
//   - Constructors (Constructor implementations):
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols), RandomSparse(n, p).
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:  RNG for stochastic constructors and weights.
//     – WithWeightFn:         edge-weight policy (ConstantWeightFn, UniformWeightFn).
//     – WithDirected:         emit only forward arcs instead of mirrored pairs.
//     – WithIDOffset:         first vertex ID (default 0).
//
// Vertex IDs:
//
//   - Vertex i of a constructor gets ID offset+i. Grid cell (r,c) is
//     offset + r*cols + c; Star's hub is offset+0.
//
// Guarantees:
//
//   - Determinism: equal options and seeds produce equal graphs.
//   - No dangling edges: every edge endpoint is a vertex.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid constructor parameters return wrapped sentinel errors.
package builder
