// Package kcover selects centers in a weighted directed graph so that every
// vertex lies within a given radius of some center.
//
// The work is split across subpackages:
//
//	core/     — Graph (vertex → neighbor → weight), Edge, validation
//	reach/    — radius-bounded reachability search (FIFO worklist or min-heap)
//	kcenter/  — greedy cover selection, plus Verify and Assign for checking a cover
//	builder/  — path, cycle, star, grid, complete and random graph constructors
//	graphio/  — map-literal and YAML/JSON graph formats, center printing
//
// Quick example:
//
//	g := core.Graph{1: {2: 10}, 2: {1: 10, 3: 5}, 3: {2: 5}}
//	res, _ := kcenter.Solve(g, 5)
//	fmt.Println(res.Centers()) // [1 2]
//
// The kcover command (cmd/kcover) wraps the same pipeline:
//
//	kcover solve graph.txt --radius 5
//	kcover generate --topology grid --rows 3 --cols 3 > grid.yaml && kcover solve grid.yaml -r 1
package kcover
