package kcenter

import (
	"sort"

	"github.com/katalvlaran/kcover/core"
	"github.com/katalvlaran/kcover/reach"
)

// Assign maps every vertex of g to its nearest center, measuring distance from
// the center to the vertex. Ties go to the smallest center ID.
//
// Errors:
//   - *InvalidRadiusError for radius < 0.
//   - *MissingVertexError if a center (or a vertex reached from one) has no
//     adjacency entry.
//   - *UncoveredError naming the smallest vertex that no center reaches.
//
// Only the Strategy option is used.
func Assign(g core.Graph, radius int64, centers []int, opts ...Option) (map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if radius < 0 {
		return nil, &InvalidRadiusError{Radius: radius}
	}

	sorted := append([]int(nil), centers...)
	sort.Ints(sorted)

	owner := make(map[int]int, len(g))
	best := make(map[int]int64, len(g))
	for _, c := range sorted {
		dist, err := reach.Search(g, c, radius, reach.WithStrategy(cfg.Strategy))
		if err != nil {
			return nil, err
		}
		for v, d := range dist {
			if known, ok := best[v]; ok && d >= known {
				continue
			}
			best[v] = d
			owner[v] = c
		}
	}

	for _, v := range g.Vertices() {
		if _, ok := owner[v]; !ok {
			return nil, &UncoveredError{Vertex: v, Radius: radius}
		}
	}

	return owner, nil
}

// Verify checks that every vertex of g is within radius of some center.
// It returns nil on success and the same errors as Assign otherwise.
func Verify(g core.Graph, radius int64, centers []int, opts ...Option) error {
	_, err := Assign(g, radius, centers, opts...)

	return err
}
