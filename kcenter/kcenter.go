package kcenter

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kcover/core"
	"github.com/katalvlaran/kcover/reach"
)

// Solve returns a set of centers such that every vertex of g is within radius
// of some center.
//
// Preconditions and validation (in order):
//  1. radius ≥ 0 (*InvalidRadiusError).
//  2. An empty graph yields an empty Result and no error.
//  3. Every vertex reached within the radius must have an adjacency entry
//     (*MissingVertexError otherwise).
//
// The selection is deterministic: ties between equally large candidates go to
// the smallest root, and the result does not depend on Workers or Strategy.
//
// Complexity:
//   - Search phase: |V| bounded searches (see package reach).
//   - Greedy phase: O(|V|) iterations, each O(Σ|set|) for the removals.
func Solve(g core.Graph, radius int64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if radius < 0 {
		return nil, &InvalidRadiusError{Radius: radius}
	}

	log := cfg.Logger
	res := &Result{Order: []int{}}
	if len(g) == 0 {
		log.V(1).Info("empty graph, nothing to cover")
		return res, nil
	}

	sets, err := buildSets(g, radius, cfg)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("built reachability sets",
		"vertices", len(sets), "radius", radius,
		"workers", cfg.Workers, "strategy", cfg.Strategy.String())

	sel := &selector{sets: sets}
	for len(sel.sets) > 0 {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		chosen := sel.step()
		res.Order = append(res.Order, chosen.Root)
		res.Iterations++
		log.V(2).Info("selected center",
			"iteration", res.Iterations, "root", chosen.Root,
			"covered", chosen.Len(), "candidates", len(sel.sets))
	}
	log.V(1).Info("cover complete", "centers", res.Len(), "iterations", res.Iterations)

	return res, nil
}

// BuildSets returns one ReachabilitySet per vertex of g, ordered by ascending
// root. Only Workers, Strategy and Ctx options are used.
func BuildSets(g core.Graph, radius int64, opts ...Option) ([]*ReachabilitySet, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if radius < 0 {
		return nil, &InvalidRadiusError{Radius: radius}
	}

	return buildSets(g, radius, cfg)
}

// buildSets runs the bounded search from every vertex. With several workers
// every search still runs to completion so that, when several vertices fail,
// the error of the smallest one is reported, exactly as in the sequential run.
func buildSets(g core.Graph, radius int64, cfg Options) ([]*ReachabilitySet, error) {
	vertices := g.Vertices()
	sets := make([]*ReachabilitySet, len(vertices))
	search := reach.WithStrategy(cfg.Strategy)

	if cfg.Workers <= 1 {
		for i, v := range vertices {
			if err := cfg.Ctx.Err(); err != nil {
				return nil, err
			}
			ids, err := reach.Within(g, v, radius, search)
			if err != nil {
				return nil, err
			}
			sets[i] = newReachabilitySet(v, ids)
		}

		return sets, nil
	}

	errs := make([]error, len(vertices))
	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for i, v := range vertices {
		i, v := i, v
		eg.Go(func() error {
			if err := cfg.Ctx.Err(); err != nil {
				return err
			}
			ids, err := reach.Within(g, v, radius, search)
			if err != nil {
				errs[i] = err
				return nil
			}
			sets[i] = newReachabilitySet(v, ids)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return sets, nil
}

// selector owns the shrinking candidate list of one solve.
type selector struct {
	sets []*ReachabilitySet
}

// step selects the largest candidate (smallest root on ties), removes it and
// applies its coverage to the remaining candidates:
//
//	phase 1: mark every candidate whose root the chosen set reaches, and strip
//	         the chosen root and members from the others;
//	phase 2: filter out the marked candidates.
func (s *selector) step() *ReachabilitySet {
	best := 0
	var cand *ReachabilitySet
	for i := 1; i < len(s.sets); i++ {
		cand = s.sets[i]
		if cand.Len() > s.sets[best].Len() ||
			(cand.Len() == s.sets[best].Len() && cand.Root < s.sets[best].Root) {
			best = i
		}
	}
	chosen := s.sets[best]

	rest := make([]*ReachabilitySet, 0, len(s.sets)-1)
	rest = append(rest, s.sets[:best]...)
	rest = append(rest, s.sets[best+1:]...)

	drop := make([]bool, len(rest))
	for i, r := range rest {
		if r.covers(chosen) {
			drop[i] = true
			continue
		}
		r.subtract(chosen)
	}

	kept := rest[:0]
	for i, r := range rest {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	s.sets = kept

	return chosen
}
