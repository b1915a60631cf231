package graphio

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kcover/core"
)

// document is the YAML/JSON graph layout. Adjacency keys are decoded as
// strings so that JSON's quoted object keys work as well as YAML integers.
type document struct {
	Undirected bool                        `yaml:"undirected"`
	Vertices   []int                       `yaml:"vertices"`
	Adjacency  map[string]map[string]int64 `yaml:"adjacency"`
	Edges      []core.Edge                 `yaml:"edges"`
}

// DecodeYAML reads a graph document (YAML or JSON). An empty input is an
// empty graph.
//
// Directed adjacency entries are taken as written, so a target without its
// own key stays a dangling edge. Edge-list entries and undirected documents
// add both endpoints as vertices.
func DecodeYAML(r io.Reader) (core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphio: decode yaml: %w", err)
	}

	g := core.NewGraph(len(doc.Adjacency) + len(doc.Vertices))
	for _, v := range doc.Vertices {
		g.AddVertex(v)
	}

	add := func(from, to int, w int64) error {
		if doc.Undirected {
			return g.AddUndirectedEdge(from, to, w)
		}
		return g.AddEdge(from, to, w)
	}

	fromKeys := make([]string, 0, len(doc.Adjacency))
	for k := range doc.Adjacency {
		fromKeys = append(fromKeys, k)
	}
	sort.Strings(fromKeys)

	for _, fk := range fromKeys {
		from, err := vertexID(fk)
		if err != nil {
			return nil, err
		}
		g.AddVertex(from)

		nbrs := doc.Adjacency[fk]
		toKeys := make([]string, 0, len(nbrs))
		for k := range nbrs {
			toKeys = append(toKeys, k)
		}
		sort.Strings(toKeys)

		for _, tk := range toKeys {
			to, err := vertexID(tk)
			if err != nil {
				return nil, err
			}
			w := nbrs[tk]
			if w < 0 {
				return nil, fmt.Errorf("graphio: %w: edge %d→%d weight=%d", core.ErrBadWeight, from, to, w)
			}
			if doc.Undirected {
				if err = add(from, to, w); err != nil {
					return nil, err
				}
				continue
			}
			g[from][to] = w
		}
	}

	for _, e := range doc.Edges {
		if err := add(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	return g, nil
}

func vertexID(key string) (int, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: vertex key %q is not an integer", ErrSyntax, key)
	}

	return id, nil
}

// EncodeYAML writes g as an adjacency document, keys in ascending order.
func EncodeYAML(w io.Writer, g core.Graph) error {
	adj := make(map[int]map[int]int64, len(g))
	for v, nbrs := range g {
		adj[v] = nbrs
	}
	out := struct {
		Adjacency map[int]map[int]int64 `yaml:"adjacency"`
	}{Adjacency: adj}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("graphio: encode yaml: %w", err)
	}

	return enc.Close()
}
