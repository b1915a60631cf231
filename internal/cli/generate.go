package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kcover/builder"
	"github.com/katalvlaran/kcover/graphio"
)

// Output formats accepted by --format.
const (
	formatYAML = "yaml"
	formatMap  = "map"
)

type generateCmd struct {
	root *root

	topology   string
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  int64
	maxWeight  int64
	directed   bool
	offset     int
	format     string
}

func (c *generateCmd) CobraCommand() *cobra.Command {
	const (
		generateUse   = "generate"
		generateShort = "write a synthetic graph to stdout."
		generateLong  = "generate builds a path, cycle, star, grid, complete or random graph " +
			"with seeded weights in [--min-weight, --max-weight] and writes it as YAML " +
			"(or as a map literal with --format map), ready to be passed to solve."
	)

	cmd := &cobra.Command{
		Use:   generateUse,
		Short: generateShort,
		Long:  generateLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd)
		},
	}
	c.n, c.rows, c.cols = 5, 3, 3
	c.p, c.seed = 0.3, 1
	c.minWeight, c.maxWeight = 1, 1
	c.topology, c.format = "path", formatYAML
	c.AddFlags(cmd.Flags())

	return cmd
}

func (c *generateCmd) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.topology, "topology", "t", c.topology, "path, cycle, star, grid, complete or random")
	flags.IntVarP(&c.n, "n", "n", c.n, "vertex count (all topologies except grid)")
	flags.IntVar(&c.rows, "rows", c.rows, "grid rows")
	flags.IntVar(&c.cols, "cols", c.cols, "grid columns")
	flags.Float64Var(&c.p, "p", c.p, "edge probability for random graphs")
	flags.Int64Var(&c.seed, "seed", c.seed, "random seed for weights and random edges")
	flags.Int64Var(&c.minWeight, "min-weight", c.minWeight, "smallest edge weight")
	flags.Int64Var(&c.maxWeight, "max-weight", c.maxWeight, "largest edge weight")
	flags.BoolVar(&c.directed, "directed", c.directed, "emit forward arcs only (grids stay mirrored)")
	flags.IntVar(&c.offset, "offset", c.offset, "ID of the first vertex")
	flags.StringVar(&c.format, "format", c.format, "output format: yaml or map")
}

func (c *generateCmd) constructor() (builder.Constructor, error) {
	switch c.topology {
	case "path":
		return builder.Path(c.n), nil
	case "cycle":
		return builder.Cycle(c.n), nil
	case "star":
		return builder.Star(c.n), nil
	case "grid":
		return builder.Grid(c.rows, c.cols), nil
	case "complete":
		return builder.Complete(c.n), nil
	case "random":
		return builder.RandomSparse(c.n, c.p), nil
	default:
		return nil, usageErrorf("unknown topology %q", c.topology)
	}
}

func (c *generateCmd) run(cmd *cobra.Command) error {
	if c.minWeight < 0 || c.maxWeight < c.minWeight {
		return usageErrorf("need 0 <= --min-weight <= --max-weight, got %d and %d", c.minWeight, c.maxWeight)
	}
	if c.format != formatYAML && c.format != formatMap {
		return usageErrorf("unknown format %q (want %s or %s)", c.format, formatYAML, formatMap)
	}
	cons, err := c.constructor()
	if err != nil {
		return err
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(c.seed),
		builder.WithWeightFn(builder.UniformWeightFn(c.minWeight, c.maxWeight)),
		builder.WithIDOffset(c.offset),
	}
	if c.directed {
		bopts = append(bopts, builder.WithDirected())
	}

	g, err := builder.BuildGraph(bopts, cons)
	if err != nil {
		if errors.Is(err, builder.ErrTooFewVertices) || errors.Is(err, builder.ErrInvalidProbability) {
			return &usageError{err: err}
		}
		return fmt.Errorf("generating graph: %w", err)
	}
	c.root.log.WithName("generate").V(1).Info("generated graph",
		"topology", c.topology, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	if c.format == formatMap {
		return graphio.FormatMapLiteral(cmd.OutOrStdout(), g)
	}

	return graphio.EncodeYAML(cmd.OutOrStdout(), g)
}
