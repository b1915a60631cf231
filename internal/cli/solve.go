package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kcover/core"
	"github.com/katalvlaran/kcover/graphio"
	"github.com/katalvlaran/kcover/internal/config"
	"github.com/katalvlaran/kcover/kcenter"
)

type solveCmd struct {
	root *root

	configPath string
	flags      config.Config
}

func (s *solveCmd) CobraCommand() *cobra.Command {
	const (
		solveUse   = "solve [graph-file]"
		solveShort = "select centers covering every vertex within --radius."
		solveLong  = "solve loads a graph (map literal such as {1={2=10}, 2={}} or a .yaml/.yml/.json document) " +
			"and prints the selected centers as a sorted list. Settings come from --config, " +
			"overridden by flags, overridden by the graph-file argument."
	)

	s.flags = config.Default()
	cmd := &cobra.Command{
		Use:   solveUse,
		Short: solveShort,
		Long:  solveLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}

			return s.run(cmd, cfg)
		},
	}
	s.AddFlags(cmd.Flags())

	return cmd
}

func (s *solveCmd) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.configPath, "config", "", "YAML file with solve settings")
	flags.Int64VarP(&s.flags.Radius, "radius", "r", s.flags.Radius, "coverage radius")
	flags.IntVarP(&s.flags.Workers, "workers", "w", s.flags.Workers, "concurrent reachability searches")
	flags.StringVar(&s.flags.Strategy, "strategy", s.flags.Strategy, "search strategy: worklist or heap")
	flags.BoolVar(&s.flags.Verify, "verify", s.flags.Verify, "check that the centers cover every vertex")
	flags.BoolVar(&s.flags.Assign, "assign", s.flags.Assign, "print the nearest center of every vertex")
}

// resolve layers the config file, changed flags and the positional argument.
func (s *solveCmd) resolve(flags *pflag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		if cfg, err = config.Read(s.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("radius") {
		cfg.Radius = s.flags.Radius
	}
	if flags.Changed("workers") {
		cfg.Workers = s.flags.Workers
	}
	if flags.Changed("strategy") {
		cfg.Strategy = s.flags.Strategy
	}
	if flags.Changed("verify") {
		cfg.Verify = s.flags.Verify
	}
	if flags.Changed("assign") {
		cfg.Assign = s.flags.Assign
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

func (s *solveCmd) run(cmd *cobra.Command, cfg config.Config) error {
	log := s.root.log.WithName("solve")
	out := cmd.OutOrStdout()

	log.V(1).Info("loading graph", "path", cfg.Input)
	g, err := graphio.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}
	log.V(1).Info("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	opts := []kcenter.Option{
		kcenter.WithWorkers(cfg.Workers),
		kcenter.WithStrategy(cfg.SearchStrategy()),
		kcenter.WithLogger(log),
		kcenter.WithContext(cmd.Context()),
	}
	res, err := kcenter.Solve(g, cfg.Radius, opts...)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	var line strings.Builder
	if err = graphio.FormatCenters(&line, res.Centers()); err != nil {
		return err
	}
	s.root.colors.center.Fprintln(out, strings.TrimSuffix(line.String(), "\n"))

	if cfg.Verify {
		if err = kcenter.Verify(g, cfg.Radius, res.Order, kcenter.WithStrategy(cfg.SearchStrategy())); err != nil {
			return fmt.Errorf("verifying: %w", err)
		}
		s.root.colors.ok.Fprintf(out, "verified: %d vertices within radius %d of %d centers\n",
			g.VertexCount(), cfg.Radius, res.Len())
	}

	if cfg.Assign {
		owner, err := kcenter.Assign(g, cfg.Radius, res.Order, kcenter.WithStrategy(cfg.SearchStrategy()))
		if err != nil {
			return fmt.Errorf("assigning: %w", err)
		}
		s.printAssignment(out, g, res, owner)
	}

	return nil
}

// printAssignment writes one "vertex -> center" line per vertex, centers highlighted.
func (s *solveCmd) printAssignment(out io.Writer, g core.Graph, res *kcenter.Result, owner map[int]int) {
	for _, v := range g.Vertices() {
		if res.Contains(v) {
			s.root.colors.center.Fprintf(out, "%d -> %d\n", v, owner[v])
			continue
		}
		fmt.Fprintf(out, "%d -> %d\n", v, owner[v])
	}
}
