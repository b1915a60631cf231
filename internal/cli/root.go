// Package cli implements the kcover command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kcover/internal/config"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
	// ReturnCodeUsage is passed to os.Exit() for bad flags, arguments or settings.
	ReturnCodeUsage = 2
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func isUsage(err error) bool {
	var ue *usageError

	return errors.As(err, &ue) || errors.Is(err, config.ErrInvalidConfig)
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string) int {
	r := newRoot()
	cmd := r.CobraCommand()
	cmd.SetIn(inReader)
	cmd.SetOut(outWriter)
	cmd.SetErr(errWriter)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ReturnCodeSuccess
	}
	r.colors.fail.Fprintf(errWriter, "Error: %v\n", err)
	if isUsage(err) {
		fmt.Fprintf(errWriter, "Run '%s --help' for usage.\n", cmd.Name())
		return ReturnCodeUsage
	}

	return ReturnCodeError
}

// CobraRoot returns the kcover command tree.
func CobraRoot() *cobra.Command {
	return newRoot().CobraCommand()
}

// root carries the persistent flags and what is derived from them.
type root struct {
	verbosity int
	noColor   bool

	log    logr.Logger
	colors palette
}

func newRoot() *root {
	return &root{
		log:    logr.Discard(),
		colors: newPalette(false),
	}
}

func (r *root) CobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kcover",
		Short: "choose centers so every vertex is within a radius of one",
		Long: "kcover reads a weighted directed graph and greedily selects a set of centers " +
			"such that every vertex lies within the given radius of a center.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for \"kcover\"", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if r.verbosity < 0 {
				return usageErrorf("-v must be >= 0, got %d", r.verbosity)
			}
			r.colors = newPalette(r.noColor)
			r.log = newLogger(cmd.ErrOrStderr(), r.verbosity)

			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	r.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		(&solveCmd{root: r}).CobraCommand(),
		(&generateCmd{root: r}).CobraCommand(),
	)

	return cmd
}

func (r *root) AddFlags(flags *pflag.FlagSet) {
	flags.IntVarP(
		&r.verbosity,
		"verbosity", "v",
		r.verbosity,
		"log verbosity on stderr (0 quiet, 1 progress, 2 every selected center)",
	)
	flags.BoolVar(
		&r.noColor,
		"no-color",
		r.noColor,
		"disable colored output",
	)
}

// palette holds the output colors. Colors are also off whenever the terminal
// does not support them.
type palette struct {
	center *color.Color
	fail   *color.Color
	ok     *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		center: color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed),
		ok:     color.New(color.FgCyan),
	}
	if noColor {
		p.center.DisableColor()
		p.fail.DisableColor()
		p.ok.DisableColor()
	}

	return p
}
