// Package cli implements the lvmatch command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/graphio"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	output  string
}

func (o *rootOptions) addFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&o.output, "output", "o", "", "write the result to this file instead of stdout")
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := newRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "lvmatch",
		Short:        "Matching, planarity and subgraph isomorphism on YAML graph files.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	opts.addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newMatchCommand(opts),
		newPlanarCommand(opts),
		newIsoCommand(opts),
		newGenCommand(opts),
	)

	return rootCmd
}

// readGraph loads a graph file; "-" reads standard input.
func readGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	if path == "-" {
		log.Debugf("Reading graph from stdin")
		return graphio.Read(cmd.InOrStdin())
	}
	log.Debugf("Reading graph from %s", path)

	return graphio.ReadFile(path)
}

// emit writes fn's output to --output, or to the command's stdout.
func (o *rootOptions) emit(cmd *cobra.Command, fn func(w io.Writer) error) error {
	if o.output == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(o.output)
	if err != nil {
		return errors.Wrapf(err, "cli: create %s", o.output)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	log.Debugf("Wrote %s", o.output)

	return errors.Wrapf(f.Close(), "cli: close %s", o.output)
}

// report writes v as YAML.
func (o *rootOptions) report(cmd *cobra.Command, v interface{}) error {
	return o.emit(cmd, func(w io.Writer) error { return graphio.Encode(w, v) })
}
