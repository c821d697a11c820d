package cli

import (
	"iter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmatch/ismags"
)

type isoOptions struct {
	noSymmetry    bool
	largestCommon bool
	nodeAttr      string
	edgeAttr      string
	limit         int
}

func (o *isoOptions) addFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&o.noSymmetry, "no-symmetry", false, "report mappings that differ only by a subgraph symmetry")
	flags.BoolVar(&o.largestCommon, "largest-common", false, "search the largest common induced subgraph instead")
	flags.StringVar(&o.nodeAttr, "node-attr", "", "only match nodes with equal values of this attribute")
	flags.StringVar(&o.edgeAttr, "edge-attr", "", "only match edges with equal values of this attribute")
	flags.IntVar(&o.limit, "limit", 0, "stop after this many mappings (0 for all)")
}

func (o *isoOptions) options() []ismags.Option {
	opts := []ismags.Option{ismags.WithLogger(log.StandardLogger())}
	if o.nodeAttr != "" {
		opts = append(opts, ismags.WithNodeMatch(ismags.CategoricalNodeMatch(o.nodeAttr, nil)))
	}
	if o.edgeAttr != "" {
		opts = append(opts, ismags.WithEdgeMatch(ismags.CategoricalEdgeMatch(o.edgeAttr, nil)))
	}

	return opts
}

type isoReport struct {
	Count    int              `yaml:"count"`
	Mappings []ismags.Mapping `yaml:"mappings"`
}

func newIsoCommand(root *rootOptions) *cobra.Command {
	opts := &isoOptions{}
	cmd := &cobra.Command{
		Use:   "iso GRAPH SUBGRAPH",
		Short: "Enumerate induced subgraph isomorphisms from SUBGRAPH into GRAPH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return errors.New("cli: only one graph can be read from stdin")
			}
			if opts.limit < 0 {
				return errors.Errorf("cli: --limit must not be negative, got %d", opts.limit)
			}
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}
			sub, err := readGraph(cmd, args[1])
			if err != nil {
				return err
			}

			m, err := ismags.New(g, sub, opts.options()...)
			if err != nil {
				return err
			}
			var seq iter.Seq[ismags.Mapping]
			if opts.largestCommon {
				seq = m.LargestCommonSubgraph(!opts.noSymmetry)
			} else {
				seq = m.FindIsomorphisms(!opts.noSymmetry)
			}

			ctx := cmd.Context()
			rep := isoReport{Mappings: []ismags.Mapping{}}
			for mp := range seq {
				if err := ctx.Err(); err != nil {
					return errors.Wrap(err, "cli: search interrupted")
				}
				rep.Mappings = append(rep.Mappings, mp)
				if opts.limit > 0 && len(rep.Mappings) == opts.limit {
					log.Debugf("Stopping at --limit %d", opts.limit)
					break
				}
			}
			rep.Count = len(rep.Mappings)

			return root.report(cmd, rep)
		},
	}
	opts.addFlags(cmd.Flags())

	return cmd
}
