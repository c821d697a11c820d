package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmatch/matching"
)

type matchOptions struct {
	maxCardinality bool
	min            bool
	weightKey      string
	defaultWeight  float64
}

func (o *matchOptions) addFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&o.maxCardinality, "max-cardinality", false, "only consider maximum-cardinality matchings")
	flags.BoolVar(&o.min, "min", false, "minimum-weight perfect-as-possible matching")
	flags.StringVar(&o.weightKey, "weight-key", "weight", "edge attribute holding the weight")
	flags.Float64Var(&o.defaultWeight, "default-weight", 1, "weight of edges without the attribute")
}

func (o *matchOptions) options() []matching.Option {
	opts := []matching.Option{
		matching.WithWeightKey(o.weightKey),
		matching.WithDefaultWeight(o.defaultWeight),
		matching.WithLogger(log.StandardLogger()),
	}
	if o.maxCardinality {
		opts = append(opts, matching.WithMaxCardinality())
	}

	return opts
}

type matchReport struct {
	Pairs   [][2]string `yaml:"pairs"`
	Size    int         `yaml:"size"`
	Weight  float64     `yaml:"weight"`
	Perfect bool        `yaml:"perfect"`
}

func newMatchCommand(root *rootOptions) *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match FILE",
		Short: "Compute a maximum-weight (or minimum-weight) matching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}

			solve := matching.MaxWeightMatching
			if opts.min {
				solve = matching.MinWeightMatching
			}
			pairs, err := solve(g, opts.options()...)
			if err != nil {
				return err
			}
			weight, err := pairs.Weight(g, opts.options()...)
			if err != nil {
				return err
			}
			perfect, err := matching.IsPerfectMatching(g, pairs)
			if err != nil {
				return err
			}

			rep := matchReport{Pairs: [][2]string{}, Size: len(pairs), Weight: weight, Perfect: perfect}
			for _, p := range pairs {
				rep.Pairs = append(rep.Pairs, [2]string{p.U, p.V})
			}
			log.Debugf("Matched %d pairs with weight %g", rep.Size, rep.Weight)

			return root.report(cmd, rep)
		},
	}
	opts.addFlags(cmd.Flags())

	return cmd
}
