package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/planarity"
)

type planarReport struct {
	Planar         bool                `yaml:"planar"`
	Embedding      map[string][]string `yaml:"embedding,omitempty"`
	Counterexample [][2]string         `yaml:"counterexample,omitempty"`
}

func newPlanarCommand(root *rootOptions) *cobra.Command {
	var counterexample bool
	cmd := &cobra.Command{
		Use:   "planar FILE",
		Short: "Test planarity and print an embedding or a Kuratowski subgraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}

			opts := []planarity.Option{planarity.WithLogger(log.StandardLogger())}
			if counterexample {
				opts = append(opts, planarity.WithCounterexample())
			}
			res, err := planarity.CheckPlanarity(g, opts...)
			if err != nil {
				return err
			}

			rep := planarReport{Planar: res.Planar}
			if res.Embedding != nil {
				if rep.Embedding, err = res.Embedding.Data(); err != nil {
					return err
				}
			}
			if res.Counterexample != nil {
				for _, e := range res.Counterexample.Edges() {
					rep.Counterexample = append(rep.Counterexample, [2]string{e.From, e.To})
				}
			}

			return root.report(cmd, rep)
		},
	}
	cmd.Flags().BoolVar(&counterexample, "counterexample", false, "print a Kuratowski subgraph when the graph is not planar")

	return cmd
}
