package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/core"
	"github.com/katalvlaran/lvmatch/graphio"
)

type genOptions struct {
	seed    int64
	weights string
}

func (o *genOptions) addFlags(flags *pflag.FlagSet) {
	flags.Int64Var(&o.seed, "seed", 1, "random seed for random graphs and weights")
	flags.StringVar(&o.weights, "weights", "", "edge weights: uniform:MIN:MAX, int:MIN:MAX or const:W")
}

// weightOption parses --weights. An empty value leaves the graph unweighted.
func (o *genOptions) weightOption() (builder.BuilderOption, bool, error) {
	if o.weights == "" {
		return nil, false, nil
	}
	parts := strings.Split(o.weights, ":")
	nums := make([]float64, 0, len(parts)-1)
	for _, s := range parts[1:] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "cli: --weights %q", o.weights)
		}
		nums = append(nums, f)
	}

	switch {
	case parts[0] == "const" && len(nums) == 1:
		return builder.WithConstantWeight(nums[0]), true, nil
	case parts[0] == "uniform" && len(nums) == 2 && nums[0] <= nums[1]:
		return builder.WithUniformWeight(nums[0], nums[1]), true, nil
	case parts[0] == "int" && len(nums) == 2 && nums[0] <= nums[1] &&
		nums[0] == float64(int(nums[0])) && nums[1] == float64(int(nums[1])):
		return builder.WithIntWeight(int(nums[0]), int(nums[1])), true, nil
	}

	return nil, false, errors.Errorf("cli: bad --weights %q", o.weights)
}

// generator describes one KIND of the gen command.
type generator struct {
	usage string
	nargs int
	build func(args []string) (builder.Constructor, error)
}

func intArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "cli: argument %d", i+1)
		}
		out[i] = n
	}

	return out, nil
}

func sized(fn func(n int) builder.Constructor) func([]string) (builder.Constructor, error) {
	return func(args []string) (builder.Constructor, error) {
		n, err := intArgs(args)
		if err != nil {
			return nil, err
		}
		return fn(n[0]), nil
	}
}

func sized2(fn func(a, b int) builder.Constructor) func([]string) (builder.Constructor, error) {
	return func(args []string) (builder.Constructor, error) {
		n, err := intArgs(args)
		if err != nil {
			return nil, err
		}
		return fn(n[0], n[1]), nil
	}
}

var generators = map[string]generator{
	"complete":  {"complete N", 1, sized(builder.Complete)},
	"cycle":     {"cycle N", 1, sized(builder.Cycle)},
	"path":      {"path N", 1, sized(builder.Path)},
	"star":      {"star N", 1, sized(builder.Star)},
	"wheel":     {"wheel N", 1, sized(builder.Wheel)},
	"grid":      {"grid ROWS COLS", 2, sized2(builder.Grid)},
	"bipartite": {"bipartite N1 N2", 2, sized2(builder.CompleteBipartite)},
	"petersen": {"petersen", 0, func([]string) (builder.Constructor, error) {
		return builder.Petersen(), nil
	}},
	"platonic": {"platonic NAME", 1, func(args []string) (builder.Constructor, error) {
		name, err := builder.ParsePlatonic(args[0])
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(name, false), nil
	}},
	"random": {"random N P", 2, func(args []string) (builder.Constructor, error) {
		n, err := intArgs(args[:1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "cli: argument 2")
		}
		return builder.RandomSparse(n[0], p), nil
	}},
}

func generatorUsage() string {
	kinds := make([]string, 0, len(generators))
	for _, k := range []string{"complete", "cycle", "path", "star", "wheel", "grid", "bipartite", "petersen", "platonic", "random"} {
		kinds = append(kinds, "  "+generators[k].usage)
	}

	return strings.Join(kinds, "\n")
}

func newGenCommand(root *rootOptions) *cobra.Command {
	opts := &genOptions{}
	cmd := &cobra.Command{
		Use:   "gen KIND [ARGS]",
		Short: "Write a generated fixture graph as YAML",
		Long:  "Write a generated fixture graph as YAML. Kinds:\n" + generatorUsage(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return errors.Errorf("cli: unknown kind %q", args[0])
			}
			if len(args)-1 != gen.nargs {
				return errors.Errorf("cli: usage: gen %s", gen.usage)
			}
			ctor, err := gen.build(args[1:])
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{builder.WithSeed(opts.seed)}
			var gopts []core.GraphOption
			wopt, weighted, err := opts.weightOption()
			if err != nil {
				return err
			}
			if weighted {
				bopts = append(bopts, wopt)
				gopts = append(gopts, core.WithWeighted())
			}

			g, err := builder.BuildGraph(gopts, bopts, ctor)
			if err != nil {
				return errors.WithStack(err)
			}
			log.Debugf("Generated %s with %d vertices and %d edges", args[0], g.VertexCount(), g.EdgeCount())

			return root.emit(cmd, func(w io.Writer) error { return graphio.Write(w, g) })
		},
	}
	opts.addFlags(cmd.Flags())

	return cmd
}
