// SPDX-License-Identifier: MIT

// Package generate provides the generate command, which writes one of the
// builder fixtures as a graph file.
package generate

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/builder"
	"github.com/katalvlaran/ncd/cmd/ncd/shared"
	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/core"
)

// Flag names.
const (
	NFlag        = "n"
	KFlag        = "k"
	SizeFlag     = "size"
	PFlag        = "p"
	PInFlag      = "p-in"
	POutFlag     = "p-out"
	SeedFlag     = "seed"
	DirectedFlag = "directed"
	FormatFlag   = "format"
	OutFlag      = "out"
	WeightsFlag  = "weights"
	IDWidthFlag  = "id-width"
)

// params carries the parsed generator flags.
type params struct {
	n, k, size int
	p, pIn     float64
	pOut       float64
}

// generators maps a fixture name to its constructor.
var generators = map[string]func(p params) builder.Constructor{
	"karate":   func(params) builder.Constructor { return builder.KarateClub() },
	"petersen": func(params) builder.Constructor { return builder.Petersen() },
	"tutte":    func(params) builder.Constructor { return builder.Tutte() },
	"ring":     func(p params) builder.Constructor { return builder.RingOfCliques(p.k, p.size) },
	"planted":  func(p params) builder.Constructor { return builder.PlantedPartition(p.k, p.size, p.pIn, p.pOut) },
	"random":   func(p params) builder.Constructor { return builder.RandomSparse(p.n, p.p) },
	"cycle":    func(p params) builder.Constructor { return builder.Cycle(p.n) },
	"path":     func(p params) builder.Constructor { return builder.Path(p.n) },
	"star":     func(p params) builder.Constructor { return builder.Star(p.n) },
	"complete": func(p params) builder.Constructor { return builder.Complete(p.n) },
}

// Names returns the supported fixture names, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GetCommand returns the generate command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Write a fixture graph",
		ArgsUsage: "<" + strings.Join(Names(), "|") + ">",
		Action:    action,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: NFlag, Usage: "Vertex count (cycle, path, star, complete, random)", Value: 10},
			&cli.IntFlag{Name: KFlag, Usage: "Number of cliques or groups (ring, planted)", Value: 4},
			&cli.IntFlag{Name: SizeFlag, Usage: "Clique or group size (ring, planted)", Value: 5},
			&cli.FloatFlag{Name: PFlag, Usage: "Edge probability (random)", Value: 0.1},
			&cli.FloatFlag{Name: PInFlag, Usage: "Intra-group edge probability (planted)", Value: 0.5},
			&cli.FloatFlag{Name: POutFlag, Usage: "Inter-group edge probability (planted)", Value: 0.05},
			&cli.IntFlag{Name: SeedFlag, Usage: "RNG seed for random fixtures", Value: community.DefaultSeed},
			&cli.BoolFlag{Name: DirectedFlag, Aliases: []string{"d"}, Usage: "Build a directed graph"},
			&cli.StringFlag{Name: FormatFlag, Aliases: []string{"f"}, Usage: "edgelist|json|yaml (default: from --out extension)"},
			&cli.StringFlag{Name: OutFlag, Aliases: []string{"o"}, Usage: "Output file (default: stdout)"},
			&cli.StringFlag{Name: WeightsFlag, Usage: "Make the graph weighted with weights drawn from lo:hi (a single value is constant)"},
			&cli.IntFlag{Name: IDWidthFlag, Usage: "Zero-pad vertex IDs to this width so they sort numerically"},
		},
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected one fixture name: %s", strings.Join(Names(), ", "))
	}
	name := strings.ToLower(cmd.Args().First())
	gen, ok := generators[name]
	if !ok {
		return fmt.Errorf("unknown fixture %q; want one of %s", name, strings.Join(Names(), ", "))
	}

	out := cmd.String(OutFlag)
	format, err := outputFormat(cmd.String(FormatFlag), out)
	if err != nil {
		return err
	}

	p := params{
		n:    int(cmd.Int(NFlag)),
		k:    int(cmd.Int(KFlag)),
		size: int(cmd.Int(SizeFlag)),
		p:    cmd.Float(PFlag),
		pIn:  cmd.Float(PInFlag),
		pOut: cmd.Float(POutFlag),
	}
	seed := cmd.Int(SeedFlag)
	if seed == 0 {
		seed = community.DefaultSeed
	}
	gopts := []core.GraphOption{core.WithDirected(cmd.Bool(DirectedFlag))}
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if v := cmd.String(WeightsFlag); v != "" {
		fn, err := parseWeights(v)
		if err != nil {
			return err
		}
		gopts = append(gopts, core.WithWeighted())
		bopts = append(bopts, builder.WithWeightFn(fn))
	}
	if w := cmd.Int(IDWidthFlag); w > 0 {
		bopts = append(bopts, builder.WithIDScheme(builder.PaddedIDFn(int(w))))
	}

	g, err := builder.Build(gen(p), gopts, bopts...)
	if err != nil {
		return err
	}

	w, closeFn, err := shared.CreateOutput(out, cmd.Root().Writer)
	if err != nil {
		return err
	}
	err = converters.WriteGraph(w, g, format)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if out != "" && out != shared.Stdio {
		shared.InfoMsg("wrote %s (%d vertices, %d edges) to %s\n", name, g.VertexCount(), g.EdgeCount(), out)
	}

	return nil
}

// parseWeights reads "lo:hi" or a single constant weight.
func parseWeights(s string) (builder.WeightFn, error) {
	lo, hi, found := strings.Cut(s, ":")
	a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("--%s %q: %w", WeightsFlag, s, err)
	}
	b := a
	if found {
		if b, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
			return nil, fmt.Errorf("--%s %q: %w", WeightsFlag, s, err)
		}
	}
	if !(a >= 0) || !(b >= a) || math.IsInf(b, 1) {
		return nil, fmt.Errorf("--%s %q: need finite 0 <= lo <= hi", WeightsFlag, s)
	}
	if a == b {
		return builder.ConstantWeightFn(a), nil
	}

	return builder.UniformWeightFn(a, b), nil
}

// outputFormat resolves --format, falling back to the --out extension and
// then to an edge list.
func outputFormat(format, out string) (converters.Format, error) {
	if format != "" {
		f, err := converters.ParseFormat(format)
		if err != nil {
			return "", err
		}
		if f == converters.FormatText {
			return "", fmt.Errorf("text is not a graph format")
		}
		return f, nil
	}
	if out == "" || out == shared.Stdio {
		return converters.FormatEdgeList, nil
	}

	return converters.FormatFromPath(out)
}
