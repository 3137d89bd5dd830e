// SPDX-License-Identifier: MIT

// Package detect provides the detect command, which runs community detection
// on a graph file and prints the partition.
package detect

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/cmd/ncd/shared"
	"github.com/katalvlaran/ncd/config"
	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/pipeline"
)

const categoryLouvain = "louvain"
const categoryLPA = "lpa"
const categoryIO = "input/output"

// Flag names.
const (
	AlgorithmFlag   = "algorithm"
	SeedFlag        = "seed"
	ResolutionFlag  = "resolution"
	ThresholdFlag   = "threshold"
	MaxLevelsFlag   = "max-levels"
	ModeFlag        = "mode"
	AlphaFlag       = "alpha"
	BetaFlag        = "beta"
	MaxSweepsFlag   = "max-sweeps"
	FormatFlag      = "format"
	InputFormatFlag = "input-format"
	DirectedFlag    = "directed"
	DotFlag         = "dot"
	SaveFlag        = "save"
)

// GetCommand returns the detect command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "Detect communities in a graph file",
		ArgsUsage: "<graph-file|->",
		Description: "Reads an edge list (.txt/.edges), JSON or YAML graph and prints the communities.\n" +
			"Unset detector flags fall back to the config file and NCD_* variables.",
		Action: action,
		Flags:  getFlags(),
	}
}

func getFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: AlgorithmFlag, Aliases: []string{"a"}, Usage: "louvain|lpa"},
		&cli.IntFlag{Name: SeedFlag, Usage: "RNG seed (0 selects the default seed)"},
		&cli.FloatFlag{Name: ResolutionFlag, Usage: "Louvain resolution γ > 0", Category: categoryLouvain},
		&cli.FloatFlag{Name: ThresholdFlag, Usage: "Louvain minimum modularity gain per level", Category: categoryLouvain},
		&cli.IntFlag{Name: MaxLevelsFlag, Usage: "Louvain level cap (0 = unbounded)", Category: categoryLouvain},
		&cli.StringFlag{Name: ModeFlag, Usage: "LPA mode: async|semi", Category: categoryLPA},
		&cli.FloatFlag{Name: AlphaFlag, Usage: "LPA in-edge factor on directed graphs", Category: categoryLPA},
		&cli.FloatFlag{Name: BetaFlag, Usage: "LPA out-edge factor on directed graphs", Category: categoryLPA},
		&cli.IntFlag{Name: MaxSweepsFlag, Usage: "LPA sweep cap", Category: categoryLPA},
		&cli.StringFlag{Name: FormatFlag, Aliases: []string{"f"}, Usage: "Output format: text|json|yaml", Value: "text", Category: categoryIO},
		&cli.StringFlag{Name: InputFormatFlag, Usage: "Input format: edgelist|json|yaml (default: from extension)", Category: categoryIO},
		&cli.BoolFlag{Name: DirectedFlag, Aliases: []string{"d"}, Usage: "Treat the input as directed", Category: categoryIO},
		&cli.StringFlag{Name: DotFlag, Usage: "Also write a Graphviz DOT file coloured by community", Category: categoryIO},
		&cli.BoolFlag{Name: SaveFlag, Usage: "Persist the run to the SQLite history", Category: categoryIO},
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one graph file, got %d arguments", cmd.NArg())
	}
	out, err := converters.ParseFormat(cmd.String(FormatFlag))
	if err != nil {
		return err
	}
	if out == converters.FormatEdgeList {
		return fmt.Errorf("--%s: edgelist is not a result format", FormatFlag)
	}

	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := shared.NewLogger(cfg)
	if err != nil {
		return err
	}
	det := applyFlags(cmd, cfg.Detection)

	g, err := shared.ReadGraphFile(cmd.Args().First(), cmd.String(InputFormatFlag), os.Stdin, cmd.Bool(DirectedFlag))
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{Logger: log}
	if cmd.Bool(SaveFlag) {
		st, err := shared.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		runner.Store = st
	}

	run, err := runner.Run(ctx, g, det)
	if err != nil {
		return err
	}

	if path := cmd.String(DotFlag); path != "" {
		w, closeFn, err := shared.CreateOutput(path, cmd.Root().Writer)
		if err != nil {
			return err
		}
		err = converters.WriteDOT(w, g, run.Result.Node2Com)
		if cerr := closeFn(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	doc := run.Document()
	if !cmd.Bool(SaveFlag) {
		doc.RunID = ""
	}

	return converters.WriteResult(cmd.Root().Writer, doc, out)
}

// applyFlags overlays explicitly set flags on the configured detection.
func applyFlags(cmd *cli.Command, d config.Detection) config.Detection {
	if cmd.IsSet(AlgorithmFlag) {
		d.Algorithm = cmd.String(AlgorithmFlag)
	}
	if cmd.IsSet(SeedFlag) {
		d.Seed = cmd.Int(SeedFlag)
	}
	if cmd.IsSet(ResolutionFlag) {
		d.Louvain.Resolution = cmd.Float(ResolutionFlag)
	}
	if cmd.IsSet(ThresholdFlag) {
		d.Louvain.Threshold = cmd.Float(ThresholdFlag)
	}
	if cmd.IsSet(MaxLevelsFlag) {
		d.Louvain.MaxLevels = int(cmd.Int(MaxLevelsFlag))
	}
	if cmd.IsSet(ModeFlag) {
		d.LPA.Mode = cmd.String(ModeFlag)
	}
	if cmd.IsSet(AlphaFlag) {
		d.LPA.Alpha = cmd.Float(AlphaFlag)
	}
	if cmd.IsSet(BetaFlag) {
		d.LPA.Beta = cmd.Float(BetaFlag)
	}
	if cmd.IsSet(MaxSweepsFlag) {
		d.LPA.MaxSweeps = int(cmd.Int(MaxSweepsFlag))
	}

	return d
}
