// SPDX-License-Identifier: MIT

// Package runs provides the runs command for browsing the run history.
package runs

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/cmd/ncd/shared"
	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/pipeline"
	"github.com/katalvlaran/ncd/store"
)

// LimitFlag is the name of the flag capping runs list.
const LimitFlag = "limit"

// FormatFlag is the name of the output format flag of runs show.
const FormatFlag = "format"

// GetCommand returns the runs command with its list and show subcommands.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Inspect saved detection runs",
		Commands: []*cli.Command{
			listCommand(),
			showCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the most recent runs",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: LimitFlag, Aliases: []string{"n"}, Usage: "Maximum number of runs", Value: 20},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withStore(cmd, func(st store.Store) error {
				recs, err := st.List(ctx, int(cmd.Int(LimitFlag)))
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tALGORITHM\tVERTICES\tEDGES\tCOMMUNITIES\tMODULARITY\tDURATION\tCREATED")
				for _, r := range recs {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.6f\t%s\t%s\n",
						r.ID, r.Algorithm, r.Vertices, r.Edges, r.Count, r.Modularity,
						r.Duration, r.CreatedAt.Local().Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one run with its communities",
		ArgsUsage: "<run-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: FormatFlag, Aliases: []string{"f"}, Usage: "text|json|yaml", Value: "text"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected one run ID")
			}
			format, err := converters.ParseFormat(cmd.String(FormatFlag))
			if err != nil {
				return err
			}
			return withStore(cmd, func(st store.Store) error {
				rec, err := st.Get(ctx, cmd.Args().First())
				if err != nil {
					return err
				}
				return converters.WriteResult(cmd.Root().Writer, pipeline.RecordDocument(rec), format)
			})
		},
	}
}

// withStore opens the configured store for the duration of fn.
func withStore(cmd *cli.Command, fn func(st store.Store) error) error {
	cfg, err := shared.LoadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := shared.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(st)
}
