// SPDX-License-Identifier: MIT

// Package serve provides the serve command, which runs the HTTP API.
package serve

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/cmd/ncd/shared"
	"github.com/katalvlaran/ncd/metrics"
	"github.com/katalvlaran/ncd/pipeline"
	"github.com/katalvlaran/ncd/server"
)

// AddrFlag is the name of the flag overriding server.address.
const AddrFlag = "addr"

// NoHistoryFlag is the name of the flag disabling the run store.
const NoHistoryFlag = "no-history"

// GetCommand returns the serve command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the detection HTTP API",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if v := cmd.String(AddrFlag); v != "" {
				cfg.Server.Address = v
			}
			log, err := shared.NewLogger(cfg)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			rec, err := metrics.New(reg)
			if err != nil {
				return err
			}

			runner := &pipeline.Runner{Recorder: rec, Logger: log}
			if !cmd.Bool(NoHistoryFlag) {
				st, err := shared.OpenStore(cfg)
				if err != nil {
					return err
				}
				defer st.Close()
				runner.Store = st
				log.Info("run history enabled", slog.String("path", cfg.Database.Path))
			}

			ctx, stop := shared.WithSignals(ctx)
			defer stop()

			return server.New(runner, reg, log).ListenAndServe(ctx, cfg.Server.Address)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: AddrFlag, Usage: "Listen address (default from config, :8080)"},
			&cli.BoolFlag{Name: NoHistoryFlag, Usage: "Do not open the SQLite run history"},
		},
	}
}
