// SPDX-License-Identifier: MIT

// Command ncd detects communities in graphs from the command line or over HTTP.
package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/cmd/ncd/detect"
	"github.com/katalvlaran/ncd/cmd/ncd/generate"
	"github.com/katalvlaran/ncd/cmd/ncd/runs"
	"github.com/katalvlaran/ncd/cmd/ncd/serve"
	"github.com/katalvlaran/ncd/cmd/ncd/shared"
	"github.com/katalvlaran/ncd/cmd/ncd/version"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "ncd",
		Usage: "network community detection (Louvain, label propagation)",
		Flags: shared.GetGlobalFlags(),
		Commands: []*cli.Command{
			detect.GetCommand(),
			generate.GetCommand(),
			serve.GetCommand(),
			runs.GetCommand(),
			version.GetCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		shared.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
