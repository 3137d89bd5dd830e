// SPDX-License-Identifier: MIT

// Package shared holds the global flags and the setup helpers every ncd
// subcommand uses: configuration, logging, the run store and console output.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryGlobal = "global"

// ConfigFlag is the name of the flag pointing to a YAML config file.
const ConfigFlag = "config"

// LogLevelFlag is the name of the flag overriding logging.level.
const LogLevelFlag = "log-level"

// LogFormatFlag is the name of the flag overriding logging.format.
const LogFormatFlag = "log-format"

// DBFlag is the name of the flag overriding database.path.
const DBFlag = "db"

// GetGlobalFlags returns the flags accepted before any subcommand.
func GetGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     ConfigFlag,
			Aliases:  []string{"c"},
			Usage:    "Path to a YAML configuration file",
			Category: categoryGlobal,
		},
		&cli.StringFlag{
			Name:     LogLevelFlag,
			Usage:    "Log level: debug|info|warn|error",
			Category: categoryGlobal,
		},
		&cli.StringFlag{
			Name:     LogFormatFlag,
			Usage:    "Log format: text|json",
			Category: categoryGlobal,
		},
		&cli.StringFlag{
			Name:     DBFlag,
			Usage:    "Path to the SQLite run history",
			Category: categoryGlobal,
		},
	}
}
