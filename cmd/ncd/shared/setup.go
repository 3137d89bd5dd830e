// SPDX-License-Identifier: MIT

package shared

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/ncd/config"
	"github.com/katalvlaran/ncd/logger"
	"github.com/katalvlaran/ncd/store"
)

// LoadConfig loads --config, applies NCD_* variables and then the global
// flags, which take precedence.
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(ConfigFlag))
	if err != nil {
		return nil, err
	}
	if v := cmd.String(LogLevelFlag); v != "" {
		cfg.Logging.Level = v
	}
	if v := cmd.String(LogFormatFlag); v != "" {
		cfg.Logging.Format = v
	}
	if v := cmd.String(DBFlag); v != "" {
		cfg.Database.Path = v
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// NewLogger builds the stderr logger described by cfg.
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
}

// OpenStore opens the run history at cfg.Database.Path.
func OpenStore(cfg *config.Config) (*store.SQLiteStore, error) {
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path is empty; set --%s or %s", DBFlag, config.EnvDBPath)
	}

	return store.Open(cfg.Database.Path)
}
