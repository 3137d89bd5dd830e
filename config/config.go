// SPDX-License-Identifier: MIT

// Package config loads ncd settings: defaults, then an optional YAML file,
// then NCD_* environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ncd/logger"
)

// Algorithm names.
const (
	AlgorithmLouvain = "louvain"
	AlgorithmLPA     = "lpa"
)

// LPA modes.
const (
	ModeAsync = "async"
	ModeSemi  = "semi"
)

// Environment variables read by Load.
const (
	EnvAlgorithm  = "NCD_ALGORITHM"
	EnvSeed       = "NCD_SEED"
	EnvResolution = "NCD_RESOLUTION"
	EnvThreshold  = "NCD_THRESHOLD"
	EnvLPAMode    = "NCD_LPA_MODE"
	EnvLogLevel   = "NCD_LOG_LEVEL"
	EnvLogFormat  = "NCD_LOG_FORMAT"
	EnvDBPath     = "NCD_DB_PATH"
	EnvAddr       = "NCD_ADDR"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full ncd configuration.
type Config struct {
	Detection Detection      `yaml:"detection"`
	Logging   LoggingConfig  `yaml:"logging"`
	Database  DatabaseConfig `yaml:"database"`
	Server    ServerConfig   `yaml:"server"`
}

// Detection selects and tunes a detector. It is also the shape of the
// "detection" object in HTTP requests.
type Detection struct {
	Algorithm string        `yaml:"algorithm" json:"algorithm"`
	Seed      int64         `yaml:"seed" json:"seed"`
	Louvain   LouvainConfig `yaml:"louvain" json:"louvain"`
	LPA       LPAConfig     `yaml:"lpa" json:"lpa"`
}

// LouvainConfig tunes the Louvain detector.
type LouvainConfig struct {
	Resolution float64 `yaml:"resolution" json:"resolution"`
	Threshold  float64 `yaml:"threshold" json:"threshold"`
	MaxLevels  int     `yaml:"max_levels" json:"max_levels"`
}

// LPAConfig tunes the label propagation detector.
type LPAConfig struct {
	Mode      string  `yaml:"mode" json:"mode"`
	Alpha     float64 `yaml:"alpha" json:"alpha"`
	Beta      float64 `yaml:"beta" json:"beta"`
	MaxSweeps int     `yaml:"max_sweeps" json:"max_sweeps"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig represents the run-history store. An empty Path disables it.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig represents HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DefaultDetection returns the detector defaults.
func DefaultDetection() Detection {
	return Detection{
		Algorithm: AlgorithmLouvain,
		Seed:      123,
		Louvain: LouvainConfig{
			Resolution: 1,
			Threshold:  1e-7,
			MaxLevels:  0,
		},
		LPA: LPAConfig{
			Mode:      ModeAsync,
			Alpha:     1,
			Beta:      1,
			MaxSweeps: 10000,
		},
	}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Detection: DefaultDetection(),
		Logging: LoggingConfig{
			Level:  logger.InfoLevel,
			Format: logger.FormatText,
		},
		Database: DatabaseConfig{Path: "./ncd.db"},
		Server:   ServerConfig{Address: ":8080"},
	}
}

// Load reads the configuration from path (skipped when empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies NCD_* variables. Malformed numbers are errors.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvAlgorithm); v != "" {
		cfg.Detection.Algorithm = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLPAMode); v != "" {
		cfg.Detection.LPA.Mode = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		cfg.Detection.Seed = seed
	}
	if v := os.Getenv(EnvResolution); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvResolution, v, ErrInvalid)
		}
		cfg.Detection.Louvain.Resolution = f
	}
	if v := os.Getenv(EnvThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvThreshold, v, ErrInvalid)
		}
		cfg.Detection.Louvain.Threshold = f
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Address = v
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Detection.Validate(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %v: %w", err, ErrInvalid)
	}
	if err := logger.CheckFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %v: %w", err, ErrInvalid)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server.address cannot be empty: %w", ErrInvalid)
	}

	return nil
}

// Validate checks the detector settings.
func (d Detection) Validate() error {
	switch d.Algorithm {
	case AlgorithmLouvain, AlgorithmLPA:
	default:
		return fmt.Errorf("detection.algorithm %q not one of louvain|lpa: %w", d.Algorithm, ErrInvalid)
	}
	if !(d.Louvain.Resolution > 0) {
		return fmt.Errorf("detection.louvain.resolution must be > 0, got %g: %w", d.Louvain.Resolution, ErrInvalid)
	}
	if !(d.Louvain.Threshold >= 0) {
		return fmt.Errorf("detection.louvain.threshold must be >= 0, got %g: %w", d.Louvain.Threshold, ErrInvalid)
	}
	if d.Louvain.MaxLevels < 0 {
		return fmt.Errorf("detection.louvain.max_levels must be >= 0, got %d: %w", d.Louvain.MaxLevels, ErrInvalid)
	}
	switch d.LPA.Mode {
	case ModeAsync, ModeSemi:
	default:
		return fmt.Errorf("detection.lpa.mode %q not one of async|semi: %w", d.LPA.Mode, ErrInvalid)
	}
	if !(d.LPA.Alpha >= 0) || !(d.LPA.Beta >= 0) {
		return fmt.Errorf("detection.lpa.alpha/beta must be >= 0: %w", ErrInvalid)
	}
	if d.LPA.MaxSweeps <= 0 {
		return fmt.Errorf("detection.lpa.max_sweeps must be > 0, got %d: %w", d.LPA.MaxSweeps, ErrInvalid)
	}

	return nil
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}

	return string(out)
}
