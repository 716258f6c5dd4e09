// Package config holds the settings shared by the CLI and the HTTP server.
//
// Precedence, lowest first: Default, a YAML file (Load), a .env file and
// MAZE_* environment variables (ApplyEnv), then command-line flags applied
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/Naveen-Savi08/Maze-Solver/mazegen"
	"github.com/Naveen-Savi08/Maze-Solver/render"
	"github.com/Naveen-Savi08/Maze-Solver/solver"
)

// Sentinel errors returned by Load, ApplyEnv and Validate.
var (
	ErrBadDimensions = errors.New("config: width must be >= 3 and height >= 1")
	ErrBadBarriers   = errors.New("config: barriers out of range")
	ErrBadCellSize   = errors.New("config: cell size must be positive")
	ErrBadLogFormat  = errors.New("config: log format must be text or json")
	ErrBadEnv        = errors.New("config: malformed environment variable")
)

// Config is the full runtime configuration.
type Config struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Barriers  int    `json:"barriers"`
	Seed      int64  `json:"seed"`
	Algorithm string `json:"algorithm"`
	CellSize  int    `json:"cellSize"`
	Addr      string `json:"addr"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns the 6×6, four-barrier board solved with every algorithm.
func Default() Config {
	return Config{
		Width:     mazegen.DefaultWidth,
		Height:    mazegen.DefaultHeight,
		Barriers:  mazegen.DefaultBarriers,
		Algorithm: "all",
		CellSize:  render.DefaultCellSize,
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML file over Default. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrBadDimensions, c.Width, c.Height)
	}
	if c.Barriers < 0 || c.Barriers > c.Width*c.Height-2 {
		return fmt.Errorf("%w: %d on %dx%d", ErrBadBarriers, c.Barriers, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCellSize, c.CellSize)
	}
	if _, err := c.Algorithms(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrBadLogFormat, c.LogFormat)
	}

	return nil
}

// Algorithms resolves the Algorithm field; "all" (or empty) means every
// algorithm in display order.
func (c Config) Algorithms() ([]solver.Algorithm, error) {
	if c.Algorithm == "" || c.Algorithm == "all" {
		return solver.Algorithms(), nil
	}
	a, err := solver.Parse(c.Algorithm)
	if err != nil {
		return nil, err
	}

	return []solver.Algorithm{a}, nil
}
