package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvWidth     = "MAZE_WIDTH"
	EnvHeight    = "MAZE_HEIGHT"
	EnvBarriers  = "MAZE_BARRIERS"
	EnvSeed      = "MAZE_SEED"
	EnvAlgorithm = "MAZE_ALGORITHM"
	EnvCellSize  = "MAZE_CELL_SIZE"
	EnvAddr      = "MAZE_ADDR"
	EnvLogLevel  = "MAZE_LOG_LEVEL"
	EnvLogFormat = "MAZE_LOG_FORMAT"
)

// ApplyEnv loads the given .env files (".env" when none are named; missing
// files are skipped) and overrides c with any MAZE_* variable that is set.
// Variables already in the process environment win over .env entries.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var err error
	c.Width, err = getEnvAsIntWithDefault(EnvWidth, c.Width)
	if err != nil {
		return err
	}
	c.Height, err = getEnvAsIntWithDefault(EnvHeight, c.Height)
	if err != nil {
		return err
	}
	c.Barriers, err = getEnvAsIntWithDefault(EnvBarriers, c.Barriers)
	if err != nil {
		return err
	}
	c.CellSize, err = getEnvAsIntWithDefault(EnvCellSize, c.CellSize)
	if err != nil {
		return err
	}
	c.Seed, err = getEnvAsInt64WithDefault(EnvSeed, c.Seed)
	if err != nil {
		return err
	}

	c.Algorithm = getEnvWithDefault(EnvAlgorithm, c.Algorithm)
	c.Addr = getEnvWithDefault(EnvAddr, c.Addr)
	c.LogLevel = getEnvWithDefault(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnvWithDefault(EnvLogFormat, c.LogFormat)

	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q", ErrBadEnv, key, valueStr)
	}
	return value, nil
}

// getEnvAsInt64WithDefault is getEnvAsIntWithDefault for 64-bit values.
func getEnvAsInt64WithDefault(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %s=%q", ErrBadEnv, key, valueStr)
	}
	return value, nil
}
