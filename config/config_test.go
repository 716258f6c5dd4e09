package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-Savi08/Maze-Solver/config"
	"github.com/Naveen-Savi08/Maze-Solver/solver"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 6, cfg.Height)
	assert.Equal(t, 4, cfg.Barriers)
	assert.Equal(t, 50, cfg.CellSize)

	algs, err := cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, solver.Algorithms(), algs)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "maze.yaml", "width: 10\nheight: 4\nalgorithm: astar\nlogFormat: json\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, 4, cfg.Barriers, "missing keys keep defaults")
	assert.Equal(t, "json", cfg.LogFormat)

	algs, err := cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []solver.Algorithm{solver.AStar}, algs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "width: [1, 2\n")
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99
	data, err := cfg.Marshal()
	require.NoError(t, err)

	path := writeFile(t, "out.yaml", string(data))
	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvWidth, "12")
	t.Setenv(config.EnvSeed, "77")
	t.Setenv(config.EnvAlgorithm, "dfs")
	unsetEnv(t, config.EnvHeight)

	dotenv := writeFile(t, ".env", "MAZE_HEIGHT=9\nMAZE_WIDTH=3\n")

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(dotenv))
	assert.Equal(t, 12, cfg.Width, "process environment wins over .env")
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "dfs", cfg.Algorithm)
}

func TestApplyEnv_MissingFileAndBadValue(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))

	t.Setenv(config.EnvBarriers, "lots")
	assert.ErrorIs(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")), config.ErrBadEnv)
}

func TestApplyEnv_SeedIs64Bit(t *testing.T) {
	t.Setenv(config.EnvSeed, "9007199254740993")

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
	assert.Equal(t, int64(9007199254740993), cfg.Seed)

	t.Setenv(config.EnvSeed, "99999999999999999999")
	assert.ErrorIs(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")), config.ErrBadEnv)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"Narrow", func(c *config.Config) { c.Width = 2 }, config.ErrBadDimensions},
		{"NoRows", func(c *config.Config) { c.Height = 0 }, config.ErrBadDimensions},
		{"NegativeBarriers", func(c *config.Config) { c.Barriers = -1 }, config.ErrBadBarriers},
		{"TooManyBarriers", func(c *config.Config) { c.Barriers = 35 }, config.ErrBadBarriers},
		{"CellSize", func(c *config.Config) { c.CellSize = 0 }, config.ErrBadCellSize},
		{"Algorithm", func(c *config.Config) { c.Algorithm = "bfs" }, solver.ErrUnknownAlgorithm},
		{"LogFormat", func(c *config.Config) { c.LogFormat = "xml" }, config.ErrBadLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
