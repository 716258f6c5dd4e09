package mazegen

import (
	"errors"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// Sentinel errors returned by Generate.
var (
	// ErrBadDimensions indicates a board narrower than 3 columns or with no rows.
	ErrBadDimensions = errors.New("mazegen: width must be >= 3 and height >= 1")

	// ErrNegativeBarriers indicates a negative barrier count.
	ErrNegativeBarriers = errors.New("mazegen: barrier count must be non-negative")

	// ErrTooManyBarriers indicates more barriers than cells left after Start and Goal.
	ErrTooManyBarriers = errors.New("mazegen: too many barriers for board size")

	// ErrUnsolvable indicates every attempt left Goal unreachable.
	ErrUnsolvable = errors.New("mazegen: no solvable maze within attempt budget")

	// ErrBadAttempts indicates a non-positive attempt budget for WithRequireSolvable.
	ErrBadAttempts = errors.New("mazegen: attempts must be >= 1")
)

// Defaults for a fresh board.
const (
	DefaultWidth    = 6
	DefaultHeight   = 6
	DefaultBarriers = 4
)

// Maze is a generated board with its endpoints and the seed that produced it.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Coord
	Goal  grid.Coord
	Seed  int64
}

// Options configures Generate.
type Options struct {
	Width    int
	Height   int
	Barriers int
	Seed     int64

	// RequireSolvable retries until Goal is reachable from Start.
	RequireSolvable bool
	Connectivity    grid.Connectivity
	Attempts        int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 6×6 board with 4 barriers and a time-based seed.
func DefaultOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Barriers:     DefaultBarriers,
		Connectivity: grid.Conn4,
		Attempts:     1,
	}
}

// WithSize sets board dimensions. Bounds are checked by Generate.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithBarriers sets the number of Wall cells. Bounds are checked by Generate.
func WithBarriers(n int) Option {
	return func(o *Options) { o.Barriers = n }
}

// WithSeed fixes the random seed; 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRequireSolvable makes Generate retry up to attempts times until Goal
// is reachable from Start under conn.
// Panics with ErrBadAttempts if attempts < 1.
func WithRequireSolvable(conn grid.Connectivity, attempts int) Option {
	return func(o *Options) {
		if attempts < 1 {
			panic(ErrBadAttempts.Error())
		}
		o.RequireSolvable = true
		o.Connectivity = conn
		o.Attempts = attempts
	}
}
