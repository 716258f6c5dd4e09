package mazegen

import (
	"fmt"
	"math/rand"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// Generate builds a random maze according to opts.
//
// Start lands in column 0 or 1, Goal in column Width-2 or Width-1, each on a
// random row; Goal is re-rolled while it coincides with Start. Barriers are
// then drawn one at a time from the Open cells that remain.
func Generate(opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Width < 3 || o.Height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, o.Width, o.Height)
	}
	if o.Barriers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeBarriers, o.Barriers)
	}
	if free := o.Width*o.Height - 2; o.Barriers > free {
		return nil, fmt.Errorf("%w: %d barriers, %d free cells", ErrTooManyBarriers, o.Barriers, free)
	}

	seed := resolveSeed(o.Seed)
	rng := rngFromSeed(seed)

	attempts := 1
	if o.RequireSolvable {
		attempts = o.Attempts
	}

	for i := 0; i < attempts; i++ {
		m := build(rng, o)
		m.Seed = seed
		if !o.RequireSolvable || m.Grid.Reachable(m.Start, m.Goal, o.Connectivity) {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %d attempts with seed %d", ErrUnsolvable, attempts, seed)
}

// build draws one board from rng. Dimensions and barrier count are
// already validated.
func build(rng *rand.Rand, o Options) *Maze {
	kinds := make([][]grid.Kind, o.Height)
	for y := range kinds {
		kinds[y] = make([]grid.Kind, o.Width)
	}

	start := grid.Coord{X: rng.Intn(2), Y: rng.Intn(o.Height)}
	goal := start
	for goal == start {
		goal = grid.Coord{X: o.Width - 2 + rng.Intn(2), Y: rng.Intn(o.Height)}
	}
	kinds[start.Y][start.X] = grid.Start
	kinds[goal.Y][goal.X] = grid.Goal

	free := make([]grid.Coord, 0, o.Width*o.Height-2)
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			if kinds[y][x] == grid.Open {
				free = append(free, grid.Coord{X: x, Y: y})
			}
		}
	}
	for n := 0; n < o.Barriers; n++ {
		i := rng.Intn(len(free))
		c := free[i]
		kinds[c.Y][c.X] = grid.Wall
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}

	g, err := grid.FromKinds(kinds)
	if err != nil {
		// kinds is rectangular and non-empty by construction.
		panic(err)
	}

	return &Maze{Grid: g, Start: start, Goal: goal}
}
