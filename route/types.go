package route

import (
	"errors"
	"strings"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// Sentinel errors returned by Validate.
var (
	// ErrEmptyPath indicates a path with no cells.
	ErrEmptyPath = errors.New("route: path is empty")
	// ErrImpassable indicates a path cell that is out of bounds or a wall.
	ErrImpassable = errors.New("route: path crosses an impassable cell")
	// ErrNotAdjacent indicates two consecutive cells that are not neighbours.
	ErrNotAdjacent = errors.New("route: consecutive path cells are not adjacent")
	// ErrEndpoints indicates a path that does not run from start to goal.
	ErrEndpoints = errors.New("route: path does not connect start and goal")
)

// EdgeWeight is the number of time units charged per DFS edge.
const EdgeWeight = 60

// Path is an ordered sequence of cells from start to goal inclusive.
type Path []grid.Coord

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Start returns the first cell; ok is false for an empty path.
func (p Path) Start() (grid.Coord, bool) {
	if len(p) == 0 {
		return grid.Coord{}, false
	}

	return p[0], true
}

// Goal returns the last cell; ok is false for an empty path.
func (p Path) Goal() (grid.Coord, bool) {
	if len(p) == 0 {
		return grid.Coord{}, false
	}

	return p[len(p)-1], true
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// String formats the path as "[(x,y) (x,y) ...]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Result is the outcome of a single search.
type Result struct {
	// Path runs from start to goal inclusive; nil when no path exists.
	Path Path
	// Cost is the algorithm's cost metric: minutes for DFS, cumulative
	// step cost for A*. Zero when no path exists.
	Cost int
	// Found is true when the goal was reached.
	Found bool
	// Expanded counts frontier pops, stale A* entries included.
	Expanded int
}

// NoPath returns the exhaustion outcome after expanded pops.
func NoPath(expanded int) Result {
	return Result{Expanded: expanded}
}
