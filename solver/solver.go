// Package solver names the available search algorithms and runs them
// behind one signature, so the CLI and the HTTP surface can pick one by name.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Naveen-Savi08/Maze-Solver/astar"
	"github.com/Naveen-Savi08/Maze-Solver/dfs"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// ErrUnknownAlgorithm indicates a name that is not one of Algorithms().
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Algorithm identifies a search strategy.
type Algorithm string

const (
	// DFS is depth-first search, 4-connected, cost in minutes.
	DFS Algorithm = "dfs"
	// AStar is A* search, 8-connected, cost in steps.
	AStar Algorithm = "astar"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, AStar}
}

// Parse maps a case-insensitive name ("dfs", "astar", "a*") to an Algorithm.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return DFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Title returns the human label used in reports: "DFS" or "A*".
func (a Algorithm) Title() string {
	if a == AStar {
		return "A*"
	}

	return strings.ToUpper(string(a))
}

// Connectivity reports the move set the algorithm searches with.
func (a Algorithm) Connectivity() grid.Connectivity {
	if a == AStar {
		return grid.Conn8
	}

	return grid.Conn4
}

// Run searches g from start to goal with algorithm a.
// A Result with Found == false is the normal "no path" outcome.
func Run(a Algorithm, g *grid.Grid, start, goal grid.Coord) (route.Result, error) {
	switch a {
	case DFS:
		res, err := dfs.Search(g, start, goal)
		if err != nil {
			return route.Result{}, err
		}
		return res.Result, nil
	case AStar:
		res, err := astar.Search(g, start, goal)
		if err != nil {
			return route.Result{}, err
		}
		return res.Result, nil
	}

	return route.Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}
