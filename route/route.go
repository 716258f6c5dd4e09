package route

import (
	"fmt"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// Reconstruct rebuilds the path to goal from the predecessor map prev.
// prev[v] == u means v was discovered from u; start has no entry.
// Returns nil if goal was never registered.
// Complexity: O(path length).
func Reconstruct(prev map[grid.Coord]grid.Coord, start, goal grid.Coord) Path {
	if goal != start {
		if _, ok := prev[goal]; !ok {
			return nil
		}
	}
	path := Path{goal}
	current := goal
	for current != start {
		previous, ok := prev[current]
		if !ok {
			// chain broken before reaching start
			return nil
		}
		path = append(path, previous)
		current = previous
		if len(path) > len(prev)+1 {
			// cycle in a malformed map
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// TimeUnits sums the weight recorded for every node on the path after the
// first. Nodes without a recorded weight contribute nothing.
func TimeUnits(path Path, weights map[grid.Coord]int) int {
	total := 0
	if len(path) < 2 {
		return total
	}
	for _, c := range path[1:] {
		total += weights[c]
	}

	return total
}

// Minutes converts time units to whole minutes, floored.
func Minutes(units int) int {
	return units / EdgeWeight
}

// Validate checks that path is non-empty, runs from start to goal, stays on
// passable cells of g and moves between neighbours under conn.
func Validate(g *grid.Grid, path Path, start, goal grid.Coord, conn grid.Connectivity) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0] != start || path[len(path)-1] != goal {
		return fmt.Errorf("%w: got %v..%v, want %v..%v", ErrEndpoints, path[0], path[len(path)-1], start, goal)
	}
	for i, c := range path {
		if !g.IsPassable(c) {
			return fmt.Errorf("%w: %v at step %d", ErrImpassable, c, i)
		}
		if i > 0 && !conn.Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: %v -> %v (%s)", ErrNotAdjacent, path[i-1], c, conn)
		}
	}

	return nil
}
