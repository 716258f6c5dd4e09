// Package astar_test contains unit tests for the A* implementation: input
// validation, the concrete scenarios, tie-breaking, relaxation bookkeeping
// and options.
package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-Savi08/Maze-Solver/astar"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

func c(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

func mustParse(t *testing.T, rows ...string) (*grid.Grid, grid.Coord, grid.Coord) {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	start, goal, ok := g.Endpoints()
	require.True(t, ok, "grid needs S and G")

	return g, start, goal
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	res, err := astar.Search(nil, c(0, 0), c(1, 1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, astar.ErrGridNil)
}

func TestWithHeuristic_NilPanics(t *testing.T) {
	g, start, goal := mustParse(t, "S.G")
	assert.PanicsWithValue(t, astar.ErrNilHeuristic.Error(), func() {
		_, _ = astar.Search(g, start, goal, astar.WithHeuristic(nil))
	})
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

// TestSearch_Corridor is the 3×1 [S . G] scenario.
func TestSearch_Corridor(t *testing.T) {
	g, start, goal := mustParse(t, "S.G")

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, route.Path{c(0, 0), c(1, 0), c(2, 0)}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

// TestSearch_DiagonalOnly: 4-connected route blocked, diagonal open.
func TestSearch_DiagonalOnly(t *testing.T) {
	g, start, goal := mustParse(t,
		"S#",
		"#G",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, route.Path{c(0, 0), c(1, 1)}, res.Path)
	assert.Equal(t, 1, res.Cost)

	res, err = astar.Search(g, start, goal, astar.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Cost)
}

func TestSearch_DiagonalIsUnitCost(t *testing.T) {
	g, start, goal := mustParse(t,
		"S.",
		".G",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, route.Path{c(0, 0), c(1, 1)}, res.Path)
	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, res.Path.Len()-1, res.Cost)
}

func TestSearch_StraightBeatsDepthFirst(t *testing.T) {
	g, start, goal := mustParse(t,
		"S..",
		"...",
		"G..",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, route.Path{c(0, 0), c(0, 1), c(0, 2)}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

// TestSearch_TieBreakByCoord: (1,0) and (1,2) tie on priority 3 after the
// first expansion; Coord order sends the path over the top.
func TestSearch_TieBreakByCoord(t *testing.T) {
	g, start, goal := mustParse(t,
		"...",
		"S#G",
		"...",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, route.Path{c(0, 1), c(1, 0), c(2, 1)}, res.Path)
	assert.Equal(t, 2, res.Cost)
}

func TestSearch_Unreachable(t *testing.T) {
	g, start, goal := mustParse(t,
		"S.#..",
		"..#.G",
		"###..",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path, "exhaustion never returns a partial path")
	assert.Equal(t, 0, res.Cost)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g, err := grid.Parse([]string{"S.G"})
	require.NoError(t, err)

	res, err := astar.Search(g, c(1, 0), c(1, 0))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, route.Path{c(1, 0)}, res.Path)
	assert.Equal(t, 0, res.Cost)
}

// ------------------------------------------------------------------------
// 3. Bookkeeping
// ------------------------------------------------------------------------

// TestSearch_MonotonicCosts checks that cost-so-far grows by at least one
// per step along the returned path and ends at the reported cost.
func TestSearch_MonotonicCosts(t *testing.T) {
	g, start, goal := mustParse(t,
		"S..#....",
		".#.#.##.",
		".#...#..",
		".####.#.",
		"......#G",
	)
	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NoError(t, route.Validate(g, res.Path, start, goal, grid.Conn8))

	assert.Equal(t, 0, res.CostSoFar[start])
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.CostSoFar[res.Path[i-1]], res.CostSoFar[res.Path[i]]
		assert.GreaterOrEqual(t, cur, prev+1, "step %d", i)
		assert.Equal(t, res.Path[i-1], res.CameFrom[res.Path[i]])
	}
	assert.Equal(t, res.CostSoFar[goal], res.Cost)
	_, startHasParent := res.CameFrom[start]
	assert.False(t, startHasParent)
}

func TestSearch_OnExpand(t *testing.T) {
	g, start, goal := mustParse(t, "S.G")

	var order []grid.Coord
	var priorities []int
	_, err := astar.Search(g, start, goal, astar.WithOnExpand(func(at grid.Coord, p int) error {
		order = append(order, at)
		priorities = append(priorities, p)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{c(0, 0), c(1, 0), c(2, 0)}, order)
	assert.Equal(t, []int{0, 2, 2}, priorities)

	stop := errors.New("stop")
	res, err := astar.Search(g, start, goal, astar.WithOnExpand(func(grid.Coord, int) error { return stop }))
	assert.ErrorIs(t, err, stop)
	assert.False(t, res.Found)
}

func TestSearch_ZeroHeuristicIsUniformCost(t *testing.T) {
	g, start, goal := mustParse(t,
		"S...",
		"###.",
		"G...",
	)
	zero := func(grid.Coord, grid.Coord) int { return 0 }
	res, err := astar.Search(g, start, goal, astar.WithHeuristic(zero), astar.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, res.Path.Len()-1, res.Cost)
}

func TestSearch_Deterministic(t *testing.T) {
	g, start, goal := mustParse(t,
		"S.......",
		"........",
		"...##...",
		"........",
		".......G",
	)
	first, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Cost, again.Cost)
		assert.Equal(t, first.Expanded, again.Expanded)
	}
}
