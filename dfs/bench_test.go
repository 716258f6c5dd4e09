package dfs_test

import (
	"testing"

	"github.com/Naveen-Savi08/Maze-Solver/dfs"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// BenchmarkSearch_Open200 measures DFS across an open 200×200 grid from
// corner to corner.
// Complexity: O(W×H).
func BenchmarkSearch_Open200(b *testing.B) {
	const n = 200
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	start, goal := grid.Coord{}, grid.Coord{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, start, goal)
	}
}
