package server

import (
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// Point is a cell coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(c grid.Coord) Point { return Point{X: c.X, Y: c.Y} }

func toPoints(p route.Path) []Point {
	out := make([]Point, 0, len(p))
	for _, c := range p {
		out = append(out, toPoint(c))
	}
	return out
}

// MazeResponse describes a generated board.
type MazeResponse struct {
	Seed   int64    `json:"seed"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
	Start  Point    `json:"start"`
	Goal   Point    `json:"goal"`
}

// SolveRequest carries a board in its text form and the algorithm to run.
// An empty algorithm or "all" runs every algorithm.
type SolveRequest struct {
	Rows      []string `json:"rows" binding:"required"`
	Algorithm string   `json:"algorithm"`
}

// SolveResult is the outcome of one algorithm.
type SolveResult struct {
	Algorithm string  `json:"algorithm"`
	Found     bool    `json:"found"`
	Path      []Point `json:"path"`
	Cost      int     `json:"cost"`
	Expanded  int     `json:"expanded"`
}

// SolveResponse groups the results of one request.
type SolveResponse struct {
	ID      string        `json:"id"`
	Results []SolveResult `json:"results"`
}

// ErrorResponse is the body of every 4xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
