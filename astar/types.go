// Package astar defines options, sentinel errors and the result type for
// A* maze search.
package astar

import (
	"errors"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic must not be nil")
)

// StepCost is the uniform cost of a single move in any direction.
const StepCost = 1

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal grid.Coord) int

// Options configures the behavior of Search.
//
// OnExpand     – called for each cell popped from the queue with its priority.
// Connectivity – neighbour set; Conn8 by default.
// Heuristic    – remaining-cost estimate; grid.Manhattan by default.
type Options struct {
	OnExpand     func(c grid.Coord, priority int) error
	Connectivity grid.Connectivity
	Heuristic    Heuristic
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no hook, 8-connectivity and the
// Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		OnExpand:     nil,
		Connectivity: grid.Conn8,
		Heuristic:    grid.Manhattan,
	}
}

// WithOnExpand installs fn as the pop hook. Returning an error aborts.
func WithOnExpand(fn func(c grid.Coord, priority int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithConnectivity selects 4- or 8-connected moves.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithHeuristic replaces the Manhattan heuristic.
// Panics with ErrNilHeuristic if h is nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// Result captures the outcome of an A* search.
type Result struct {
	route.Result

	// CameFrom maps each relaxed cell to its current predecessor.
	// The start cell has no entry.
	CameFrom map[grid.Coord]grid.Coord

	// CostSoFar maps each discovered cell to the best cost found from start.
	// Entries are lowered on relaxation and never removed.
	CostSoFar map[grid.Coord]int
}
