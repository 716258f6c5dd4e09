// Package dfs defines options, sentinel errors and the result type for
// depth-first maze search.
package dfs

import (
	"errors"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Search.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrBadEdgeWeight indicates a non-positive edge weight option.
	ErrBadEdgeWeight = errors.New("dfs: edge weight must be positive")
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a depth-first search.
type Options struct {
	// OnVisit, if non-nil, is invoked for every cell popped from the stack,
	// before the goal test. Returning an error aborts the search.
	OnVisit func(c grid.Coord) error

	// EdgeWeight is the number of time units charged for each edge.
	EdgeWeight int
}

// DefaultOptions returns Options with no hook and EdgeWeight = route.EdgeWeight.
func DefaultOptions() Options {
	return Options{
		OnVisit:    nil,
		EdgeWeight: route.EdgeWeight,
	}
}

// WithOnVisit returns an Option that installs fn as the pop hook.
func WithOnVisit(fn func(c grid.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithEdgeWeight sets the time units charged per edge.
// Panics with ErrBadEdgeWeight if w <= 0.
func WithEdgeWeight(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadEdgeWeight.Error())
		}
		o.EdgeWeight = w
	}
}

// Result captures the outcome of a depth-first search.
type Result struct {
	route.Result

	// Parent maps each discovered cell to the cell it was discovered from.
	// The start cell has no entry.
	Parent map[grid.Coord]grid.Coord

	// Visited flags every cell that was pushed onto the stack.
	Visited map[grid.Coord]bool
}
