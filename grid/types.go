// Package grid defines coordinates, cell kinds, connectivity and sentinel
// errors for the maze grid model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a text cell outside the '.', '#', 'S', 'G' alphabet.
	ErrUnknownCell = errors.New("grid: unknown cell symbol")
)

// Coord is a cell position: X is the column index, Y the row index.
type Coord struct {
	X, Y int
}

// Add returns c translated by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Compare orders coordinates by X, then by Y.
// Returns -1 if c < o, 0 if equal, +1 if c > o.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	}

	return 0
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |Δx| + |Δy| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Kind is the content of a single cell.
type Kind int

const (
	// Open is an empty, passable cell.
	Open Kind = iota
	// Wall is an impassable barrier.
	Wall
	// Start marks the search origin.
	Start
	// Goal marks the search target.
	Goal
)

// kindRunes is the text symbol of each Kind.
var kindRunes = map[Kind]rune{
	Open:  '.',
	Wall:  '#',
	Start: 'S',
	Goal:  'G',
}

var kindNames = map[Kind]string{
	Open:  "open",
	Wall:  "wall",
	Start: "start",
	Goal:  "goal",
}

// Rune returns the text symbol of k, or '?' for an unknown kind.
func (k Kind) Rune() rune {
	if r, ok := kindRunes[k]; ok {
		return r
	}

	return '?'
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// KindFromRune maps a text symbol back to its Kind.
func KindFromRune(r rune) (Kind, bool) {
	for k, kr := range kindRunes {
		if kr == r {
			return k, true
		}
	}

	return Open, false
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four axis-aligned neighbours.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbours.
	Conn8
)

// String returns "4-connected" or "8-connected".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8-connected"
	}

	return "4-connected"
}

// Conn4Offsets lists the axis-aligned moves in the order down, right, up, left.
// Depth-first search depends on this order to pick among equally valid paths.
var Conn4Offsets = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Conn8Offsets lists Conn4Offsets followed by the four diagonals.
var Conn8Offsets = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Offsets returns the offset table for conn.
func (c Connectivity) Offsets() []Coord {
	if c == Conn8 {
		return Conn8Offsets
	}

	return Conn4Offsets
}

// Adjacent reports whether a and b are distinct neighbours under conn.
func (c Connectivity) Adjacent(a, b Coord) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > 1 || dy > 1 || dx+dy == 0 {
		return false
	}
	if c == Conn4 {
		return dx+dy == 1
	}

	return true
}

// Grid is a maze field. It is immutable once built: Width and Height define
// dimensions and cells holds Kind values in row-major order.
type Grid struct {
	Width, Height int
	cells         []Kind
}
