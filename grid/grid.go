package grid

import (
	"fmt"
	"strings"
)

// New returns a width×height grid with every cell Open.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Kind, width*height),
	}, nil
}

// FromKinds constructs a Grid from a non-empty, rectangular 2D slice indexed
// kinds[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func FromKinds(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for _, row := range kinds {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, cells: make([]Kind, 0, w*h)}
	for _, row := range kinds {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Parse builds a Grid from text rows using '.', '#', 'S' and 'G'.
// Spaces and tabs inside a row are ignored, so "S . G" and "S.G" are equal.
func Parse(rows []string) (*Grid, error) {
	kinds := make([][]Kind, 0, len(rows))
	for y, line := range rows {
		row := make([]Kind, 0, len(line))
		x := 0
		for _, r := range line {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			k, ok := KindFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, r, x, y)
			}
			row = append(row, k)
			x++
		}
		kinds = append(kinds, row)
	}

	return FromKinds(kinds)
}

// ParseString splits s on newlines, drops blank lines and calls Parse.
func ParseString(s string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}

	return Parse(rows)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Kind returns the kind of cell c. Out-of-bounds coordinates read as Wall.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[g.index(c)]
}

// IsPassable reports whether c is inside the grid and not a Wall.
// No side effects and no error conditions.
func (g *Grid) IsPassable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Wall
}

// With returns a copy of g with cell c set to k.
// The receiver is left untouched; out-of-bounds c returns an unchanged copy.
func (g *Grid) With(c Coord, k Kind) *Grid {
	cp := &Grid{Width: g.Width, Height: g.Height, cells: make([]Kind, len(g.cells))}
	copy(cp.cells, g.cells)
	if g.InBounds(c) {
		cp.cells[g.index(c)] = k
	}

	return cp
}

// Find returns the first cell of kind k in row-major order.
func (g *Grid) Find(k Kind) (Coord, bool) {
	for i, ck := range g.cells {
		if ck == k {
			return g.Coordinate(i), true
		}
	}

	return Coord{}, false
}

// Endpoints returns the Start and Goal cells; ok is false if either is missing.
func (g *Grid) Endpoints() (start, goal Coord, ok bool) {
	start, okS := g.Find(Start)
	goal, okG := g.Find(Goal)

	return start, goal, okS && okG
}

// Count returns how many cells hold kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, ck := range g.cells {
		if ck == k {
			n++
		}
	}

	return n
}

// Neighbors returns the passable neighbours of c under conn, in the order of
// conn.Offsets(). The result is freshly allocated.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coord, conn Connectivity) []Coord {
	offsets := conn.Offsets()
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Rows returns the text form of g, one string per row, without separators.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.cells[y*g.Width+x].Rune())
		}
		rows[y] = sb.String()
	}

	return rows
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
