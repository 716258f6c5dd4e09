package render

import (
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// Overlay is a set of path marks over a grid it does not own.
// Not safe for concurrent use.
type Overlay struct {
	grid    *grid.Grid
	palette Palette
	marked  map[grid.Coord]struct{}
}

// OverlayOption configures NewOverlay.
type OverlayOption func(*Overlay)

// WithPalette replaces DefaultPalette.
func WithPalette(p Palette) OverlayOption {
	return func(o *Overlay) { o.palette = p }
}

// NewOverlay returns an empty overlay on g.
func NewOverlay(g *grid.Grid, opts ...OverlayOption) (*Overlay, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := &Overlay{grid: g, palette: DefaultPalette(), marked: make(map[grid.Coord]struct{})}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Grid returns the underlying grid.
func (o *Overlay) Grid() *grid.Grid { return o.grid }

// Palette returns the palette in use.
func (o *Overlay) Palette() Palette { return o.palette }

// MarkCell marks c unless it is out of bounds, Start or Goal.
// Reports whether c is now marked.
func (o *Overlay) MarkCell(c grid.Coord) bool {
	if !o.markable(c) {
		return false
	}
	o.marked[c] = struct{}{}

	return true
}

// Mark marks every markable cell of path and returns how many were marked.
func (o *Overlay) Mark(path route.Path) int {
	n := 0
	for _, c := range path {
		if o.MarkCell(c) {
			n++
		}
	}

	return n
}

// Clear removes the marks of path.
func (o *Overlay) Clear(path route.Path) {
	for _, c := range path {
		delete(o.marked, c)
	}
}

// Reset removes every mark.
func (o *Overlay) Reset() {
	clear(o.marked)
}

// Marked reports whether c carries a path mark.
func (o *Overlay) Marked(c grid.Coord) bool {
	_, ok := o.marked[c]
	return ok
}

// Len is the number of marked cells.
func (o *Overlay) Len() int { return len(o.marked) }

// Swatch is the colour c is drawn with.
func (o *Overlay) Swatch(c grid.Coord) Swatch {
	if o.Marked(c) {
		return o.palette.Path
	}

	return o.palette.For(o.grid.Kind(c))
}

func (o *Overlay) markable(c grid.Coord) bool {
	if !o.grid.InBounds(c) {
		return false
	}
	switch o.grid.Kind(c) {
	case grid.Start, grid.Goal:
		return false
	}

	return true
}
