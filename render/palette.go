package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// Sentinel errors returned by the renderers.
var (
	// ErrGridNil indicates a nil *grid.Grid.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrOverlayNil indicates a nil *Overlay.
	ErrOverlayNil = errors.New("render: overlay is nil")

	// ErrBadCellSize indicates a non-positive cell size option.
	ErrBadCellSize = errors.New("render: cell size must be > 0")
)

// Swatch is a named colour.
type Swatch struct {
	Name string
	RGBA color.RGBA
}

// Hex returns the colour as "#RRGGBB".
func (s Swatch) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", s.RGBA.R, s.RGBA.G, s.RGBA.B)
}

// Standard swatches.
var (
	White  = Swatch{Name: "white", RGBA: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	Black  = Swatch{Name: "black", RGBA: color.RGBA{A: 255}}
	Green  = Swatch{Name: "green", RGBA: color.RGBA{G: 255, A: 255}}
	Red    = Swatch{Name: "red", RGBA: color.RGBA{R: 255, A: 255}}
	Yellow = Swatch{Name: "yellow", RGBA: color.RGBA{R: 255, G: 255, A: 255}}
	Gray   = Swatch{Name: "gray", RGBA: color.RGBA{R: 128, G: 128, B: 128, A: 255}}
)

// Palette colours cells by kind. Path paints marked cells; Default
// covers kinds missing from Cells.
type Palette struct {
	Cells   map[grid.Kind]Swatch
	Path    Swatch
	Default Swatch
}

// DefaultPalette: open white, wall black, start green, goal red, path yellow.
func DefaultPalette() Palette {
	return Palette{
		Cells: map[grid.Kind]Swatch{
			grid.Open:  White,
			grid.Wall:  Black,
			grid.Start: Green,
			grid.Goal:  Red,
		},
		Path:    Yellow,
		Default: Gray,
	}
}

// For returns the swatch for kind k.
func (p Palette) For(k grid.Kind) Swatch {
	if s, ok := p.Cells[k]; ok {
		return s
	}

	return p.Default
}
