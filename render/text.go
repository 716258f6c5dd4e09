package render

import (
	"strings"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// PathRune marks route cells in Text output.
const PathRune = '*'

// Text renders o one row per line, cells separated by a space,
// marked cells as '*'.
func Text(o *Overlay) string {
	if o == nil {
		return ""
	}
	g := o.grid

	var sb strings.Builder
	sb.Grow(g.Height * (2*g.Width + 1))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := grid.Coord{X: x, Y: y}
			if o.Marked(c) {
				sb.WriteRune(PathRune)
				continue
			}
			sb.WriteRune(g.Kind(c).Rune())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
