package render_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/render"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// fixture:
//
//	S . .
//	# . G
func fixture(t *testing.T) (*render.Overlay, route.Path) {
	t.Helper()
	g, err := grid.Parse([]string{"S..", "#.G"})
	require.NoError(t, err)
	o, err := render.NewOverlay(g)
	require.NoError(t, err)

	return o, route.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestPalette(t *testing.T) {
	p := render.DefaultPalette()
	assert.Equal(t, render.White, p.For(grid.Open))
	assert.Equal(t, render.Black, p.For(grid.Wall))
	assert.Equal(t, render.Green, p.For(grid.Start))
	assert.Equal(t, render.Red, p.For(grid.Goal))
	assert.Equal(t, render.Gray, p.For(grid.Kind(99)))
	assert.Equal(t, render.Yellow, p.Path)
	assert.Equal(t, "#FFFF00", render.Yellow.Hex())
}

func TestNewOverlay_NilGrid(t *testing.T) {
	_, err := render.NewOverlay(nil)
	assert.ErrorIs(t, err, render.ErrGridNil)
}

func TestOverlay_MarkSkipsEndpoints(t *testing.T) {
	o, path := fixture(t)

	assert.Equal(t, 2, o.Mark(path))
	assert.False(t, o.Marked(grid.Coord{X: 0, Y: 0}))
	assert.True(t, o.Marked(grid.Coord{X: 1, Y: 0}))
	assert.True(t, o.Marked(grid.Coord{X: 2, Y: 0}))
	assert.False(t, o.Marked(grid.Coord{X: 2, Y: 1}))
	assert.False(t, o.MarkCell(grid.Coord{X: 9, Y: 9}))

	assert.Equal(t, render.Yellow, o.Swatch(grid.Coord{X: 1, Y: 0}))
	assert.Equal(t, render.Green, o.Swatch(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, render.Black, o.Swatch(grid.Coord{X: 0, Y: 1}))

	// the grid itself is untouched
	assert.Equal(t, grid.Open, o.Grid().Kind(grid.Coord{X: 1, Y: 0}))

	o.Clear(path[:2])
	assert.Equal(t, 1, o.Len())
	o.Reset()
	assert.Zero(t, o.Len())
}

func TestOverlay_CustomPalette(t *testing.T) {
	g, err := grid.Parse([]string{"S.G"})
	require.NoError(t, err)
	p := render.DefaultPalette()
	p.Path = render.Gray
	o, err := render.NewOverlay(g, render.WithPalette(p))
	require.NoError(t, err)

	o.MarkCell(grid.Coord{X: 1, Y: 0})
	assert.Equal(t, render.Gray, o.Swatch(grid.Coord{X: 1, Y: 0}))
}

func TestText(t *testing.T) {
	o, path := fixture(t)
	assert.Equal(t, "S . .\n# . G\n", render.Text(o))

	o.Mark(path)
	assert.Equal(t, "S * *\n# . G\n", render.Text(o))
	assert.Empty(t, render.Text(nil))
}

func TestAnimate(t *testing.T) {
	o, path := fixture(t)

	var steps []int
	var marks []int
	err := render.Animate(context.Background(), o, path, func(step int, o *render.Overlay) error {
		steps = append(steps, step)
		marks = append(marks, o.Len())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, steps)
	assert.Equal(t, []int{0, 1, 2, 2}, marks)
}

func TestAnimate_Errors(t *testing.T) {
	o, path := fixture(t)

	boom := errors.New("boom")
	err := render.Animate(context.Background(), o, path, func(step int, _ *render.Overlay) error {
		if step == 1 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o.Reset()
	err = render.Animate(ctx, o, path, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, o.Len())

	assert.ErrorIs(t, render.Animate(context.Background(), nil, path, nil), render.ErrOverlayNil)
}

func TestImage_Colours(t *testing.T) {
	o, path := fixture(t)
	o.Mark(path)

	img, err := render.Image(o, render.WithCellSize(10), render.WithLabels(false), render.WithGridLines(false))
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	assert.Equal(t, render.Green.RGBA, rgba(img.At(5, 5)))
	assert.Equal(t, render.Yellow.RGBA, rgba(img.At(15, 5)))
	assert.Equal(t, render.Yellow.RGBA, rgba(img.At(25, 5)))
	assert.Equal(t, render.Black.RGBA, rgba(img.At(5, 15)))
	assert.Equal(t, render.White.RGBA, rgba(img.At(15, 15)))
	assert.Equal(t, render.Red.RGBA, rgba(img.At(25, 15)))
}

func TestPNG(t *testing.T) {
	o, _ := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, o))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3*render.DefaultCellSize, img.Bounds().Dx())
	assert.Equal(t, 2*render.DefaultCellSize, img.Bounds().Dy())

	assert.ErrorIs(t, render.PNG(&buf, nil), render.ErrOverlayNil)
	assert.PanicsWithValue(t, render.ErrBadCellSize.Error(), func() {
		_ = render.PNG(&buf, o, render.WithCellSize(0))
	})
}

func TestDOT(t *testing.T) {
	o, path := fixture(t)
	o.Mark(path)

	out, err := render.DOT(o, path, grid.Conn4)
	require.NoError(t, err)

	parsed, err := gographviz.Read([]byte(out))
	require.NoError(t, err)
	assert.Len(t, parsed.Nodes.Nodes, 5)
	assert.Len(t, parsed.Edges.Edges, 5)
	assert.False(t, parsed.IsNode(render.NodeID(grid.Coord{X: 0, Y: 1})))

	start := parsed.Nodes.Lookup[render.NodeID(grid.Coord{X: 0, Y: 0})]
	require.NotNil(t, start)
	assert.Contains(t, start.Attrs[gographviz.Attr("label")], "S")

	highlighted := 0
	for _, e := range parsed.Edges.Edges {
		if e.Attrs[gographviz.Attr("penwidth")] == "3" {
			highlighted++
		}
	}
	assert.Equal(t, 3, highlighted)

	_, err = render.DOT(nil, path, grid.Conn4)
	assert.ErrorIs(t, err, render.ErrOverlayNil)
}

func TestDOT_Conn8AddsDiagonals(t *testing.T) {
	o, _ := fixture(t)

	out, err := render.DOT(o, nil, grid.Conn8)
	require.NoError(t, err)
	parsed, err := gographviz.Read([]byte(out))
	require.NoError(t, err)
	// diagonals (0,0)-(1,1), (1,0)-(2,1) and (2,0)-(1,1) join the five orthogonal edges
	assert.Len(t, parsed.Edges.Edges, 8)
}
