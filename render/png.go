package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
)

// DefaultCellSize is the side of one cell in pixels.
const DefaultCellSize = 50

// ImageOptions configures Image and PNG.
type ImageOptions struct {
	CellSize  int
	Labels    bool
	GridLines bool
}

// ImageOption mutates ImageOptions.
type ImageOption func(*ImageOptions)

// DefaultImageOptions: 50 px cells, S/G labels, grey grid lines.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: DefaultCellSize, Labels: true, GridLines: true}
}

// WithCellSize sets the cell side in pixels.
// Panics with ErrBadCellSize if px <= 0.
func WithCellSize(px int) ImageOption {
	return func(o *ImageOptions) {
		if px <= 0 {
			panic(ErrBadCellSize.Error())
		}
		o.CellSize = px
	}
}

// WithLabels toggles the S and G captions.
func WithLabels(on bool) ImageOption {
	return func(o *ImageOptions) { o.Labels = on }
}

// WithGridLines toggles cell borders.
func WithGridLines(on bool) ImageOption {
	return func(o *ImageOptions) { o.GridLines = on }
}

// Image paints o as a Width·CellSize × Height·CellSize raster.
func Image(o *Overlay, opts ...ImageOption) (image.Image, error) {
	dc, err := draw(o, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG paints o and encodes it to w.
func PNG(w io.Writer, o *Overlay, opts ...ImageOption) error {
	dc, err := draw(o, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(o *Overlay, opts []ImageOption) (*gg.Context, error) {
	if o == nil {
		return nil, ErrOverlayNil
	}
	cfg := DefaultImageOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := o.grid
	size := float64(cfg.CellSize)
	dc := gg.NewContext(g.Width*cfg.CellSize, g.Height*cfg.CellSize)
	dc.SetColor(o.palette.Default.RGBA)
	dc.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Coord{X: x, Y: y}
			px, py := float64(x)*size, float64(y)*size

			dc.SetColor(o.Swatch(c).RGBA)
			dc.DrawRectangle(px, py, size, size)
			dc.Fill()

			if cfg.GridLines {
				dc.SetColor(Gray.RGBA)
				dc.SetLineWidth(1)
				dc.DrawRectangle(px, py, size, size)
				dc.Stroke()
			}
		}
	}

	if cfg.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(Black.RGBA)
		for _, k := range []grid.Kind{grid.Start, grid.Goal} {
			c, ok := g.Find(k)
			if !ok {
				continue
			}
			dc.DrawStringAnchored(string(k.Rune()), (float64(c.X)+0.5)*size, (float64(c.Y)+0.5)*size, 0.5, 0.5)
		}
	}

	return dc, nil
}
