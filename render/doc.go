// Package render draws a maze and a found route for people to look at.
//
// What:
//
//   - Palette maps every cell kind to a Swatch through a lookup table.
//   - Overlay holds display-only path marks on top of a read-only grid;
//     the search engines never see it.
//   - Animate marks a route one cell per step and hands each frame to a callback.
//   - Text, PNG and DOT turn an Overlay into a terminal board, an image
//     (fogleman/gg) or a Graphviz document (awalterschulze/gographviz).
//
// Invariants:
//
//   - Start and Goal cells are never marked; they keep their own colours.
//   - Marking never mutates the grid.
//
// Errors:
//
//   - ErrGridNil     a nil grid was handed to NewOverlay.
//   - ErrOverlayNil  a nil overlay was handed to a renderer.
//   - ErrBadCellSize WithCellSize got a non-positive size (panics when applied).
package render
