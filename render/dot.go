package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// DOTGraphName is the name of the emitted graph.
const DOTGraphName = "maze"

// NodeID is the DOT identifier of cell c.
func NodeID(c grid.Coord) string {
	return fmt.Sprintf("c%d_%d", c.X, c.Y)
}

// DOT emits an undirected Graphviz graph of o: one node per passable cell,
// pinned at its grid position, one edge per conn-adjacent pair of passable
// cells. Edges between consecutive cells of path are drawn thick in the
// path colour.
func DOT(o *Overlay, path route.Path, conn grid.Connectivity) (string, error) {
	if o == nil {
		return "", ErrOverlayNil
	}
	g := o.grid

	onPath := make(map[[2]grid.Coord]struct{}, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]grid.Coord{path[i-1], path[i]}] = struct{}{}
		onPath[[2]grid.Coord{path[i], path[i-1]}] = struct{}{}
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(DOTGraphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(false); err != nil {
		return "", err
	}
	if err := graph.AddAttr(DOTGraphName, "nodesep", "0.3"); err != nil {
		return "", err
	}
	if err := graph.AddAttr(DOTGraphName, "center", "true"); err != nil {
		return "", err
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.IsPassable(c) {
				continue
			}
			label := ""
			if k := g.Kind(c); k == grid.Start || k == grid.Goal {
				label = string(k.Rune())
			}
			err := graph.AddNode(DOTGraphName, NodeID(c), map[string]string{
				"label":     strconv.Quote(label),
				"pos":       strconv.Quote(fmt.Sprintf("%d,%d!", c.X, -c.Y)),
				"shape":     "box",
				"style":     "filled",
				"fillcolor": strconv.Quote(o.Swatch(c).Hex()),
			})
			if err != nil {
				return "", err
			}
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.IsPassable(c) {
				continue
			}
			for _, n := range g.Neighbors(c, conn) {
				if c.Compare(n) >= 0 {
					continue
				}
				attrs := map[string]string{"color": strconv.Quote(Gray.Hex())}
				if _, ok := onPath[[2]grid.Coord{c, n}]; ok {
					attrs["color"] = strconv.Quote(o.palette.Path.Hex())
					attrs["penwidth"] = "3"
				}
				if err := graph.AddEdge(NodeID(c), NodeID(n), false, attrs); err != nil {
					return "", err
				}
			}
		}
	}

	return graph.String(), nil
}
