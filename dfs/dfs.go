package dfs

import (
	"fmt"

	"github.com/Naveen-Savi08/Maze-Solver/frontier"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// item is a stack entry: a cell and the weight of the edge used to reach it.
type item struct {
	at     grid.Coord
	weight int
}

// walker encapsulates state during one search.
type walker struct {
	g       *grid.Grid
	opts    Options
	stack   *frontier.Stack[item]
	weights map[grid.Coord]int // edge weight each popped cell was reached with
	res     *Result
}

// Search runs depth-first search on g from start to goal.
// It returns a Result whose Found flag tells success from exhaustion;
// the error is non-nil only for a nil grid or a failing hook.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize state with capacity hint
	n := g.Width * g.Height
	w := &walker{
		g:       g,
		opts:    dopts,
		stack:   frontier.NewStack[item](n),
		weights: make(map[grid.Coord]int, n),
		res: &Result{
			Parent:  make(map[grid.Coord]grid.Coord, n),
			Visited: make(map[grid.Coord]bool, n),
		},
	}

	// 4. Seed with the start cell
	w.stack.Push(item{at: start, weight: 0})
	w.res.Visited[start] = true

	// 5. Run
	if err := w.run(start, goal); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// run pops cells until goal is reached or the stack is exhausted.
func (w *walker) run(start, goal grid.Coord) error {
	for {
		cur, ok := w.stack.Pop()
		if !ok {
			w.res.Result = route.NoPath(w.res.Expanded)
			return nil
		}
		w.res.Expanded++
		w.weights[cur.at] = cur.weight

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur.at); err != nil {
				w.res.Result = route.NoPath(w.res.Expanded)
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", cur.at, err)
			}
		}

		if cur.at == goal {
			path := route.Reconstruct(w.res.Parent, start, goal)
			w.res.Path = path
			w.res.Cost = route.Minutes(route.TimeUnits(path, w.weights))
			w.res.Found = path != nil
			return nil
		}

		w.expand(cur.at)
	}
}

// expand pushes every unvisited passable neighbour of at in the order
// down, right, up, left.
func (w *walker) expand(at grid.Coord) {
	for _, d := range grid.Conn4Offsets {
		next := at.Add(d)
		if !w.g.IsPassable(next) || w.res.Visited[next] {
			continue
		}
		w.stack.Push(item{at: next, weight: w.opts.EdgeWeight})
		w.res.Visited[next] = true
		w.res.Parent[next] = at
	}
}
