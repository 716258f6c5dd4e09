package astar

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/Naveen-Savi08/Maze-Solver/frontier"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// Search runs A* on g from start to goal.
//
// Returns a Result whose Found flag tells success from exhaustion; the
// error is non-nil only for a nil grid or a failing hook.
//
// Steps:
//  1. Queue seeded with (start, 0); CostSoFar = {start: 0}; CameFrom empty.
//  2. Pop the lowest-priority cell; stop if it is goal.
//  3. Relax its sorted neighbours with new cost = CostSoFar[current] + 1 and
//     priority = new cost + h(neighbour, goal).
//  4. Empty queue: no path, cost 0.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Width * g.Height
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		pq:      frontier.NewPriorityQueue[grid.Coord, int](grid.Coord.Compare),
		res: &Result{
			CameFrom:  make(map[grid.Coord]grid.Coord, n),
			CostSoFar: make(map[grid.Coord]int, n),
		},
	}
	r.init(start)
	if err := r.process(start); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *grid.Grid                                // read-only input grid
	options Options                                   // hooks, connectivity, heuristic
	goal    grid.Coord                                // search target
	pq      *frontier.PriorityQueue[grid.Coord, int] // open set, lazy decrease-key
	res     *Result                                   // maps and outcome
}

// init pushes the start cell with priority 0 and cost 0.
func (r *runner) init(start grid.Coord) {
	r.res.CostSoFar[start] = 0
	r.pq.Put(start, 0)
}

// process pops cells until the goal is popped or the queue empties.
func (r *runner) process(start grid.Coord) error {
	for {
		current, priority, ok := r.pq.GetWithPriority()
		if !ok {
			r.res.Result = route.NoPath(r.res.Expanded)
			return nil
		}
		r.res.Expanded++

		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(current, priority); err != nil {
				r.res.Result = route.NoPath(r.res.Expanded)
				return fmt.Errorf("astar: OnExpand hook for %v: %w", current, err)
			}
		}

		if current == r.goal {
			path := route.Reconstruct(r.res.CameFrom, start, r.goal)
			r.res.Path = path
			r.res.Found = path != nil
			if r.res.Found {
				r.res.Cost = r.res.CostSoFar[r.goal]
			}
			return nil
		}

		r.relax(current)
	}
}

// relax examines every neighbour of current in Coord order and records any
// strictly better cost.
func (r *runner) relax(current grid.Coord) {
	candidates := r.g.Neighbors(current, r.options.Connectivity)
	slices.SortFunc(candidates, grid.Coord.Compare)

	newCost := r.res.CostSoFar[current] + StepCost
	for _, next := range candidates {
		if old, seen := r.res.CostSoFar[next]; seen && newCost >= old {
			continue
		}
		r.res.CostSoFar[next] = newCost
		r.pq.Put(next, newCost+r.options.Heuristic(next, r.goal))
		r.res.CameFrom[next] = current
	}
}
