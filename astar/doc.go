// Package astar implements A* best-first path search on a maze grid.
//
// Overview:
//
//   - Search(g, start, goal, opts...) keeps a priority queue of cells keyed
//     by f = g + h, where g is the cost so far and h the heuristic estimate
//     to the goal (Manhattan distance by default).
//   - Every move costs 1, orthogonal and diagonal alike. This is a deliberate
//     simplification, not Euclidean or Chebyshev distance.
//   - Neighbours are generated 8-connected by default and sorted by Coord
//     order (x, then y) before relaxation. Together with the queue's
//     tie-break on Coord order this makes results reproducible.
//   - A neighbour is relaxed when it has no recorded cost or the new cost is
//     strictly lower; its predecessor is overwritten and it is re-queued
//     (lazy decrease-key, no closed set).
//
// Optimality:
//
//	Manhattan distance is admissible for orthogonal unit moves but
//	overestimates when diagonal moves cost 1, so the returned path is not
//	guaranteed to be the cheapest one.
//
// Outcomes:
//
//   - Found: Result.Path runs start..goal and Result.Cost = CostSoFar[goal].
//   - Exhausted: Result.Found == false, Path nil, Cost 0. Not an error.
//
// Options:
//
//   - WithOnExpand(fn)        hook called for every popped cell; an error aborts.
//   - WithConnectivity(conn)  grid.Conn8 (default) or grid.Conn4.
//   - WithHeuristic(h)        replaces grid.Manhattan.
//
// Errors (sentinel):
//
//   - ErrGridNil          g is nil.
//   - ErrNilHeuristic     WithHeuristic(nil) (panics at option construction).
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ 8·W·H queue pushes.
//   - Space: O(W×H) for the cost and predecessor maps, O(E) for the queue.
//
// Search never writes to g; concurrent searches over one grid are safe.
package astar
