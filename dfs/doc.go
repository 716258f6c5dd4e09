// Package dfs implements depth-first path search on a maze grid.
//
// What:
//
//   - Search(g, start, goal, opts...) explores the grid with an explicit
//     stack, always expanding the most recently discovered cell first.
//   - Neighbours are considered in the fixed order down, right, up, left
//     (4-connected only). That order decides which of several valid paths
//     is returned; the result is depth-biased and usually not shortest.
//   - A cell is marked visited when it is pushed. A visited cell is never
//     re-examined, even if a shorter route to it exists.
//   - Cost is reported in whole "minutes": every edge on the returned path
//     is charged the edge weight (route.EdgeWeight, 60, unless overridden)
//     and the total is floored by 60. With the default weight the cost
//     equals the number of edges.
//
// Outcomes:
//
//   - Found: Result.Path runs start..goal, Result.Cost as above.
//   - Exhausted: Result.Found == false, Path nil, Cost 0. Not an error.
//
// Options:
//
//   - WithOnVisit(fn)     hook called for every popped cell; an error aborts.
//   - WithEdgeWeight(w)   time units per edge (default route.EdgeWeight).
//
// Errors:
//
//   - ErrGridNil          g is nil.
//   - hook errors         propagated from OnVisit, wrapped.
//
// Complexity:
//
//   - Time:   O(W×H) pops, 4 neighbour checks each.
//   - Memory: O(W×H) for the stack, visited set and predecessor map.
//
// Search never writes to g; concurrent searches over one grid are safe.
package dfs
