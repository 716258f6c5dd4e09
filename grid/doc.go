// Package grid models a maze as a rectangular field of cell kinds and
// answers the bounds-checked adjacency queries the search packages need.
//
// What:
//
//   - Grid wraps a W×H field of Kind values (Open, Wall, Start, Goal).
//   - Coord is an (x, y) value type with a lexicographic total order.
//   - IsPassable reports whether a coordinate may be entered: inside the grid
//     and not a Wall. Out-of-range input is a normal "false", never a fault.
//   - Neighbors enumerates passable neighbours under Conn4 or Conn8 in a
//     fixed offset order (down, right, up, left, then diagonals).
//   - Components / Reachable group passable cells into connected regions.
//
// Why:
//
//   - dfs and astar consume a *Grid read-only; marking a path for display
//     happens elsewhere (package render), so one Grid can be searched by
//     several goroutines at once.
//
// Complexity:
//
//   - IsPassable, InBounds, Kind: O(1).
//   - Neighbors:                  O(d), d = 4 or 8.
//   - Components, Reachable:      O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell:    a text cell is not one of '.', '#', 'S', 'G'.
//
// Text form:
//
//	S . #
//	. # G
//
// parses with ParseString("S.#\n.#G"); spaces are ignored.
package grid
