// Package mazegen builds random rectangular mazes for the search engines.
//
// What:
//
//	Generate returns a *grid.Grid with one Start cell in one of the two
//	leftmost columns, one Goal cell in one of the two rightmost columns and
//	a fixed number of Wall cells scattered over the remaining Open cells.
//
// Why:
//
//   - The solvers need fixtures; the CLI and HTTP surface need fresh boards.
//   - Every maze is reproducible from Maze.Seed.
//
// Determinism:
//
//	The same (Width, Height, Barriers, Seed) always produces the same maze.
//	Seed == 0 asks for a time-based seed; the value actually used is
//	reported back in Maze.Seed.
//
// Solvability:
//
//	By default a maze may leave Goal unreachable from Start; the solvers
//	report that as "no path". WithRequireSolvable makes Generate retry
//	until Goal is reachable under the given connectivity.
//
// Complexity:
//
//   - Time:  O(W·H) per attempt (O(W·H) more when solvability is checked).
//   - Space: O(W·H).
//
// Errors:
//
//   - ErrBadDimensions     width < 3 or height < 1.
//   - ErrNegativeBarriers  barrier count below zero.
//   - ErrTooManyBarriers   more barriers than free cells.
//   - ErrUnsolvable        no solvable maze within the attempt budget.
//   - ErrBadAttempts       WithRequireSolvable got attempts < 1 (panics when applied).
package mazegen
