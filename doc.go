// Package mazesolver finds routes through rectangular grid mazes with
// depth-first search and A*, and draws the result.
//
// What is in here?
//
//	grid/       the board: cells, coordinates, connectivity, regions
//	frontier/   LIFO stack and min-priority queue used by the searches
//	route/      paths, predecessor walks, time units, path validation
//	dfs/        4-connected depth-first search, cost in minutes (60 units per step)
//	astar/      8-connected A* with a Manhattan heuristic, cost in steps
//	solver/     pick an algorithm by name and run it
//	mazegen/    seeded random boards with Start, Goal and barriers
//	render/     path overlay, palette, text, PNG and Graphviz output
//	config/     defaults, YAML file, .env and MAZE_* environment
//	server/     HTTP API (gin)
//	cmd/mazesolve  command-line front end
//
// Quick ASCII example:
//
//	S . .        S * *
//	# . G   →    # . G      DFS: 3 steps, 3 minutes
//
// The searches treat the grid as read-only. "No path" is a normal result
// (Found == false), never an error.
package mazesolver
