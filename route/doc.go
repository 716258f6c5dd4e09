// Package route holds what the search packages hand back to their callers:
// the Path type, the shared Result shape, predecessor-map reconstruction,
// the DFS time bookkeeping and a structural path check.
//
// Reconstruct:
//
//	Walks a predecessor map backwards from goal until it reaches start (the
//	only node without a predecessor), then reverses. A goal that was never
//	registered yields a nil Path.
//
// Time bookkeeping:
//
//	Depth-first search charges EdgeWeight (60) time units for every node
//	after the first and reports Minutes(total) = total / 60, floored. This is
//	a fixed numeric contract, not elapsed wall time.
//
// Outcomes:
//
//	A Result with Found == false, a nil Path and Cost 0 is the normal
//	"no path" outcome of an exhausted frontier; it is not an error.
package route
