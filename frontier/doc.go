// Package frontier provides the two containers search algorithms keep their
// discovered-but-not-yet-expanded nodes in.
//
//   - Stack: last-in-first-out, O(1) amortised Push/Pop/Peek. Depth-first
//     search explores the most recently discovered node first.
//   - PriorityQueue: binary min-heap keyed by a numeric priority. Duplicates
//     are allowed. Ties are broken by a caller-supplied comparison on the
//     items and finally by insertion order, so Get order is a total order and
//     identical inputs always yield identical output.
//
// Neither type is safe for concurrent use; each search owns its own frontier.
package frontier
