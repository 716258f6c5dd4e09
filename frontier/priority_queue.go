package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// entry is one queued (priority, item) pair. seq records insertion order and
// is the last tie-breaker.
type entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

// entryHeap implements heap.Interface over entries.
type entryHeap[T any, P constraints.Ordered] struct {
	entries []entry[T, P]
	tie     func(a, b T) int
}

func (h *entryHeap[T, P]) Len() int { return len(h.entries) }

// Less orders by priority, then tie(a, b), then insertion sequence.
func (h *entryHeap[T, P]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if h.tie != nil {
		if c := h.tie(a.item, b.item); c != 0 {
			return c < 0
		}
	}

	return a.seq < b.seq
}

func (h *entryHeap[T, P]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *entryHeap[T, P]) Push(x any) { h.entries = append(h.entries, x.(entry[T, P])) }

func (h *entryHeap[T, P]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T, P]{}
	h.entries = old[:n-1]

	return e
}

// PriorityQueue is a min-heap of items keyed by priority P.
// Entries are never updated in place: a better priority for an item is
// expressed by pushing it again (lazy decrease-key).
type PriorityQueue[T any, P constraints.Ordered] struct {
	h   entryHeap[T, P]
	seq uint64
}

// NewPriorityQueue returns an empty queue. tie orders items with equal
// priority (negative when a comes first); nil leaves insertion order as the
// only tie-breaker.
func NewPriorityQueue[T any, P constraints.Ordered](tie func(a, b T) int) *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{h: entryHeap[T, P]{tie: tie}}
}

// Put enqueues item with the given priority.
// Complexity: O(log n).
func (q *PriorityQueue[T, P]) Put(item T, priority P) {
	heap.Push(&q.h, entry[T, P]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Get removes and returns the item with the smallest priority.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *PriorityQueue[T, P]) Get() (item T, ok bool) {
	item, _, ok = q.GetWithPriority()

	return item, ok
}

// GetWithPriority is Get that also reports the priority the item was queued with.
func (q *PriorityQueue[T, P]) GetWithPriority() (item T, priority P, ok bool) {
	if q.h.Len() == 0 {
		return item, priority, false
	}
	e := heap.Pop(&q.h).(entry[T, P])

	return e.item, e.priority, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueue[T, P]) IsEmpty() bool { return q.h.Len() == 0 }

// Len returns the number of queued entries, stale duplicates included.
func (q *PriorityQueue[T, P]) Len() int { return q.h.Len() }
