package decision

import (
	"container/heap"

	"github.com/katalvlaran/latticewalk/point"
)

// qitem is a candidate point queued for probing, together with its
// precomputed priority score ("prog" in spec.md's terms — popcount-based
// for uq, codimension-based for dq, plus whatever bonus the op that
// queued it carried). Lower prog is popped first; ties break on
// point.Less, the lexicographic order of the underlying word vector (spec
// 4.3.3 / the original hier_cmp), so iteration order is fully
// deterministic.
//
// Stale entries (points since decided or marked improbable) are never
// removed eagerly — removal would be O(|queue|) per label, and the
// queues refill fast. Pop-time filtering in Store.NextU/NextD is the
// only correctness mechanism; duplicates and staleness are expected.
type qitem struct {
	p    point.Point
	prog int64
}

// priorityQueue is a min-heap of qitem ordered by (prog, lexicographic
// word-vector tie-break). Used for both uq and dq — the direction only
// changes how callers compute prog before pushing.
type priorityQueue []qitem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].prog != q[j].prog {
		return q[i].prog < q[j].prog
	}
	return point.Less(q[i].p, q[j].p)
}

func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue) Push(x any) { *q = append(*q, x.(qitem)) }

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// pushU enqueues p into the upward probe queue with the given bonus,
// scoring it as prog = popcount(p) + bonus (spec.md 4.3.3).
func pushU(q *priorityQueue, p point.Point, bonus int64) {
	heap.Push(q, qitem{p: p, prog: int64(p.Popcount()) + bonus})
}

// pushD enqueues p into the downward probe queue with the given bonus,
// scoring it as prog = (N - popcount(p)) + bonus.
func pushD(q *priorityQueue, n uint, p point.Point, bonus int64) {
	heap.Push(q, qitem{p: p, prog: int64(n) - int64(p.Popcount()) + bonus})
}
