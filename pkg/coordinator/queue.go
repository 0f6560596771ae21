package coordinator

import (
	"container/heap"
	"context"
	"time"
)

// item is one schedulable operation attempt.
type item struct {
	handle   *Handle
	spec     OpSpec
	priority int
	seq      uint64 // submission order, FIFO tiebreak
	index    int    // heap bookkeeping

	retryPolicy RetryPolicy
	deadline    time.Time
	attempt     int // completed attempts so far

	// notBefore delays dispatch of a requeued attempt (retry backoff).
	notBefore time.Time

	// cancel releases the per-attempt context when the op's task is
	// cancelled while in flight.
	attemptCancel context.CancelCauseFunc
}

// opHeap orders items by priority descending, then submission order.
type opHeap []*item

func (h opHeap) Len() int { return len(h) }

func (h opHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h opHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *opHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *opHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// namedQueue is one bounded priority queue with a per-queue concurrency cap.
type namedQueue struct {
	name        string
	cap         int
	concurrency int // 0 = bounded only by the worker count

	items    opHeap
	inFlight int
}

func newNamedQueue(name string, capacity, concurrency int) *namedQueue {
	q := &namedQueue{name: name, cap: capacity, concurrency: concurrency}
	heap.Init(&q.items)
	return q
}

func (q *namedQueue) depth() int { return q.items.Len() }

func (q *namedQueue) full() bool {
	return q.cap > 0 && q.items.Len() >= q.cap
}

// atConcurrencyCap reports whether dispatching from this queue would exceed
// its in-flight cap.
func (q *namedQueue) atConcurrencyCap() bool {
	return q.concurrency > 0 && q.inFlight >= q.concurrency
}

func (q *namedQueue) push(it *item) {
	heap.Push(&q.items, it)
}

func (q *namedQueue) popHead() *item {
	return heap.Pop(&q.items).(*item)
}

// removeForTask removes every queued item belonging to a task and returns
// the removed items.
func (q *namedQueue) removeForTask(taskID string) []*item {
	var removed []*item
	for i := 0; i < q.items.Len(); {
		if q.items[i].spec.TaskID == taskID {
			removed = append(removed, heap.Remove(&q.items, i).(*item))
			continue
		}
		i++
	}
	return removed
}
