package engine

import (
	"container/heap"
	"time"
)

// TimerQueue holds deferred callbacks keyed by game time
// Callbacks never run on their own: the owner polls RunDue once per tick (and wherever an up-to-date
// view is required), so every callback executes on the same logical thread as the code that polls
// No cancellation: once scheduled, a callback always fires
type TimerQueue struct {
	clock   TimeProvider
	pending timerHeap
	seq     uint64
	running bool
}

type timer struct {
	deadline time.Time
	seq      uint64 // Stable order for equal deadlines
	fn       func()
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = timer{}
	*h = old[:n-1]
	return t
}

// NewTimerQueue creates a queue measuring deadlines against clock
func NewTimerQueue(clock TimeProvider) *TimerQueue {
	return &TimerQueue{clock: clock}
}

// Now returns the queue's current game time
func (q *TimerQueue) Now() time.Time {
	return q.clock.Now()
}

// AfterFunc schedules fn to run once d has elapsed on the queue's clock
// Returns the absolute deadline fn fires at; never blocks
func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) time.Time {
	q.seq++
	deadline := q.clock.Now().Add(d)
	heap.Push(&q.pending, timer{
		deadline: deadline,
		seq:      q.seq,
		fn:       fn,
	})
	return deadline
}

// RunDue fires every callback whose deadline is at or before now, in deadline order
// Re-entrant calls from inside a callback return immediately
func (q *TimerQueue) RunDue() int {
	if q.running {
		return 0
	}
	q.running = true
	defer func() { q.running = false }()

	now := q.clock.Now()
	fired := 0
	for q.pending.Len() > 0 && !q.pending[0].deadline.After(now) {
		t := heap.Pop(&q.pending).(timer)
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of scheduled callbacks
func (q *TimerQueue) Pending() int {
	return q.pending.Len()
}

// NextDeadline returns the earliest scheduled deadline
func (q *TimerQueue) NextDeadline() (time.Time, bool) {
	if q.pending.Len() == 0 {
		return time.Time{}, false
	}
	return q.pending[0].deadline, true
}
