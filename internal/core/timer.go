package core

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

// Timers is a simulated-time scheduler. Callbacks run synchronously from
// Advance, in deadline order, on the caller's goroutine.
type Timers struct {
	now     time.Duration
	nextID  TimerID
	queue   timerQueue
	pending map[TimerID]*timer
}

type timer struct {
	id    TimerID
	at    time.Duration
	fn    func()
	index int
}

// NewTimers creates a scheduler at time zero.
func NewTimers() *Timers {
	return &Timers{pending: make(map[TimerID]*timer)}
}

// Now returns the current simulated time.
func (t *Timers) Now() time.Duration {
	return t.now
}

// After schedules fn to run once d has elapsed.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	t.nextID++
	tm := &timer{id: t.nextID, at: t.now + d, fn: fn}
	heap.Push(&t.queue, tm)
	t.pending[tm.id] = tm
	return tm.id
}

// Cancel removes a pending timer. Returns false if it already fired or never existed.
func (t *Timers) Cancel(id TimerID) bool {
	tm, ok := t.pending[id]
	if !ok {
		return false
	}
	heap.Remove(&t.queue, tm.index)
	delete(t.pending, id)
	return true
}

// Active reports whether a timer is still pending.
func (t *Timers) Active(id TimerID) bool {
	_, ok := t.pending[id]
	return ok
}

// Pending returns the number of scheduled timers.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Advance moves time forward by dt and fires every timer that came due.
// While a callback runs, Now reports that timer's deadline.
func (t *Timers) Advance(dt time.Duration) {
	target := t.now + dt
	for t.queue.Len() > 0 {
		next := t.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&t.queue)
		delete(t.pending, next.id)
		if next.at > t.now {
			t.now = next.at
		}
		next.fn()
	}
	t.now = target
}

// Stop cancels every pending timer.
func (t *Timers) Stop() {
	t.queue = t.queue[:0]
	for id := range t.pending {
		delete(t.pending, id)
	}
}

// timerQueue orders timers by deadline, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].id < q[j].id
	}
	return q[i].at < q[j].at
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	tm := x.(*timer)
	tm.index = len(*q)
	*q = append(*q, tm)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	tm := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return tm
}
