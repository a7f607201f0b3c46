package core

import (
	"sort"
	"time"
)

// Scheduler runs callbacks after a delay on the caller's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type deferred struct {
	at  time.Time
	seq uint64
	fn  func()
}

// DeferQueue is a cooperative timer wheel for single-threaded event loops. It
// never starts goroutines: callbacks only run inside Advance, in deadline
// order, on the goroutine that calls it.
type DeferQueue struct {
	now     time.Time
	seq     uint64
	pending []deferred
}

// NewDeferQueue returns a queue whose clock starts at start.
func NewDeferQueue(start time.Time) *DeferQueue {
	return &DeferQueue{now: start}
}

// Now returns the queue's current clock.
func (q *DeferQueue) Now() time.Time { return q.now }

// AfterFunc schedules fn to run once the clock reaches Now()+d. Negative
// delays are treated as zero.
func (q *DeferQueue) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	q.seq++
	item := deferred{at: q.now.Add(d), seq: q.seq, fn: fn}
	idx := sort.Search(len(q.pending), func(i int) bool {
		p := q.pending[i]
		return p.at.After(item.at) || (p.at.Equal(item.at) && p.seq > item.seq)
	})
	q.pending = append(q.pending, deferred{})
	copy(q.pending[idx+1:], q.pending[idx:])
	q.pending[idx] = item
}

// Advance moves the clock to now and runs the callbacks that were due at that
// time, in deadline order. The clock reads now before any of them runs, so a
// callback that reschedules itself lands relative to when it actually fired and
// a stalled loop never replays missed deadlines. Callbacks scheduled during the
// call wait for the next Advance, even with a zero delay. Advance returns the
// number of callbacks run. A clock moving backwards is ignored.
func (q *DeferQueue) Advance(now time.Time) int {
	n := sort.Search(len(q.pending), func(i int) bool {
		return q.pending[i].at.After(now)
	})
	due := make([]deferred, n)
	copy(due, q.pending[:n])
	q.pending = q.pending[n:]
	if now.After(q.now) {
		q.now = now
	}
	for _, item := range due {
		item.fn()
	}
	return n
}

// AdvanceBy moves the clock forward by d. See Advance.
func (q *DeferQueue) AdvanceBy(d time.Duration) int {
	return q.Advance(q.now.Add(d))
}

// Len reports how many callbacks are waiting.
func (q *DeferQueue) Len() int { return len(q.pending) }

// Next returns the deadline of the earliest pending callback.
func (q *DeferQueue) Next() (time.Time, bool) {
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	return q.pending[0].at, true
}
