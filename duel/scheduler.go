package duel

import (
	"container/heap"
	"time"
)

// Handle is a cancellable scheduled callback.
type Handle struct {
	at   time.Duration
	seq  uint64
	fn   func()
	dead bool
}

// Cancel prevents the callback from running. It returns true if the
// callback was still pending.
func (h *Handle) Cancel() bool {
	if h == nil || h.dead {
		return false
	}
	h.dead = true
	h.fn = nil
	return true
}

// Pending reports whether the callback has neither fired nor been cancelled.
func (h *Handle) Pending() bool {
	return h != nil && !h.dead
}

// Scheduler is a virtual-time queue of callbacks driven by the host tick.
// It is not safe for concurrent use; callbacks run on the goroutine that
// calls Advance.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue handleQueue
}

// NewScheduler returns a scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time. Inside a callback it is the
// callback's own fire time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	h := &Handle{at: s.now + d, seq: s.seq, fn: fn}
	heap.Push(&s.queue, h)
	return h
}

// Advance moves virtual time forward by dt and fires every callback that
// falls due, in fire-time then schedule order.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&s.queue)
		if next.dead {
			continue
		}

		s.now = next.at
		fn := next.fn
		next.dead = true
		next.fn = nil
		fn()
	}

	s.now = target
}

// CancelAll cancels every pending callback.
func (s *Scheduler) CancelAll() {
	for _, h := range s.queue {
		h.Cancel()
	}
	s.queue = s.queue[:0]
}

// Pending returns the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.queue {
		if !h.dead {
			n++
		}
	}
	return n
}

type handleQueue []*Handle

func (q handleQueue) Len() int { return len(q) }

func (q handleQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q handleQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *handleQueue) Push(x any) { *q = append(*q, x.(*Handle)) }

func (q *handleQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return h
}
