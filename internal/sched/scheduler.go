// Package sched implements a cooperative, single-threaded timer queue.
//
// The Scheduler owns a virtual clock and a min-heap of pending tasks keyed by
// (fire time, insertion order). Tasks run one at a time and always to
// completion. There is no cancel call: a periodic task repeats by scheduling
// itself again before it returns, and stops by not doing so.
//
// The Scheduler is not safe for concurrent use. The platform drives it from a
// single goroutine (the Bubble Tea update loop) by calling Advance once per
// frame.
package sched

import (
	"container/heap"
	"time"
)

// MinDelay is the shortest delay After accepts. Shorter delays are raised to
// it, so a task that requeues itself with zero delay cannot stall Advance.
const MinDelay = time.Millisecond

// Task is a unit of work run by the scheduler.
type Task func()

type entry struct {
	at   time.Duration
	seq  uint64
	name string
	run  Task
}

// queue implements heap.Interface ordered by fire time, then insertion order.
type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(*entry)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Scheduler is a virtual clock with a queue of timed tasks.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	ran   uint64
	queue queue
}

// New creates a scheduler with its clock at zero and no pending tasks.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules task to run delay after the current virtual time.
// Tasks due at the same instant run in the order they were scheduled.
func (s *Scheduler) After(delay time.Duration, name string, task Task) {
	if task == nil {
		return
	}
	if delay < MinDelay {
		delay = MinDelay
	}
	s.seq++
	heap.Push(&s.queue, &entry{
		at:   s.now + delay,
		seq:  s.seq,
		name: name,
		run:  task,
	})
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// PendingNamed returns how many queued tasks carry the given name.
func (s *Scheduler) PendingNamed(name string) int {
	n := 0
	for _, e := range s.queue {
		if e.name == name {
			n++
		}
	}
	return n
}

// Ran returns the total number of tasks executed since the last Reset.
func (s *Scheduler) Ran() uint64 {
	return s.ran
}

// RunNext moves the clock to the earliest pending task and runs it.
// Returns false if nothing is queued.
func (s *Scheduler) RunNext() bool {
	if len(s.queue) == 0 {
		return false
	}
	e := heap.Pop(&s.queue).(*entry)
	if e.at > s.now {
		s.now = e.at
	}
	s.ran++
	e.run()
	return true
}

// Advance runs every task due within the next d of virtual time, including
// tasks scheduled by those tasks, then moves the clock to now+d.
// Returns the number of tasks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	count := 0
	for len(s.queue) > 0 && s.queue[0].at <= target {
		s.RunNext()
		count++
	}
	s.now = target
	return count
}

// Reset drops all pending tasks and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.now = 0
	s.seq = 0
	s.ran = 0
	s.queue = nil
}
