// Package notify implements the scheme-change broadcast machinery: a single
// serial delivery queue (the process's "UI queue" for style work) and hubs
// that fan one change pulse out to their current subscribers.
package notify

import "sync"

// Queue executes dispatched functions one at a time, in dispatch order, on a
// dedicated goroutine. Dispatch never blocks the caller; the backlog is
// unbounded. Slow work stalls every later delivery, so dispatched functions
// are expected to be fast.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog []func()
	closed  bool
}

// NewQueue starts the delivery goroutine.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Dispatch enqueues fn for serial execution. Dispatching to a closed queue
// drops fn.
func (q *Queue) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.backlog = append(q.backlog, fn)
	q.cond.Broadcast()
}

// Sync blocks until everything dispatched before the call has executed.
// Intended for tests and shutdown paths.
func (q *Queue) Sync() {
	done := make(chan struct{})
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.backlog = append(q.backlog, func() { close(done) })
	q.cond.Broadcast()
	q.mu.Unlock()
	<-done
}

// Close stops the delivery goroutine after the current backlog drains.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for len(q.backlog) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.backlog) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		fn := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.mu.Unlock()

		fn()
	}
}
