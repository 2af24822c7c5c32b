// File: runqueue.go
// Package loom
// License: Apache-2.0
//
// A bounded FIFO of task handles: a ring buffer whose capacity is set at
// creation and can be changed later via setCapacity. eapache/queue's Queue is an auto-growing ring buffer, so the
// capacity contract here is enforced by this wrapper at Push time rather
// than by the underlying queue itself.

package loom

import (
	"sync/atomic"

	"github.com/eapache/queue"
)

type boundedQueue struct {
	q   *queue.Queue
	cap atomic.Int64
}

func newBoundedQueue(capacity int) *boundedQueue {
	b := &boundedQueue{q: queue.New()}
	b.cap.Store(int64(capacity))
	return b
}

// push enqueues t, returning false without mutating state if the queue is
// already at capacity. Over-capacity enqueue is a contract violation the
// caller is expected to avoid; this just makes it a silent no-op instead
// of undefined behavior.
func (b *boundedQueue) push(t *taskHandle) bool {
	if int64(b.q.Length()) >= b.cap.Load() {
		return false
	}
	b.q.Add(t)
	return true
}

func (b *boundedQueue) pop() *taskHandle {
	if b.q.Length() == 0 {
		return nil
	}
	return b.q.Remove().(*taskHandle)
}

func (b *boundedQueue) len() int {
	return b.q.Length()
}

// setCapacity changes the enforced capacity without touching whatever is
// already queued; a lowered capacity only takes effect on the next push.
// Safe to call from a goroutine other than the one driving Run, e.g. a
// ConfigStore reload hook.
func (b *boundedQueue) setCapacity(capacity int) {
	b.cap.Store(int64(capacity))
}
