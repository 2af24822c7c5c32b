// File: executor.go
// Package loom
// License: Apache-2.0
//
// The cooperative scheduler: a bounded run queue driven to quiescence,
// falling back to the Reactor whenever the queue empties but
// registrations remain.

package loom

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/loomrt/loom/control"
)

// taskHandle is the executor's private bookkeeping for a spawned Future:
// an is_active flag and a queued-dedup bit, kept out of the public Future
// contract so leaf futures never see it.
type taskHandle struct {
	id     uuid.UUID
	future Future
	active bool
	queued bool
}

// Executor is a run-queue driven cooperative scheduler owning exactly one
// Reactor. Every method here, and every Future.Progress call it makes,
// runs on the goroutine that calls Run, except the ConfigStore reload
// hook, which control.ConfigStore runs on a goroutine of its own and
// which only changes the run queue's atomic capacity.
type Executor struct {
	id        uuid.UUID
	queue     *boundedQueue
	reactor   Reactor
	metrics   *control.MetricsRegistry
	probes    *control.DebugProbes
	probeName string
	live      map[uuid.UUID]*taskHandle
}

// NewExecutor returns an Executor whose run queue holds up to capacity
// pending tasks and which owns a fresh epoll Reactor, unless overridden
// via WithReactor.
func NewExecutor(capacity int, opts ...ExecutorOption) (*Executor, error) {
	var cfg executorConfig
	for _, o := range opts {
		o(&cfg)
	}

	e := &Executor{
		id:      uuid.New(),
		queue:   newBoundedQueue(capacity),
		metrics: cfg.metrics,
		probes:  cfg.probes,
		live:    make(map[uuid.UUID]*taskHandle),
	}

	reactor := cfg.reactor
	if reactor == nil {
		r, err := NewReactor(e)
		if err != nil {
			return nil, fmt.Errorf("loom: create executor: %w", err)
		}
		reactor = r
	}
	e.reactor = reactor

	if e.probes != nil {
		e.probeName = fmt.Sprintf("executor.%s", e.id)
		e.probes.RegisterProbe(e.probeName, e.debugSnapshot)
	}

	if cfg.configs != nil {
		e.applyCapacityFromConfig(cfg.configs)
		cfg.configs.OnReload(func() { e.applyCapacityFromConfig(cfg.configs) })
	}
	return e, nil
}

// applyCapacityFromConfig re-reads "run_queue_capacity" from cs, falling
// back to the run queue's current capacity (a no-op) if the key is
// absent or holds a non-int value.
func (e *Executor) applyCapacityFromConfig(cs *control.ConfigStore) {
	current := int(e.queue.cap.Load())
	e.queue.setCapacity(cs.Int("run_queue_capacity", current))
}

// Spawn marks f active and enqueues it. Safe to call both before the
// first Run and from inside a Future's own Progress method. If the run
// queue is already at capacity, Spawn is a no-op — callers are
// responsible for respecting the capacity they chose at creation.
func (e *Executor) Spawn(f Future) {
	t := &taskHandle{id: uuid.New(), future: f, active: true}
	if !e.queue.push(t) {
		return
	}
	t.queued = true
	e.live[t.id] = t
	if e.metrics != nil {
		e.metrics.Increment("tasks_spawned", 1)
	}
	e.reportGauges()
}

// resumeTask is what a Waker calls. Re-waking a settled or
// already-queued task is a deliberate no-op: settlement is final, and
// duplicate wake-ups under level-triggered readiness must be harmless.
func (e *Executor) resumeTask(t *taskHandle) {
	if !t.active || t.queued {
		return
	}
	if !e.queue.push(t) {
		return
	}
	t.queued = true
	e.reportGauges()
}

// Run drains the run queue to quiescence, blocking in the Reactor
// whenever the queue empties but registrations remain, until both are
// empty.
func (e *Executor) Run() {
	for e.queue.len() > 0 || e.reactor.Registrations() > 0 {
		for e.queue.len() > 0 {
			t := e.queue.pop()
			t.queued = false

			w := Waker{exec: e, task: t}
			state := t.future.Progress(e.reactor, w)

			if state == Completed || state == Failed {
				t.active = false
				delete(e.live, t.id)
				if e.metrics != nil {
					e.metrics.Increment("tasks_settled", 1)
				}
			}
			e.reportGauges()
		}

		if e.reactor.Registrations() > 0 {
			if err := e.reactor.Poll(); err != nil {
				log.Fatalf("loom: reactor poll failed: %v", err)
			}
			if e.metrics != nil {
				e.metrics.Increment("poll_cycles", 1)
			}
			e.reportGauges()
		}
	}
}

// Close releases the Reactor and the run queue storage, and removes this
// executor's debug probe so a shared DebugProbes registry stops calling
// into it. Callers must not call Close while Run is still on the stack.
func (e *Executor) Close() error {
	if e.probes != nil {
		e.probes.UnregisterProbe(e.probeName)
	}
	return e.reactor.Close()
}

// reportGauges updates the point-in-time metrics (run-queue depth,
// registration count); the monotonic counters are updated directly at
// their source via Increment.
func (e *Executor) reportGauges() {
	if e.metrics != nil {
		e.metrics.Set("run_queue_depth", e.queue.len())
		e.metrics.Set("registrations", e.reactor.Registrations())
	}
}

func (e *Executor) debugSnapshot() any {
	out := make(map[string]string, len(e.live))
	for id, t := range e.live {
		state := "settled"
		if t.active {
			state = "active"
		}
		out[id.String()] = state
	}
	return out
}
