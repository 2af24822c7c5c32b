// File: options.go
// Package loom
// License: Apache-2.0
//
// Functional options for NewExecutor.

package loom

import "github.com/loomrt/loom/control"

type executorConfig struct {
	reactor Reactor
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	configs *control.ConfigStore
}

// ExecutorOption customizes Executor construction.
type ExecutorOption func(*executorConfig)

// WithReactor overrides the default epoll backend — chiefly for tests that
// want a fake Reactor instead of a real multiplexer.
func WithReactor(r Reactor) ExecutorOption {
	return func(c *executorConfig) { c.reactor = r }
}

// WithMetrics attaches a MetricsRegistry the run loop updates every batch.
func WithMetrics(m *control.MetricsRegistry) ExecutorOption {
	return func(c *executorConfig) { c.metrics = m }
}

// WithDebugProbes attaches a DebugProbes registry; the Executor registers
// an "executor.<id>" probe reporting live task state, and unregisters it
// on Close.
func WithDebugProbes(p *control.DebugProbes) ExecutorOption {
	return func(c *executorConfig) { c.probes = p }
}

// WithConfigStore attaches a ConfigStore the Executor reads its run-queue
// capacity from (key "run_queue_capacity"), re-reading it on every config
// reload so capacity can change while Run is on the stack.
func WithConfigStore(cs *control.ConfigStore) ExecutorOption {
	return func(c *executorConfig) { c.configs = cs }
}
