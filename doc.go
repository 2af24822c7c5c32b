// File: doc.go
// Package loom
// Author: loom contributors
// License: Apache-2.0
//
// Package loom implements a single-threaded cooperative asynchronous
// execution runtime: a run-queue driven Executor, an epoll-backed I/O
// Reactor, and a small algebra of Future combinators (Then, Join, Select).
//
// A Future is a resumable computation polled via Progress. An Executor
// owns a bounded FIFO run queue and a Reactor; it pops tasks, calls their
// Progress method, and re-enqueues them when a Waker fires. A task that
// returns Pending is responsible for having registered its own wake-up
// source — either with the Reactor, or by stashing the Waker for later.
//
// Nothing in this package spawns a goroutine. The whole run loop, every
// Progress call, and every Reactor callback execute on the goroutine that
// calls (*Executor).Run.
package loom
