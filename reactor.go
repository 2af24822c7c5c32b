// File: reactor.go
// Package loom
// License: Apache-2.0
//
// Platform-neutral reactor contract. Concrete backends live in
// reactor_epoll.go (Linux) and reactor_stub.go (everywhere else).

package loom

// Interest is a bitmask of readiness conditions a descriptor is watched
// for. It follows the level-triggered semantics of the host multiplexer:
// a registered interest keeps firing for as long as it holds, not only on
// the edge transition into readiness.
type Interest uint8

const (
	// Readable means the descriptor is ready to be read without blocking.
	Readable Interest = 1 << iota
	// Writable means the descriptor is ready to be written without blocking.
	Writable
)

// Reactor multiplexes readiness events for registered descriptors and
// routes them to the Waker supplied at registration time. It does not
// auto-unregister on wake: the owning Future is responsible for calling
// Unregister once it no longer needs the descriptor, or for re-registering
// if it made only partial progress.
type Reactor interface {
	// Register adds (or replaces) an interest on fd, storing w so that
	// future readiness on fd routes to it. Returns an error without
	// mutating state on OS failure.
	Register(fd uintptr, interest Interest, w Waker) error

	// Unregister removes the interest on fd.
	Unregister(fd uintptr) error

	// Poll blocks with an infinite timeout until at least one registered
	// event fires, and synchronously wakes every corresponding Waker.
	// Returns immediately, without syscalling, if nothing is registered.
	Poll() error

	// Registrations reports the number of descriptors currently watched.
	Registrations() int

	// Close releases the underlying multiplexer handle.
	Close() error
}
