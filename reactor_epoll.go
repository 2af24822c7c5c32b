//go:build linux
// +build linux

// File: reactor_epoll.go
// Package loom
// License: Apache-2.0
//
// Linux epoll(7)-backed Reactor, driving EpollCreate1/EpollCtl/EpollWait
// directly via golang.org/x/sys/unix.

package loom

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const maxEpollEvents = 128

// epollReactor is a Reactor backed by a single epoll instance.
type epollReactor struct {
	exec   *Executor
	epfd   int
	wakers map[int32]Waker
	closed bool
}

// NewReactor opens a fresh epoll instance for exec. exec is recorded
// purely so the shape of this constructor matches the rest of the design
// (create(executor-ref)); the Waker stored at Register time already
// carries its own executor reference, so Poll never needs to dereference
// it directly.
func NewReactor(exec *Executor) (Reactor, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, fmt.Errorf("loom: epoll create: %w", err)
	}
	return &epollReactor{
		exec:   exec,
		epfd:   epfd,
		wakers: make(map[int32]Waker),
	}, nil
}

// Register implements Reactor.
func (r *epollReactor) Register(fd uintptr, interest Interest, w Waker) error {
	if r.closed {
		return ErrReactorClosed
	}
	var events uint32
	if interest&Readable != 0 {
		events |= unix.EPOLLIN
	}
	if interest&Writable != 0 {
		events |= unix.EPOLLOUT
	}

	op := unix.EPOLL_CTL_ADD
	_, exists := r.wakers[int32(fd)]
	if exists {
		op = unix.EPOLL_CTL_MOD
	}

	ev := &unix.EpollEvent{Events: events, Fd: int32(fd)}
	if err := unix.EpollCtl(r.epfd, op, int(fd), ev); err != nil {
		return fmt.Errorf("loom: epoll ctl: %w", err)
	}
	r.wakers[int32(fd)] = w
	return nil
}

// Unregister implements Reactor.
func (r *epollReactor) Unregister(fd uintptr) error {
	if r.closed {
		return ErrReactorClosed
	}
	if _, ok := r.wakers[int32(fd)]; !ok {
		return nil
	}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, int(fd), nil); err != nil {
		return fmt.Errorf("loom: epoll ctl del: %w", err)
	}
	delete(r.wakers, int32(fd))
	return nil
}

// Registrations implements Reactor.
func (r *epollReactor) Registrations() int {
	return len(r.wakers)
}

// Poll implements Reactor. Events fire in the order epoll_wait reports
// them, producing the corresponding FIFO of re-enqueued tasks the
// scheduling model promises.
func (r *epollReactor) Poll() error {
	if len(r.wakers) == 0 {
		return nil
	}

	events := make([]unix.EpollEvent, maxEpollEvents)
	n, err := unix.EpollWait(r.epfd, events, -1)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		return fmt.Errorf("loom: epoll wait: %w", err)
	}

	for i := 0; i < n; i++ {
		if w, ok := r.wakers[events[i].Fd]; ok {
			w.Wake()
		}
	}
	return nil
}

// Close implements Reactor.
func (r *epollReactor) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return unix.Close(r.epfd)
}
