// File: select.go
// Package loom
// License: Apache-2.0
//
// Concurrent-first-success composition, including its two-phase
// settlement of the both-failed case: a cycle that observes the second
// failure only records BOTH_FAILED, and the outer Failed is reported on
// the *next* Progress call.

package loom

// selectStatus is the single discriminator select.c keeps: which side (if
// any) has won, and which side(s) (if any) have failed.
type selectStatus int

const (
	selectNone selectStatus = iota
	selectFut1OK
	selectFut2OK
	selectFut1Failed
	selectFut2Failed
	selectBothFailed
)

// SelectFuture runs fut1 and fut2 concurrently and settles as soon as
// either completes. The loser is abandoned: once a side has completed or
// failed, its inner future is never progressed again, even if it was
// PENDING when abandoned.
type SelectFuture struct {
	BaseFuture
	fut1, fut2 Future
	status     selectStatus
}

// Select composes fut1 and fut2, taking whichever completes first.
func Select(fut1, fut2 Future) *SelectFuture {
	return &SelectFuture{fut1: fut1, fut2: fut2}
}

// Progress implements Future.
func (s *SelectFuture) Progress(r Reactor, w Waker) State {
	switch s.status {
	case selectFut1OK:
		s.Settle(s.fut1.Ok())
		return Completed
	case selectFut2OK:
		s.Settle(s.fut2.Ok())
		return Completed
	case selectBothFailed:
		// Deterministic, documented choice: report fut1's code.
		s.Fail(s.fut1.Errcode())
		return Failed
	}

	if s.status == selectNone || s.status == selectFut2Failed {
		switch s.fut1.Progress(r, w) {
		case Completed:
			s.status = selectFut1OK
			s.Settle(s.fut1.Ok())
			return Completed
		case Failed:
			if s.status == selectFut2Failed {
				s.status = selectBothFailed
			} else {
				s.status = selectFut1Failed
			}
		}
	}

	if s.status == selectNone || s.status == selectFut1Failed {
		switch s.fut2.Progress(r, w) {
		case Completed:
			s.status = selectFut2OK
			s.Settle(s.fut2.Ok())
			return Completed
		case Failed:
			if s.status == selectFut1Failed {
				s.status = selectBothFailed
			} else {
				s.status = selectFut2Failed
			}
		}
	}

	// Both sides have now failed: no inner is left to arrange a wake-up,
	// so wake ourselves and report Failed on the next Progress call.
	if s.status == selectBothFailed {
		w.Wake()
	}

	// One side may have failed while the other is still pending; select
	// does not fail yet — the still-pending side may still win.
	return Pending
}
