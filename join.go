// File: join.go
// Package loom
// License: Apache-2.0
//
// Concurrent-all composition: each inner future is progressed at most
// once per outer Progress call, and never again once it has its own
// settled status recorded here.

package loom

// innerStatus tracks one operand of a Join independently of the operand's
// own Future state, since the operand must not be re-polled once it
// settles.
type innerStatus int

const (
	innerPending innerStatus = iota
	innerCompleted
	innerFailed
)

// JoinFuture runs fut1 and fut2 concurrently and settles once both have.
// It fails if either operand fails, with a distinct code for "only fut1",
// "only fut2", or "both".
type JoinFuture struct {
	BaseFuture
	fut1, fut2       Future
	status1, status2 innerStatus
	ok1              any
}

// Join composes fut1 and fut2 concurrently.
func Join(fut1, fut2 Future) *JoinFuture {
	return &JoinFuture{fut1: fut1, fut2: fut2}
}

// Progress implements Future.
func (j *JoinFuture) Progress(r Reactor, w Waker) State {
	if j.status1 == innerPending {
		switch j.fut1.Progress(r, w) {
		case Completed:
			j.status1 = innerCompleted
			j.ok1 = j.fut1.Ok()
		case Failed:
			j.status1 = innerFailed
		}
	}

	if j.status2 == innerPending {
		switch j.fut2.Progress(r, w) {
		case Completed:
			j.status2 = innerCompleted
		case Failed:
			j.status2 = innerFailed
		}
	}

	if j.status1 == innerPending || j.status2 == innerPending {
		return Pending
	}

	switch {
	case j.status1 == innerFailed && j.status2 == innerFailed:
		j.Fail(ErrJoinBoth)
		return Failed
	case j.status1 == innerFailed:
		j.Fail(ErrJoinFut1)
		return Failed
	case j.status2 == innerFailed:
		j.Fail(ErrJoinFut2)
		return Failed
	default:
		// Both succeeded. Either operand's result would be a valid,
		// deterministic choice; fut1's is kept rather than packaging both.
		j.Settle(j.ok1)
		return Completed
	}
}
