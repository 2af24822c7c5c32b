// File: future_helpers_test.go
// Package loom

package loom

// immediateFuture settles on its very first Progress call, either with a
// fixed result or a fixed error code.
type immediateFuture struct {
	BaseFuture
	fail    bool
	code    ErrorCode
	result  any
	touched int
}

func newImmediateOK(result any) *immediateFuture {
	return &immediateFuture{result: result}
}

func newImmediateFail(code ErrorCode) *immediateFuture {
	return &immediateFuture{fail: true, code: code}
}

func (f *immediateFuture) Progress(r Reactor, w Waker) State {
	f.touched++
	if f.fail {
		f.Fail(f.code)
		return Failed
	}
	f.Settle(f.result)
	return Completed
}

// countingPendingFuture stays Pending for a fixed number of Progress calls,
// then settles OK. Used to verify a combinator never re-progresses a
// settled inner future.
type countingPendingFuture struct {
	BaseFuture
	pendingFor int
	calls      int
}

func newCountingPending(pendingFor int) *countingPendingFuture {
	return &countingPendingFuture{pendingFor: pendingFor}
}

func (f *countingPendingFuture) Progress(r Reactor, w Waker) State {
	f.calls++
	if f.calls <= f.pendingFor {
		return Pending
	}
	f.Settle(f.calls)
	return Completed
}

// fakeReactor is a no-op Reactor for combinator tests that never touch
// real file descriptors.
type fakeReactor struct {
	regs int
}

func (r *fakeReactor) Register(fd uintptr, interest Interest, w Waker) error {
	r.regs++
	return nil
}

func (r *fakeReactor) Unregister(fd uintptr) error {
	r.regs--
	return nil
}

func (r *fakeReactor) Poll() error { return nil }

func (r *fakeReactor) Registrations() int { return r.regs }

func (r *fakeReactor) Close() error { return nil }
