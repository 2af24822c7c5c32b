// File: select_test.go
// Package loom

package loom

import "testing"

func TestSelect_Fut1WinsImmediately(t *testing.T) {
	fut1 := newImmediateOK("fast")
	fut2 := newCountingPending(10)
	s := Select(fut1, fut2)
	r := &fakeReactor{}

	if state := s.Progress(r, Waker{}); state != Completed {
		t.Fatalf("expected Completed, got %v", state)
	}
	if s.Ok() != "fast" {
		t.Fatalf("expected result %q, got %v", "fast", s.Ok())
	}
	if fut2.calls != 0 {
		t.Fatalf("fut2 must never be progressed once fut1 wins on the first call, got %d calls", fut2.calls)
	}
}

func TestSelect_LoserAbandonedAfterWinnerSettles(t *testing.T) {
	fut1 := newCountingPending(1)
	fut2 := newCountingPending(10)
	s := Select(fut1, fut2)
	r := &fakeReactor{}

	s.Progress(r, Waker{}) // fut1 pending, fut2 progressed once
	s.Progress(r, Waker{}) // fut1 completes and wins

	callsAtWin := fut2.calls
	for i := 0; i < 3; i++ {
		s.Progress(r, Waker{})
	}
	if fut2.calls != callsAtWin {
		t.Fatalf("fut2 must not be progressed after fut1 has won, got %d additional calls", fut2.calls-callsAtWin)
	}
}

func TestSelect_OneFailsOtherStillPending(t *testing.T) {
	fut1 := newImmediateFail(ErrCodeIO)
	fut2 := newCountingPending(2)
	s := Select(fut1, fut2)
	r := &fakeReactor{}

	if state := s.Progress(r, Waker{}); state != Pending {
		t.Fatalf("expected Pending while fut2 may still win, got %v", state)
	}
	if state := s.Progress(r, Waker{}); state != Pending {
		t.Fatalf("expected Pending on second call, got %v", state)
	}
	if state := s.Progress(r, Waker{}); state != Completed {
		t.Fatalf("expected fut2 to eventually win, got %v", state)
	}
}

func TestSelect_BothFailedTwoPhaseSettlement(t *testing.T) {
	fut1 := newImmediateFail(ErrCodeIO)
	fut2 := newImmediateFail(ErrCodeInvalidArgument)
	s := Select(fut1, fut2)
	r := &fakeReactor{}

	state := s.Progress(r, Waker{})
	if state != Pending {
		t.Fatalf("expected the cycle that observes the second failure to report Pending, got %v", state)
	}

	state = s.Progress(r, Waker{})
	if state != Failed {
		t.Fatalf("expected Failed on the next Progress call, got %v", state)
	}
	if s.Errcode() != ErrCodeIO {
		t.Fatalf("expected fut1's error code to be reported, got %v", s.Errcode())
	}
}

func TestSelect_Fut2WinsAfterFut1Failed(t *testing.T) {
	fut1 := newImmediateFail(ErrCodeIO)
	fut2 := newCountingPending(1)
	s := Select(fut1, fut2)
	r := &fakeReactor{}

	s.Progress(r, Waker{}) // fut1 fails, fut2 still pending

	if state := s.Progress(r, Waker{}); state != Completed {
		t.Fatalf("expected fut2 to win after fut1 already failed, got %v", state)
	}
	if s.Ok() != 2 {
		t.Fatalf("expected fut2's settled call-count result 2, got %v", s.Ok())
	}
}
