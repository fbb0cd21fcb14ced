package strategy

import (
	"testing"

	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
)

func TestReputationUnknownPeer(t *testing.T) {
	params := game.DefaultParams()

	optimist := NewReputationTracker(params, true)
	if got := optimist.AcceptOrRejectRequest(7); got != Accept {
		t.Fatalf("optimist toward stranger: got %v, want accept", got)
	}

	pessimist := NewReputationTracker(params, false)
	if got := pessimist.AcceptOrRejectRequest(7); got != Reject {
		t.Fatalf("pessimist toward stranger: got %v, want reject", got)
	}
}

func TestReputationGatesAfterDefection(t *testing.T) {
	params := game.DefaultParams()
	tracker := NewReputationTracker(params, true)

	tracker.NotifyCoopOrDefect(3, false)
	score, known := tracker.Score(3)
	if !known || score != params.LenderDefect {
		t.Fatalf("score after defection: got %v (known=%v), want %v", score, known, params.LenderDefect)
	}
	if got := tracker.AcceptOrRejectRequest(3); got != Reject {
		t.Fatalf("request after defection: got %v, want reject", got)
	}
}

func TestReputationZeroScoreBoundary(t *testing.T) {
	// A zero-cost lender payout leaves a known peer at exactly zero.
	params := game.Params{LenderCoop: 0, LenderDefect: -3, BorrowerCoop: 2, BorrowerDefect: 3}

	for _, tc := range []struct {
		name       string
		optimistic bool
		want       RequestDecision
	}{
		{"optimist accepts at zero", true, Accept},
		{"pessimist rejects at zero", false, Reject},
	} {
		tracker := NewReputationTracker(params, tc.optimistic)
		tracker.NotifyCoopOrDefect(5, true)
		if score, _ := tracker.Score(5); score != 0 {
			t.Fatalf("%s: setup score = %v, want 0", tc.name, score)
		}
		if got := tracker.AcceptOrRejectRequest(5); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestReputationBorrowerAlwaysCooperates(t *testing.T) {
	params := game.DefaultParams()
	tracker := NewReputationTracker(params, false)

	// Even against a peer with a deeply negative ledger.
	for i := 0; i < 5; i++ {
		tracker.NotifyCoopOrDefect(9, false)
	}
	if got := tracker.CoopOrDefect(9); got != Cooperate {
		t.Fatalf("borrower decision: got %v, want cooperate", got)
	}
}

func TestReputationBorrowingCreditsLender(t *testing.T) {
	params := game.DefaultParams()
	tracker := NewReputationTracker(params, true)

	tracker.CoopOrDefect(2)
	score, known := tracker.Score(2)
	if !known || score != params.BorrowerCoop {
		t.Fatalf("score after first borrow: got %v (known=%v), want %v", score, known, params.BorrowerCoop)
	}
	tracker.CoopOrDefect(2)
	if score, _ := tracker.Score(2); score != 2*params.BorrowerCoop {
		t.Fatalf("score after second borrow: got %v, want %v", score, 2*params.BorrowerCoop)
	}
}

func TestReputationScoreMonotonicUnderCooperation(t *testing.T) {
	// With a non-negative lender payout, observing only cooperation never
	// lowers a peer's score.
	params := game.Params{LenderCoop: 1, LenderDefect: -3, BorrowerCoop: 2, BorrowerDefect: 3}
	tracker := NewReputationTracker(params, true)

	prev := 0.0
	for i := 0; i < 10; i++ {
		tracker.NotifyCoopOrDefect(4, true)
		score, _ := tracker.Score(4)
		if score < prev {
			t.Fatalf("score decreased from %v to %v after cooperation", prev, score)
		}
		prev = score
	}
}

func TestReputationClone(t *testing.T) {
	params := game.DefaultParams()
	tracker := NewReputationTracker(params, true)
	tracker.NotifyCoopOrDefect(1, false)

	clone, ok := tracker.Clone().(*ReputationTracker)
	if !ok {
		t.Fatal("clone is not a ReputationTracker")
	}

	origScore, _ := tracker.Score(1)
	cloneScore, _ := clone.Score(1)
	if origScore != cloneScore {
		t.Fatalf("clone score %v differs from original %v", cloneScore, origScore)
	}

	// Mutating the clone must not leak into the original.
	clone.NotifyCoopOrDefect(1, false)
	after, _ := tracker.Score(1)
	if after != origScore {
		t.Fatalf("original score changed to %v after mutating clone", after)
	}
}
