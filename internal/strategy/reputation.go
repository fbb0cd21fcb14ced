// Reputation tracking — gates lending on a running per-peer score ledger.
package strategy

import (
	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
)

// ReputationTracker keeps a score per peer and only lends to peers whose
// ledger is in good standing. The score blends what the peer paid out when
// this strategy borrowed from it and how the peer behaved toward it as a
// lender. Entries are created lazily on first contact and never removed.
type ReputationTracker struct {
	params     game.Params
	scores     map[int]float64
	optimistic bool
}

// NewReputationTracker creates a tracker with an empty ledger. An
// optimistic tracker lends to strangers and to peers at exactly zero;
// a pessimistic one requires a strictly positive score.
func NewReputationTracker(params game.Params, optimistic bool) *ReputationTracker {
	return &ReputationTracker{
		params:     params,
		scores:     make(map[int]float64),
		optimistic: optimistic,
	}
}

func (r *ReputationTracker) AcceptOrRejectRequest(peer int) RequestDecision {
	score, known := r.scores[peer]
	if !known {
		if r.optimistic {
			return Accept
		}
		return Reject
	}
	if score > 0 || (score == 0 && r.optimistic) {
		return Accept
	}
	return Reject
}

func (r *ReputationTracker) NotifyAboutRejection(peer int) {}

// CoopOrDefect always cooperates; reputation only gates the lending
// decision. The lender's score is credited with the borrower-side payout
// it just granted.
func (r *ReputationTracker) CoopOrDefect(peer int) BorrowDecision {
	r.scores[peer] += r.params.BorrowerCoop
	return Cooperate
}

func (r *ReputationTracker) NotifyCoopOrDefect(peer int, cooperated bool) {
	if cooperated {
		r.scores[peer] += r.params.LenderCoop
	} else {
		r.scores[peer] += r.params.LenderDefect
	}
}

func (r *ReputationTracker) Label() string { return "reputation tracker" }

// Score returns the accumulated ledger entry for peer, if any.
func (r *ReputationTracker) Score(peer int) (float64, bool) {
	score, known := r.scores[peer]
	return score, known
}

func (r *ReputationTracker) Clone() Strategy {
	scores := make(map[int]float64, len(r.scores))
	for peer, score := range r.scores {
		scores[peer] = score
	}
	return &ReputationTracker{
		params:     r.params,
		scores:     scores,
		optimistic: r.optimistic,
	}
}
