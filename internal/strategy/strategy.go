// Package strategy provides the pluggable behavior policies agents play
// the borrow/lend game with.
package strategy

// RequestDecision is a lender's answer to a borrow request.
type RequestDecision uint8

const (
	Reject RequestDecision = iota
	Accept
)

func (d RequestDecision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject"
}

// BorrowDecision is a borrower's action once the lender has granted access.
type BorrowDecision uint8

const (
	Defect BorrowDecision = iota
	Cooperate
)

func (d BorrowDecision) String() string {
	if d == Cooperate {
		return "cooperate"
	}
	return "defect"
}

// Strategy is the behavior contract one agent plays with. Every instance is
// owned by exactly one agent and keeps whatever internal state it needs;
// peers are identified by their agent id.
type Strategy interface {
	// AcceptOrRejectRequest decides, in the lender role, whether to grant
	// the prospective borrower access.
	AcceptOrRejectRequest(peer int) RequestDecision

	// NotifyAboutRejection informs the borrower-side strategy that peer,
	// acting as lender, rejected its request.
	NotifyAboutRejection(peer int)

	// CoopOrDefect decides, in the borrower role, whether to cooperate
	// with lender peer after being granted access.
	CoopOrDefect(peer int) BorrowDecision

	// NotifyCoopOrDefect informs the lender-side strategy how borrower
	// peer behaved.
	NotifyCoopOrDefect(peer int, cooperated bool)

	// Label is the stable descriptive name used for grouping in reports.
	Label() string

	// Clone returns an independent copy carrying the same policy and
	// accumulated peer state. The copy shares no mutable state with its
	// source.
	Clone() Strategy
}
