// The pairwise transaction protocol between a lender and a borrower.
package engine

import (
	"github.com/felixniemeyer/repeer-simulation-B/internal/strategy"
)

// encounter plays one ordered lender/borrower transaction between the
// agents at the given population indices. On rejection only the borrower
// is notified and no energy moves. On acceptance the borrower's decision
// is relayed to the lender and both energies shift by the configured
// payouts, unconditionally — energy may go negative.
func (s *Simulation) encounter(lenderIdx, borrowerIdx int) {
	lender := s.Agents[lenderIdx]
	borrower := s.Agents[borrowerIdx]

	s.Stats.Encounters++

	if lender.Strategy.AcceptOrRejectRequest(borrower.ID) == strategy.Reject {
		borrower.Strategy.NotifyAboutRejection(lender.ID)
		s.Stats.Rejections++
		return
	}

	outcome := borrower.Strategy.CoopOrDefect(lender.ID)
	lender.Strategy.NotifyCoopOrDefect(borrower.ID, outcome == strategy.Cooperate)

	if outcome == strategy.Cooperate {
		lender.Energy += s.Params.LenderCoop
		borrower.Energy += s.Params.BorrowerCoop
		s.Stats.Cooperations++
	} else {
		lender.Energy += s.Params.LenderDefect
		borrower.Energy += s.Params.BorrowerDefect
		s.Stats.Defections++
	}
}
