package engine

import (
	"fmt"
	"testing"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
	"github.com/felixniemeyer/repeer-simulation-B/internal/strategy"
)

// scripted is a fixed-answer strategy for driving the protocol through
// specific paths. It records every call into an optional shared log.
type scripted struct {
	name   string
	accept strategy.RequestDecision
	coop   strategy.BorrowDecision

	log *[]string

	rejectedBy []int
	observed   map[int][]bool
}

func newScripted(name string, accept strategy.RequestDecision, coop strategy.BorrowDecision, log *[]string) *scripted {
	return &scripted{name: name, accept: accept, coop: coop, log: log, observed: make(map[int][]bool)}
}

func (s *scripted) record(format string, args ...any) {
	if s.log != nil {
		*s.log = append(*s.log, fmt.Sprintf(format, args...))
	}
}

func (s *scripted) AcceptOrRejectRequest(peer int) strategy.RequestDecision {
	s.record("%s lends to %d", s.name, peer)
	return s.accept
}

func (s *scripted) NotifyAboutRejection(peer int) {
	s.rejectedBy = append(s.rejectedBy, peer)
}

func (s *scripted) CoopOrDefect(peer int) strategy.BorrowDecision {
	s.record("%s borrows from %d", s.name, peer)
	return s.coop
}

func (s *scripted) NotifyCoopOrDefect(peer int, cooperated bool) {
	s.observed[peer] = append(s.observed[peer], cooperated)
}

func (s *scripted) Label() string { return s.name }

func (s *scripted) Clone() strategy.Strategy {
	c := newScripted(s.name, s.accept, s.coop, s.log)
	return c
}

func testParams() game.Params {
	return game.Params{LenderCoop: -1, LenderDefect: -3, BorrowerCoop: 2, BorrowerDefect: 3}
}

func pairSim(lender, borrower strategy.Strategy) *Simulation {
	return New(testParams(), []*agents.Agent{
		{ID: 0, Energy: 100, Strategy: lender},
		{ID: 1, Energy: 100, Strategy: borrower},
	})
}

func TestEncounterCooperation(t *testing.T) {
	lender := newScripted("lender", strategy.Accept, strategy.Defect, nil)
	borrower := newScripted("borrower", strategy.Reject, strategy.Cooperate, nil)
	sim := pairSim(lender, borrower)

	sim.encounter(0, 1)

	if got := sim.Agents[0].Energy; got != 99 {
		t.Fatalf("lender energy = %v, want 99", got)
	}
	if got := sim.Agents[1].Energy; got != 102 {
		t.Fatalf("borrower energy = %v, want 102", got)
	}
	if obs := lender.observed[1]; len(obs) != 1 || !obs[0] {
		t.Fatalf("lender observed %v, want one cooperation from peer 1", obs)
	}
	if sim.Stats.Cooperations != 1 || sim.Stats.Encounters != 1 {
		t.Fatalf("stats = %+v, want one cooperative encounter", sim.Stats)
	}
}

func TestEncounterDefection(t *testing.T) {
	lender := newScripted("lender", strategy.Accept, strategy.Cooperate, nil)
	borrower := newScripted("borrower", strategy.Reject, strategy.Defect, nil)
	sim := pairSim(lender, borrower)

	sim.encounter(0, 1)

	if got := sim.Agents[0].Energy; got != 97 {
		t.Fatalf("lender energy = %v, want 97", got)
	}
	if got := sim.Agents[1].Energy; got != 103 {
		t.Fatalf("borrower energy = %v, want 103", got)
	}
	if obs := lender.observed[1]; len(obs) != 1 || obs[0] {
		t.Fatalf("lender observed %v, want one defection from peer 1", obs)
	}
	if sim.Stats.Defections != 1 {
		t.Fatalf("stats = %+v, want one defection", sim.Stats)
	}
}

func TestEncounterRejection(t *testing.T) {
	lender := newScripted("lender", strategy.Reject, strategy.Cooperate, nil)
	borrower := newScripted("borrower", strategy.Accept, strategy.Cooperate, nil)
	sim := pairSim(lender, borrower)

	sim.encounter(0, 1)

	if sim.Agents[0].Energy != 100 || sim.Agents[1].Energy != 100 {
		t.Fatalf("energies = %v, %v, want both unchanged at 100",
			sim.Agents[0].Energy, sim.Agents[1].Energy)
	}
	if len(borrower.rejectedBy) != 1 || borrower.rejectedBy[0] != 0 {
		t.Fatalf("borrower rejections = %v, want [0]", borrower.rejectedBy)
	}
	if len(lender.observed) != 0 {
		t.Fatalf("lender observed %v after rejection, want nothing", lender.observed)
	}
	if sim.Stats.Rejections != 1 || sim.Stats.Encounters != 1 {
		t.Fatalf("stats = %+v, want one rejected encounter", sim.Stats)
	}
}

func TestEncounterCanDriveEnergyNegative(t *testing.T) {
	lender := newScripted("lender", strategy.Accept, strategy.Cooperate, nil)
	borrower := newScripted("borrower", strategy.Reject, strategy.Defect, nil)
	sim := New(testParams(), []*agents.Agent{
		{ID: 0, Energy: 2, Strategy: lender},
		{ID: 1, Energy: 2, Strategy: borrower},
	})

	sim.encounter(0, 1)
	if got := sim.Agents[0].Energy; got != -1 {
		t.Fatalf("lender energy = %v, want -1", got)
	}
}
