// Package engine provides the round-based simulation loop: report,
// all-pairs encounters, then culling.
package engine

import (
	"log/slog"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
	"github.com/felixniemeyer/repeer-simulation-B/internal/report"
)

// Simulation holds the living population and wires rounds together.
// Execution is single-threaded; agents are mutated one pair at a time.
type Simulation struct {
	Params    game.Params
	Agents    []*agents.Agent
	Reporters []report.Reporter

	// Statistics accumulated across the whole run.
	Stats SimStats
}

// SimStats tracks aggregate run statistics.
type SimStats struct {
	Encounters   int // ordered-pair encounters played, including rejections
	Rejections   int
	Cooperations int
	Defections   int
	Culled       int
}

// New creates a simulation over the given population. Reporters receive
// the output stream; a failing reporter is logged and skipped, never
// stops the run.
func New(params game.Params, population []*agents.Agent, reporters ...report.Reporter) *Simulation {
	return &Simulation{
		Params:    params,
		Agents:    population,
		Reporters: reporters,
	}
}

// Run plays the configured number of rounds. Each round reports current
// per-strategy statistics, runs the all-pairs encounters, then removes
// agents whose energy has dropped to zero or below. The loop always
// completes all rounds; an extinct population degrades to no-op rounds.
func (s *Simulation) Run(rounds int) {
	s.emitRoster()
	for round := 0; round < rounds; round++ {
		s.emitRoundStats(round)
		s.playRound()
		s.cull(round)
	}
}

// playRound runs the encounter protocol over every unordered pair of
// living agents in ascending index order. Each pair plays twice, swapping
// the lender role, so every agent lends once and borrows once against
// every other. The order is part of the contract: reputation-sensitive
// strategies produce different trajectories under any other order.
func (s *Simulation) playRound() {
	for i := 0; i < len(s.Agents); i++ {
		for j := i + 1; j < len(s.Agents); j++ {
			s.encounter(i, j)
			s.encounter(j, i)
		}
	}
}

// cull removes every agent whose energy is zero or below. Removal happens
// only between rounds; deltas from the round just played stand.
func (s *Simulation) cull(round int) {
	alive := s.Agents[:0]
	for _, a := range s.Agents {
		if a.Energy > 0 {
			alive = append(alive, a)
		}
	}
	culled := len(s.Agents) - len(alive)
	for i := len(alive); i < len(s.Agents); i++ {
		s.Agents[i] = nil
	}
	s.Agents = alive

	if culled > 0 {
		s.Stats.Culled += culled
		slog.Info("agents culled", "round", round, "culled", culled, "alive", len(s.Agents))
	}
}

func (s *Simulation) emitRoster() {
	for _, r := range s.Reporters {
		if err := r.Roster(s.Agents); err != nil {
			slog.Warn("roster report failed", "error", err)
		}
	}
}

func (s *Simulation) emitRoundStats(round int) {
	stats := report.Aggregate(s.Agents)
	for _, r := range s.Reporters {
		if err := r.RoundStats(round, stats); err != nil {
			slog.Warn("round report failed", "round", round, "error", err)
		}
	}
}
