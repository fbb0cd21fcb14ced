// Package report aggregates per-strategy population statistics and defines
// the write-only reporting surface the simulation emits to.
package report

import (
	"sort"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
)

// StrategyStats aggregates the living agents sharing one strategy label.
type StrategyStats struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	MeanEnergy float64 `json:"meanEnergy"`
}

// Reporter receives the simulation's output stream. Implementations are
// write-only sinks; nothing is read back into the simulation.
type Reporter interface {
	// Roster receives the full agent listing once, after the population
	// has been built.
	Roster(population []*agents.Agent) error

	// RoundStats receives per-label statistics before each round's
	// encounters, sorted ascending by label.
	RoundStats(round int, stats []StrategyStats) error
}

// Aggregate computes per-label living count and mean energy, sorted
// ascending by label. An empty population yields an empty slice.
func Aggregate(population []*agents.Agent) []StrategyStats {
	count := make(map[string]int)
	sum := make(map[string]float64)
	for _, a := range population {
		label := a.Strategy.Label()
		count[label]++
		sum[label] += a.Energy
	}

	stats := make([]StrategyStats, 0, len(count))
	for label, n := range count {
		stats = append(stats, StrategyStats{
			Label:      label,
			Count:      n,
			MeanEnergy: sum[label] / float64(n),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Label < stats[j].Label })
	return stats
}
