// Agent spawning — builds the initial population from a roster of
// strategy factories.
package agents

import (
	"fmt"

	"github.com/felixniemeyer/repeer-simulation-B/internal/strategy"
)

// Factory constructs a fresh strategy instance for one agent. Construction
// failure aborts population generation.
type Factory func() (strategy.Strategy, error)

// RosterEntry pairs a strategy factory with how many agents play it.
type RosterEntry struct {
	Factory Factory
	Count   int
}

// Spawner creates agents and owns the monotonic id counter.
type Spawner struct {
	nextID        int
	initialEnergy float64
}

// NewSpawner creates a spawner issuing ids from zero. Every spawned agent
// starts with initialEnergy.
func NewSpawner(initialEnergy float64) *Spawner {
	return &Spawner{initialEnergy: initialEnergy}
}

// SetNextID sets the next id to be issued. Used when a population must
// grow after the initial spawn without colliding with existing ids.
func (s *Spawner) SetNextID(id int) {
	s.nextID = id
}

// SpawnPopulation creates one agent per roster slot, in roster order.
// Each agent gets its own strategy instance from the entry's factory.
func (s *Spawner) SpawnPopulation(roster []RosterEntry) ([]*Agent, error) {
	var population []*Agent
	for _, entry := range roster {
		for i := 0; i < entry.Count; i++ {
			agent, err := s.spawnOne(entry.Factory)
			if err != nil {
				return nil, err
			}
			population = append(population, agent)
		}
	}
	return population, nil
}

func (s *Spawner) spawnOne(factory Factory) (*Agent, error) {
	st, err := factory()
	if err != nil {
		return nil, fmt.Errorf("construct strategy for agent %d: %w", s.nextID, err)
	}
	agent := &Agent{
		ID:       s.nextID,
		Energy:   s.initialEnergy,
		Strategy: st,
	}
	s.nextID++
	return agent, nil
}
