// Package agents provides the agent data model and population spawning.
package agents

import (
	"fmt"
	"strconv"

	"github.com/felixniemeyer/repeer-simulation-B/internal/strategy"
)

// Agent is a participant in the simulation: an owned strategy instance
// plus mutable survival state. The id is assigned at creation and stable
// for the agent's lifetime; ids are never reused within a run, even after
// the agent is culled.
type Agent struct {
	ID       int
	Energy   float64
	Strategy strategy.Strategy
}

// String renders the listing form id|energy|label.
func (a *Agent) String() string {
	return fmt.Sprintf("%d|%s|%s",
		a.ID,
		strconv.FormatFloat(a.Energy, 'f', -1, 64),
		a.Strategy.Label(),
	)
}
