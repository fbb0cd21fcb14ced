// Console reporting — the human-facing stdout listing.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
)

// Console writes the report stream as plain text lines.
type Console struct {
	w io.Writer
}

// NewConsole creates a console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Roster(population []*agents.Agent) error {
	for _, a := range population {
		if _, err := fmt.Fprintln(c.w, a); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) RoundStats(round int, stats []StrategyStats) error {
	if _, err := fmt.Fprintf(c.w, "Round %d.\n", round); err != nil {
		return err
	}
	for _, st := range stats {
		fmt.Fprintf(c.w, "%s:\n", st.Label)
		fmt.Fprintf(c.w, " - count: %d\n", st.Count)
		fmt.Fprintf(c.w, " - mean energy: %s\n", strconv.FormatFloat(st.MeanEnergy, 'f', -1, 64))
	}
	_, err := fmt.Fprintln(c.w)
	return err
}
