// Temperamental play — accept/cooperate odds drift smoothly over the
// strategy's own encounter clock.
package strategy

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// TemperamentalLabel is the report label for the mood-driven strategy.
const TemperamentalLabel = "temperamental"

// clockStep advances the mood clock once per decision. Small enough that
// consecutive decisions land on correlated noise samples.
const clockStep = 0.05

// Temperamental behaves like Random but modulates both probabilities with
// smooth noise over a private clock, so its disposition swings through
// generous and hostile phases instead of staying flat. Given the same seed
// it makes the same decision sequence.
type Temperamental struct {
	acceptBase float64
	coopBase   float64
	swing      float64 // noise amplitude applied to both probabilities
	seed       int64
	clock      float64
	noise      opensimplex.Noise
	rng        *rand.Rand
}

// NewTemperamental creates a mood-driven strategy centered on the given
// base probabilities. swing is the peak deviation applied in both
// directions; effective probabilities are clamped to [0, 1].
func NewTemperamental(acceptBase, coopBase, swing float64, seed int64) *Temperamental {
	return &Temperamental{
		acceptBase: acceptBase,
		coopBase:   coopBase,
		swing:      swing,
		seed:       seed,
		noise:      opensimplex.NewNormalized(seed),
		rng:        rand.New(rand.NewSource(seed + 1)),
	}
}

// mood samples the noise field on the given lane and advances the clock.
func (t *Temperamental) mood(base float64, lane float64) float64 {
	n := t.noise.Eval2(t.clock, lane) // normalized to [0, 1]
	t.clock += clockStep
	return clamp01(base + t.swing*(2*n-1))
}

func (t *Temperamental) AcceptOrRejectRequest(peer int) RequestDecision {
	if t.rng.Float64() < t.mood(t.acceptBase, 0) {
		return Accept
	}
	return Reject
}

func (t *Temperamental) NotifyAboutRejection(peer int) {}

func (t *Temperamental) CoopOrDefect(peer int) BorrowDecision {
	if t.rng.Float64() < t.mood(t.coopBase, 1) {
		return Cooperate
	}
	return Defect
}

func (t *Temperamental) NotifyCoopOrDefect(peer int, cooperated bool) {}

func (t *Temperamental) Label() string { return TemperamentalLabel }

// Clone returns a copy with the same configuration and mood clock,
// reseeded from the construction seed like Random.Clone.
func (t *Temperamental) Clone() Strategy {
	c := NewTemperamental(t.acceptBase, t.coopBase, t.swing, t.seed)
	c.clock = t.clock
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
