// Randomized play — memoryless accept/cooperate draws from a private
// generator.
package strategy

import (
	"math/rand"
)

// PureEvilLabel names the degenerate never-lend, never-cooperate
// configuration used as an adversarial baseline.
const PureEvilLabel = "pure evil"

// Random accepts and cooperates with fixed probabilities, drawn
// independently per call. It keeps no memory of peers. Each instance owns
// its generator so two randomized agents never contend over shared PRNG
// state.
type Random struct {
	acceptProb float64
	coopProb   float64
	label      string
	seed       int64
	rng        *rand.Rand
}

// NewRandom creates a randomized strategy. Distinct configurations should
// carry distinct labels so reports can group them separately.
func NewRandom(acceptProb, coopProb float64, label string, seed int64) *Random {
	return &Random{
		acceptProb: acceptProb,
		coopProb:   coopProb,
		label:      label,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// NewPureEvil creates the always-defect baseline: probability zero on both
// draws, so it never lends and never cooperates.
func NewPureEvil() *Random {
	return NewRandom(0, 0, PureEvilLabel, 0)
}

func (r *Random) AcceptOrRejectRequest(peer int) RequestDecision {
	if r.rng.Float64() < r.acceptProb {
		return Accept
	}
	return Reject
}

func (r *Random) NotifyAboutRejection(peer int) {}

func (r *Random) CoopOrDefect(peer int) BorrowDecision {
	if r.rng.Float64() < r.coopProb {
		return Cooperate
	}
	return Defect
}

func (r *Random) NotifyCoopOrDefect(peer int, cooperated bool) {}

func (r *Random) Label() string { return r.label }

// Clone returns a copy with the same policy, reseeded from the original
// construction seed. In-flight generator position is not replicated; the
// clone replays the instance's draw sequence from the start.
func (r *Random) Clone() Strategy {
	return NewRandom(r.acceptProb, r.coopProb, r.label, r.seed)
}
