// Package game defines the payoff parameters of the borrow/lend game.
package game

// Params holds the four payoff constants applied to agent energy after an
// accepted encounter. A Params value is fixed for the lifetime of one
// simulation; separate simulations may run with different values in the
// same process.
type Params struct {
	LenderCoop     float64 `json:"lenderCoop"`     // lending effort + device wear
	LenderDefect   float64 `json:"lenderDefect"`   // loses the device
	BorrowerCoop   float64 `json:"borrowerCoop"`   // uses the device
	BorrowerDefect float64 `json:"borrowerDefect"` // steals the device
}

// DefaultParams returns the canonical payoff table.
func DefaultParams() Params {
	return Params{
		LenderCoop:     -1,
		LenderDefect:   -3,
		BorrowerCoop:   2,
		BorrowerDefect: 3,
	}
}
