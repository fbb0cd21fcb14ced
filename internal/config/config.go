// Package config holds the injectable run configuration: payoffs, round
// count, and the roster defining the initial population.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
	"github.com/felixniemeyer/repeer-simulation-B/internal/strategy"
)

// Strategy kinds accepted in roster entries.
const (
	KindReputationTracker = "reputation-tracker"
	KindRandom            = "random"
	KindPureEvil          = "pure-evil"
	KindTemperamental     = "temperamental"
)

// RosterEntry describes one group of identically configured agents.
// Which knobs apply depends on Kind; the rest are ignored.
type RosterEntry struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`

	Optimistic bool `json:"optimistic,omitempty"` // reputation-tracker

	AcceptProb float64 `json:"acceptProb,omitempty"` // random, temperamental
	CoopProb   float64 `json:"coopProb,omitempty"`   // random, temperamental
	Label      string  `json:"label,omitempty"`      // random

	Swing float64 `json:"swing,omitempty"` // temperamental
}

// Config is the full run configuration.
type Config struct {
	Params        game.Params   `json:"params"`
	Rounds        int           `json:"rounds"`
	InitialEnergy float64       `json:"initialEnergy"`
	RandSeed      int64         `json:"randSeed"` // 0 = derive at startup
	Roster        []RosterEntry `json:"roster"`
	DBPath        string        `json:"dbPath,omitempty"` // empty = no recorder
}

// Default reproduces the canonical run: 32 optimistic reputation trackers
// against 16 pure evil agents, 20 rounds, starting energy 256.
func Default() Config {
	return Config{
		Params:        game.DefaultParams(),
		Rounds:        20,
		InitialEnergy: 256,
		Roster: []RosterEntry{
			{Kind: KindReputationTracker, Count: 32, Optimistic: true},
			{Kind: KindPureEvil, Count: 16},
		},
	}
}

// Load reads and validates a JSON config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges; roster kinds are checked later when factories
// are built.
func (c Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", c.Rounds)
	}
	if c.InitialEnergy <= 0 {
		return fmt.Errorf("initialEnergy must be positive, got %g", c.InitialEnergy)
	}
	for i, entry := range c.Roster {
		if entry.Count < 0 {
			return fmt.Errorf("roster[%d]: count must not be negative, got %d", i, entry.Count)
		}
		if entry.AcceptProb < 0 || entry.AcceptProb > 1 {
			return fmt.Errorf("roster[%d]: acceptProb must be in [0,1], got %g", i, entry.AcceptProb)
		}
		if entry.CoopProb < 0 || entry.CoopProb > 1 {
			return fmt.Errorf("roster[%d]: coopProb must be in [0,1], got %g", i, entry.CoopProb)
		}
		if entry.Swing < 0 {
			return fmt.Errorf("roster[%d]: swing must not be negative, got %g", i, entry.Swing)
		}
	}
	return nil
}

// BuildRoster turns the configured roster into strategy factories. Each
// stochastic instance gets its own seed derived from the base seed, so a
// run is reproducible from (config, seed) alone. An unknown kind fails
// here and aborts startup.
func (c Config) BuildRoster(seed int64) ([]agents.RosterEntry, error) {
	next := seed
	nextSeed := func() int64 {
		next++
		return next
	}

	var roster []agents.RosterEntry
	for i, entry := range c.Roster {
		factory, err := c.buildFactory(entry, nextSeed)
		if err != nil {
			return nil, fmt.Errorf("roster[%d]: %w", i, err)
		}
		roster = append(roster, agents.RosterEntry{Factory: factory, Count: entry.Count})
	}
	return roster, nil
}

func (c Config) buildFactory(entry RosterEntry, nextSeed func() int64) (agents.Factory, error) {
	params := c.Params
	switch entry.Kind {
	case KindReputationTracker:
		optimistic := entry.Optimistic
		return func() (strategy.Strategy, error) {
			return strategy.NewReputationTracker(params, optimistic), nil
		}, nil

	case KindPureEvil:
		return func() (strategy.Strategy, error) {
			return strategy.NewPureEvil(), nil
		}, nil

	case KindRandom:
		label := entry.Label
		if label == "" {
			label = "random"
		}
		acceptProb, coopProb := entry.AcceptProb, entry.CoopProb
		return func() (strategy.Strategy, error) {
			return strategy.NewRandom(acceptProb, coopProb, label, nextSeed()), nil
		}, nil

	case KindTemperamental:
		acceptProb, coopProb, swing := entry.AcceptProb, entry.CoopProb, entry.Swing
		return func() (strategy.Strategy, error) {
			return strategy.NewTemperamental(acceptProb, coopProb, swing, nextSeed()), nil
		}, nil

	default:
		return nil, fmt.Errorf("unknown strategy kind %q", entry.Kind)
	}
}
