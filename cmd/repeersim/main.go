// Command repeersim runs the borrow/lend reputation game simulation.
//
// Configuration is injected, not parsed from flags: REPEER_CONFIG may
// point at a JSON config file, REPEER_DB at a SQLite file to record the
// run into. Without either, the canonical default run plays out on
// stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
	"github.com/felixniemeyer/repeer-simulation-B/internal/config"
	"github.com/felixniemeyer/repeer-simulation-B/internal/engine"
	"github.com/felixniemeyer/repeer-simulation-B/internal/entropy"
	"github.com/felixniemeyer/repeer-simulation-B/internal/persistence"
	"github.com/felixniemeyer/repeer-simulation-B/internal/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if path := os.Getenv("REPEER_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			slog.Error("failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
		slog.Info("config loaded", "path", path)
	}

	seed := cfg.RandSeed
	if seed == 0 {
		seed = entropy.Seed()
		slog.Info("derived seed", "seed", seed)
	}

	// ── Population ───────────────────────────────────────────────────
	roster, err := cfg.BuildRoster(seed)
	if err != nil {
		slog.Error("failed to build roster", "error", err)
		os.Exit(1)
	}

	spawner := agents.NewSpawner(cfg.InitialEnergy)
	population, err := spawner.SpawnPopulation(roster)
	if err != nil {
		slog.Error("failed to spawn population", "error", err)
		os.Exit(1)
	}
	slog.Info("population ready", "agents", len(population), "rounds", cfg.Rounds)

	// ── Reporters ────────────────────────────────────────────────────
	reporters := []report.Reporter{report.NewConsole(os.Stdout)}

	dbPath := cfg.DBPath
	if env := os.Getenv("REPEER_DB"); env != "" {
		dbPath = env
	}
	if dbPath != "" {
		recorder, err := persistence.Open(dbPath, seed, cfg.Rounds, cfg.Params)
		if err != nil {
			slog.Error("failed to open run database", "path", dbPath, "error", err)
			os.Exit(1)
		}
		defer recorder.Close()
		reporters = append(reporters, recorder)
		slog.Info("recording run", "path", dbPath, "run_id", recorder.RunID())
	}

	// ── Simulation ───────────────────────────────────────────────────
	sim := engine.New(cfg.Params, population, reporters...)
	sim.Run(cfg.Rounds)

	slog.Info("simulation complete",
		"rounds", cfg.Rounds,
		"survivors", len(sim.Agents),
		"encounters", sim.Stats.Encounters,
		"rejections", sim.Stats.Rejections,
		"cooperations", sim.Stats.Cooperations,
		"defections", sim.Stats.Defections,
		"culled", sim.Stats.Culled,
	)
	fmt.Printf("Finished: %s encounters across %d rounds, %d survivors.\n",
		humanize.Comma(int64(sim.Stats.Encounters)), cfg.Rounds, len(sim.Agents))
}
