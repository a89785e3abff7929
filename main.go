package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"duel/config"
	"duel/engine"
	"duel/experiments"
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
	"duel/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("duel failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if path := cfg.GetString(config.ConfigDotFile); path != "" {
		if err := writeDot(ctx, cfg, path); err != nil {
			return err
		}
	}

	setup := cfg.Setup()
	depth := cfg.GetInt(config.ConfigDepth)
	var summaries []metrics.Summary
	var err error
	switch cfg.GetString(config.ConfigExperiment) {
	case "depth":
		summaries, err = experiments.RunDepthExperiment(ctx, setup, depth)
	case "parallel":
		summaries, err = experiments.RunParallelExperiment(ctx, setup, depth, []int{cfg.GetInt(config.ConfigGoroutines)})
	case "budget":
		summaries, err = experiments.RunBudgetExperiment(ctx, setup, lo.RangeFrom(1, depth))
	default:
		return selfPlay(ctx, cfg)
	}
	if err != nil {
		return err
	}
	for _, s := range summaries {
		log.Info().Interface("summary", s).Msg("agent summary")
	}
	return nil
}

// selfPlay plays the configured agent against itself.
func selfPlay(ctx context.Context, cfg *config.Config) error {
	setup := cfg.Setup()
	for i := 0; i < setup.NumGames; i++ {
		red, err := experiments.CreateAgent(cfg.Agent(0))
		if err != nil {
			return err
		}
		black, err := experiments.CreateAgent(cfg.Agent(1))
		if err != nil {
			return err
		}
		g := game.New(setup.Variant,
			game.WithPlayers(
				game.Player{Name: "Red AI", Loyalty: game.Red, Controller: game.Computer},
				game.Player{Name: "Black AI", Loyalty: game.Black, Controller: game.Computer},
			))
		e := engine.LocalEngine([]agent.Agent{red, black}, g, setup.MaxTurns)
		winner, gameMetric, _, err := e.Run(ctx)
		if err != nil {
			return errors.WithMessagef(err, "game %d", i+1)
		}
		if winner == "" {
			winner = "nobody"
		}
		fmt.Println(e.Game().Board())
		fmt.Printf("game %d: %s wins after %d moves (%s)\n", i+1, winner, gameMetric.TotalMoves, gameMetric.Duration)
	}
	return nil
}

// writeDot draws the search tree of the opening position.
func writeDot(ctx context.Context, cfg *config.Config, path string) error {
	variant, _ := cfg.Variant()
	tree := searcher.NewMinimax(cfg.SearchOptions()...).NewTree(game.New(variant))
	for tree.Depth() < cfg.GetInt(config.ConfigDotDepth) {
		if err := tree.IncreaseDepth(ctx); err != nil {
			return err
		}
	}
	if err := tree.WriteDot(path, cfg.GetInt(config.ConfigDotDepth)); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("depth", tree.Depth()).Msg("wrote search tree")
	return nil
}
