package experiments

import (
	"context"
	"time"

	"duel/engine"
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
	"duel/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 50 * time.Millisecond
)

// Setup is shared by every experiment.
type Setup struct {
	Variant   game.Variant
	NumGames  int    // Per matchup, alternating colours
	MaxTurns  int    // Per game
	OutputDir string // Results are skipped when empty
}

// RunDepthExperiment pits agents searching 2..maxDepth plies against a
// depth 1 baseline.
func RunDepthExperiment(ctx context.Context, setup Setup, maxDepth int) ([]metrics.Summary, error) {
	if maxDepth < 2 {
		return nil, errors.Errorf("depth experiment needs a max depth of at least 2, got %d", maxDepth)
	}
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Goroutines: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 2; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth - 1, Depth: depth, Goroutines: 1}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "depth", setup, configs, matchUps)
}

// RunParallelExperiment plays each goroutine count against itself at a fixed
// depth, to compare search time and node counts with the serial search.
func RunParallelExperiment(ctx context.Context, setup Setup, depth int, goroutines []int) ([]metrics.Summary, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, n := range append([]int{1}, goroutines...) {
		config := metrics.AgentConfig{ID: i, Depth: depth, Goroutines: n}
		configs = append(configs, config)
		// Same config for both players for the same playing strength and similar game length
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return runExperiment(ctx, "parallel", setup, configs, matchUps)
}

// RunBudgetExperiment pits iterative deepening under TimeBudget against fixed
// depth agents.
func RunBudgetExperiment(ctx context.Context, setup Setup, depths []int) ([]metrics.Summary, error) {
	budget := metrics.AgentConfig{ID: 0, Duration: TimeBudget, Goroutines: 1}
	configs := []metrics.AgentConfig{budget}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Depth: depth, Goroutines: 1}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{budget, config})
	}
	return runExperiment(ctx, "budget", setup, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, setup Setup, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]metrics.Summary, error) {
	numGames := setup.NumGames
	if numGames <= 0 {
		numGames = NumGames
	}
	manifest := metrics.Manifest{
		Name:      name,
		Variant:   setup.Variant.String(),
		NumGames:  numGames,
		MaxTurns:  setup.MaxTurns,
		Agents:    configs,
		StartTime: time.Now().UTC(),
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		manifest.Matchups = append(manifest.Matchups, []int{matchup[0].ID, matchup[1].ID})
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			// Alternate colours so neither agent always benefits from moving first
			red, black := matchup[0], matchup[1]
			if i%2 == 1 {
				red, black = black, red
			}

			winner, gameMetric, moveMetrics, err := runGame(ctx, setup, red, black)
			if err != nil {
				return nil, errors.WithMessagef(err, "matchup %d game %d", mi+1, i+1)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     red.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}
	manifest.EndTime = time.Now().UTC()

	log.Info().Msgf("completed %s experiment", name)

	summaries := metrics.Summarize(configs, gameRecords, moveRecords)
	if setup.OutputDir == "" {
		return summaries, nil
	}
	if err := store(setup.OutputDir, name, manifest, gameRecords, moveRecords, summaries); err != nil {
		return summaries, err
	}
	return summaries, nil
}

func store(dir, name string, manifest metrics.Manifest, games []metrics.GameRecord, moves []metrics.MoveRecord, summaries []metrics.Summary) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return errors.WithMessage(err, "failed to create experiment writer")
	}
	if err := writer.WriteManifest(manifest); err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(manifest.Agents); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	if err := writer.WriteSummaries(summaries); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored summaries")
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, setup Setup, red, black metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	redAgent, err := CreateAgent(red)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	blackAgent, err := CreateAgent(black)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine([]agent.Agent{redAgent, blackAgent}, game.New(setup.Variant), setup.MaxTurns)
	return e.Run(ctx)
}

// CreateAgent builds the agent a config describes: exploring when it has a
// temperature, otherwise always playing a best move.
func CreateAgent(config metrics.AgentConfig) (agent.Agent, error) {
	evaluate, err := game.EvaluationByName(config.Evaluate)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithDuration(config.Duration),
		searcher.WithParallel(config.Goroutines),
		searcher.WithPruning(!config.NoPruning),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	if config.Depth <= 0 && config.Duration <= 0 {
		return nil, errors.Errorf("agent %d needs a depth or a duration", config.ID)
	}

	m := searcher.NewMinimax(options...)
	if config.Temperature > 0 {
		return agent.NewExplorationAgent(m, config.Temperature, config.Seed), nil
	}
	return agent.NewEvaluationAgent(m), nil
}
