package config

import (
	"strings"
	"time"

	"duel/experiments"
	"duel/experiments/metrics"
	"duel/game"
	"duel/meta"
	"duel/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigFile        = "config"
	ConfigLogLevel    = "log-level"
	ConfigVariant     = "variant"
	ConfigDepth       = "depth"
	ConfigTimeBudget  = "time-budget"
	ConfigParallel    = "parallel"
	ConfigGoroutines  = "goroutines"
	ConfigSeed        = "seed"
	ConfigEvaluate    = "evaluate"
	ConfigTemperature = "temperature"
	ConfigGames       = "games"
	ConfigMaxTurns    = "max-turns"
	ConfigExperiment  = "experiment"
	ConfigOutputDir   = "output-dir"
	ConfigDotFile     = "dot-file"
	ConfigDotDepth    = "dot-depth"
)

const envPrefix = "DUEL"

// Config layers flags over DUEL_* environment variables over an optional
// YAML file over the defaults.
type Config struct {
	*viper.Viper
}

// DefaultConfig holds only the defaults.
func DefaultConfig() *Config {
	c := &Config{}
	// An empty argument list always parses.
	_ = c.Load(nil)
	return c
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("duel", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "YAML file with settings; flags and DUEL_ variables take precedence")
	fs.String(ConfigLogLevel, "info", "trace, debug, info, warn or error")
	fs.String(ConfigVariant, game.Checkers.String(), "checkers or chess")
	fs.Int(ConfigDepth, meta.DEFAULT_DEPTH, "search depth in plies; caps iterative deepening when a time budget is set")
	fs.Duration(ConfigTimeBudget, 0, "search time per move; enables iterative deepening")
	fs.Bool(ConfigParallel, false, "score root moves concurrently (fixed depth only)")
	fs.Int(ConfigGoroutines, meta.GO_ROUTINES, "goroutines for parallel search")
	fs.Uint64(ConfigSeed, 0, "tie-break seed; 0 picks one at random")
	fs.String(ConfigEvaluate, "material", "material or positional")
	fs.Float64(ConfigTemperature, 0, "sample moves by softmax of their scores at this temperature; 0 plays the best")
	fs.Int(ConfigGames, 1, "games to play (per matchup in experiments)")
	fs.Int(ConfigMaxTurns, meta.MAX_TURNS, "stop a game after this many moves")
	fs.String(ConfigExperiment, "", "run an experiment instead of a self-play game: depth, parallel or budget")
	fs.String(ConfigOutputDir, "results", "directory for experiment results")
	fs.String(ConfigDotFile, "", "write the first move's search tree as DOT to this file")
	fs.Int(ConfigDotDepth, 2, "plies of the search tree to draw")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return errors.WithStack(err)
	}
	if path := v.GetString(ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}
	c.Viper = v
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := c.Variant(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := game.EvaluationByName(c.GetString(ConfigEvaluate)); err != nil {
		return err
	}
	switch {
	case c.GetInt(ConfigDepth) <= 0 && c.GetDuration(ConfigTimeBudget) <= 0:
		return errors.New("need a positive depth or time budget")
	case c.GetInt(ConfigGames) <= 0:
		return errors.Errorf("%s must be positive", ConfigGames)
	case c.GetInt(ConfigMaxTurns) <= 0:
		return errors.Errorf("%s must be positive", ConfigMaxTurns)
	case c.GetFloat64(ConfigTemperature) < 0:
		return errors.Errorf("%s must not be negative", ConfigTemperature)
	}
	switch c.GetString(ConfigExperiment) {
	case "", "depth", "parallel", "budget":
	default:
		return errors.Errorf("unknown experiment %q", c.GetString(ConfigExperiment))
	}
	return nil
}

func (c *Config) Variant() (game.Variant, error) {
	return game.ParseVariant(c.GetString(ConfigVariant))
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.GetString(ConfigLogLevel)))
	return level, errors.Wrap(err, "bad log level")
}

// Agent describes the configured searching agent.
func (c *Config) Agent(id int) metrics.AgentConfig {
	goroutines := 1
	if c.GetBool(ConfigParallel) {
		goroutines = c.GetInt(ConfigGoroutines)
	}
	return metrics.AgentConfig{
		ID:          id,
		Depth:       c.GetInt(ConfigDepth),
		Duration:    c.GetDuration(ConfigTimeBudget),
		Goroutines:  goroutines,
		Evaluate:    c.GetString(ConfigEvaluate),
		Temperature: c.GetFloat64(ConfigTemperature),
		Seed:        c.GetUint64(ConfigSeed),
	}
}

// SearchOptions builds the options of the configured searcher.
func (c *Config) SearchOptions() []searcher.Option {
	agent := c.Agent(0)
	evaluate, _ := game.EvaluationByName(agent.Evaluate)
	options := []searcher.Option{
		searcher.WithDepth(agent.Depth),
		searcher.WithDuration(agent.Duration),
		searcher.WithParallel(agent.Goroutines),
		searcher.WithEvaluationFn(evaluate),
	}
	if agent.Seed != 0 {
		options = append(options, searcher.WithSeed(agent.Seed))
	}
	return options
}

func (c *Config) Setup() experiments.Setup {
	variant, _ := c.Variant()
	return experiments.Setup{
		Variant:   variant,
		NumGames:  c.GetInt(ConfigGames),
		MaxTurns:  c.GetInt(ConfigMaxTurns),
		OutputDir: c.GetString(ConfigOutputDir),
	}
}

// TimeBudget is the per-move budget, zero for fixed depth search.
func (c *Config) TimeBudget() time.Duration {
	return c.GetDuration(ConfigTimeBudget)
}
