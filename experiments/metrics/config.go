package metrics

import "time"

// AgentConfig describes one searching agent taking part in an experiment.
type AgentConfig struct {
	ID          int           `yaml:"id"`
	Depth       int           `yaml:"depth,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty"`
	Goroutines  int           `yaml:"goroutines"`
	NoPruning   bool          `yaml:"no_pruning,omitempty"`
	Evaluate    string        `yaml:"evaluate,omitempty"` // "material" or "positional"
	Temperature float64       `yaml:"temperature,omitempty"`
	Seed        uint64        `yaml:"seed,omitempty"`
}

// Manifest is the YAML record of an experiment run.
type Manifest struct {
	Name      string        `yaml:"name"`
	Variant   string        `yaml:"variant"`
	NumGames  int           `yaml:"num_games"` // per matchup
	MaxTurns  int           `yaml:"max_turns"`
	Agents    []AgentConfig `yaml:"agents"`
	Matchups  [][]int       `yaml:"matchups"` // agent IDs
	StartTime time.Time     `yaml:"start_time"`
	EndTime   time.Time     `yaml:"end_time"`
}
