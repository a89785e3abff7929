package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	Agent1 int // AgentConfig.ID playing Red
	Agent2 int // AgentConfig.ID playing Black
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one run's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteManifest(manifest Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}
	path := filepath.Join(w.baseDir, "manifest.yaml")
	return errors.Wrap(os.WriteFile(path, data, 0o644), "failed to write manifest")
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "duration", "goroutines", "no_pruning", "evaluate", "temperature", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.NoPruning),
			config.Evaluate,
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "variant", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "repetitions"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Variant,
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Repetitions),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "depth_reached", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.DepthReached),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"agent", "games", "wins", "losses", "win_rate", "mean_move_duration", "std_move_duration", "mean_nodes", "mean_depth_reached"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.FormatFloat(s.WinRate, 'f', 4, 64),
			s.MeanMoveDuration.String(),
			s.StdMoveDuration.String(),
			strconv.FormatFloat(s.MeanNodes, 'f', 1, 64),
			strconv.FormatFloat(s.MeanDepthReached, 'f', 2, 64),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, errors.Wrapf(cerr, "failed to close %s", name)).ErrorOrNil()
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}
