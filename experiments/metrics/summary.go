package metrics

import (
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates an agent's results over every game it played.
type Summary struct {
	Agent            int
	Games            int
	Wins             int
	Losses           int
	WinRate          float64
	MeanMoveDuration time.Duration
	StdMoveDuration  time.Duration
	MeanNodes        float64
	MeanDepthReached float64
}

// Summarize builds one Summary per agent config, in config order. Moves are
// attributed to agents through the colour they played in each game.
func Summarize(configs []AgentConfig, games []GameRecord, moves []MoveRecord) []Summary {
	byID := lo.KeyBy(games, func(g GameRecord) string { return g.ID })

	summaries := make([]Summary, 0, len(configs))
	for _, config := range configs {
		s := Summary{Agent: config.ID}
		for _, g := range games {
			colour, ok := seat(g, config.ID)
			if !ok {
				continue
			}
			s.Games++
			switch g.Winner {
			case "":
			case colour:
				s.Wins++
			default:
				s.Losses++
			}
		}
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games)
		}

		own := lo.Filter(moves, func(m MoveRecord, _ int) bool {
			colour, ok := seat(byID[m.Game], config.ID)
			return ok && colour == m.Player
		})
		if len(own) > 0 {
			durations := lo.Map(own, func(m MoveRecord, _ int) float64 { return float64(m.Duration) })
			s.MeanMoveDuration = time.Duration(stat.Mean(durations, nil))
			if len(durations) > 1 {
				s.StdMoveDuration = time.Duration(stat.StdDev(durations, nil))
			}
			s.MeanNodes = stat.Mean(lo.Map(own, func(m MoveRecord, _ int) float64 { return float64(m.Nodes) }), nil)
			s.MeanDepthReached = stat.Mean(lo.Map(own, func(m MoveRecord, _ int) float64 { return float64(m.DepthReached) }), nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// seat returns the colour agent played in g. Self-play games count as Red.
func seat(g GameRecord, agent int) (string, bool) {
	switch agent {
	case g.Agent1:
		return "Red", true
	case g.Agent2:
		return "Black", true
	default:
		return "", false
	}
}
