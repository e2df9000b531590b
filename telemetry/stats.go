package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds rally statistics over a set of points.
type Summary struct {
	Points    int     `csv:"points"`
	RallyMean float64 `csv:"rally_mean"`
	RallyStd  float64 `csv:"rally_std"`
	RallyP50  float64 `csv:"rally_p50"`
	RallyP90  float64 `csv:"rally_p90"`
	RallyMax  float64 `csv:"rally_max"`
	TicksMean float64 `csv:"ticks_mean"`
	TicksP50  float64 `csv:"ticks_p50"`
}

// GameRecord describes one finished game.
type GameRecord struct {
	Game        int    `csv:"game"`
	Speed       string `csv:"speed"`
	EndReason   string `csv:"end_reason"`
	Ticks       int32  `csv:"ticks"`
	PlayerScore int    `csv:"player_score"`
	AIScore     int    `csv:"ai_score"`
	Summary
}

// Summarize computes rally statistics. An empty input yields a zero Summary.
func Summarize(points []PointRecord) Summary {
	n := len(points)
	if n == 0 {
		return Summary{}
	}

	rallies := make([]float64, n)
	ticks := make([]float64, n)
	for i, p := range points {
		rallies[i] = float64(p.RallyHits)
		ticks[i] = float64(p.Ticks)
	}
	sort.Float64s(rallies)
	sort.Float64s(ticks)

	s := Summary{
		Points:    n,
		RallyMean: stat.Mean(rallies, nil),
		RallyP50:  stat.Quantile(0.5, stat.Empirical, rallies, nil),
		RallyP90:  stat.Quantile(0.9, stat.Empirical, rallies, nil),
		RallyMax:  floats.Max(rallies),
		TicksMean: stat.Mean(ticks, nil),
		TicksP50:  stat.Quantile(0.5, stat.Empirical, ticks, nil),
	}
	// Sample standard deviation is undefined for a single point
	if n > 1 {
		s.RallyStd = stat.StdDev(rallies, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("points", s.Points),
		slog.Float64("rally_mean", s.RallyMean),
		slog.Float64("rally_std", s.RallyStd),
		slog.Float64("rally_p50", s.RallyP50),
		slog.Float64("rally_p90", s.RallyP90),
		slog.Float64("rally_max", s.RallyMax),
		slog.Float64("ticks_mean", s.TicksMean),
		slog.Float64("ticks_p50", s.TicksP50),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (g GameRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("game", g.Game),
		slog.String("speed", g.Speed),
		slog.String("end_reason", g.EndReason),
		slog.Int("ticks", int(g.Ticks)),
		slog.Int("player_score", g.PlayerScore),
		slog.Int("ai_score", g.AIScore),
		slog.Any("rallies", g.Summary),
	)
}
