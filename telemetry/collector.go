package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/pong/components"
)

// PointRecord describes one point, from serve to score.
type PointRecord struct {
	Game        int    `csv:"game"`
	Point       int    `csv:"point"`
	Speed       string `csv:"speed"`
	Scorer      string `csv:"scorer"`
	StartTick   int32  `csv:"start_tick"`
	EndTick     int32  `csv:"end_tick"`
	Ticks       int32  `csv:"ticks"`
	RallyHits   int    `csv:"rally_hits"`
	PlayerHits  int    `csv:"player_hits"`
	AIHits      int    `csv:"ai_hits"`
	WallBounces int    `csv:"wall_bounces"`
	PlayerScore int    `csv:"player_score"` // Running score after this point
	AIScore     int    `csv:"ai_score"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r PointRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("game", r.Game),
		slog.Int("point", r.Point),
		slog.String("scorer", r.Scorer),
		slog.Int("ticks", int(r.Ticks)),
		slog.Int("rally_hits", r.RallyHits),
		slog.Int("player_score", r.PlayerScore),
		slog.Int("ai_score", r.AIScore),
	)
}

// Collector turns the physics event stream into per-point records.
type Collector struct {
	game      int
	speed     components.Speed
	startTick int32

	points []PointRecord

	// Current rally
	rallyStart  int32
	playerHits  int
	aiHits      int
	wallBounces int
	playerScore int
	aiScore     int
}

// NewCollector creates an idle collector.
func NewCollector() *Collector {
	return &Collector{}
}

// StartGame begins a new game at tick, discarding the previous game's points.
func (c *Collector) StartGame(speed components.Speed, tick int32) {
	c.game++
	c.speed = speed
	c.startTick = tick
	c.points = nil
	c.playerScore = 0
	c.aiScore = 0
	c.resetRally(tick)
}

func (c *Collector) resetRally(tick int32) {
	c.rallyStart = tick
	c.playerHits = 0
	c.aiHits = 0
	c.wallBounces = 0
}

// Record consumes one event. It returns the finished point when ev is a score.
func (c *Collector) Record(ev Event) (PointRecord, bool) {
	switch ev.Type {
	case EventWallBounce:
		c.wallBounces++
	case EventPaddleHit:
		if ev.Side == components.SidePlayer {
			c.playerHits++
		} else {
			c.aiHits++
		}
	case EventScore:
		if ev.Side == components.SidePlayer {
			c.playerScore++
		} else {
			c.aiScore++
		}
		rec := PointRecord{
			Game:        c.game,
			Point:       len(c.points) + 1,
			Speed:       c.speed.String(),
			Scorer:      ev.Side.String(),
			StartTick:   c.rallyStart,
			EndTick:     ev.Tick,
			Ticks:       ev.Tick - c.rallyStart,
			RallyHits:   c.playerHits + c.aiHits,
			PlayerHits:  c.playerHits,
			AIHits:      c.aiHits,
			WallBounces: c.wallBounces,
			PlayerScore: c.playerScore,
			AIScore:     c.aiScore,
		}
		c.points = append(c.points, rec)
		c.resetRally(ev.Tick)
		return rec, true
	}
	return PointRecord{}, false
}

// Points returns the current game's finished points.
func (c *Collector) Points() []PointRecord {
	return c.points
}

// Game returns the current game number, starting at 1.
func (c *Collector) Game() int {
	return c.game
}

// EndGame summarizes the current game.
func (c *Collector) EndGame(tick int32, reason string) GameRecord {
	return GameRecord{
		Game:        c.game,
		Speed:       c.speed.String(),
		EndReason:   reason,
		Ticks:       tick - c.startTick,
		PlayerScore: c.playerScore,
		AIScore:     c.aiScore,
		Summary:     Summarize(c.points),
	}
}
