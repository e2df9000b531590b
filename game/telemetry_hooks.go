package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/telemetry"
)

// handleEvents applies scores, plays cues and records telemetry.
func (g *Game) handleEvents(events []telemetry.Event) {
	for _, ev := range events {
		switch ev.Type {
		case telemetry.EventWallBounce, telemetry.EventPaddleHit:
			g.sound.Play(audio.CueBounce)
		case telemetry.EventScore:
			g.state.AddPoint(ev.Side)
			g.sound.Play(audio.CueScore)
		}

		rec, ok := g.collector.Record(ev)
		if !ok {
			continue
		}
		if g.cfg.Telemetry.LogPoints {
			slog.Info("point_scored", "point", rec)
		}
		if err := g.output.WritePoint(rec); err != nil {
			slog.Warn("telemetry_write_failed", "error", err)
		}
	}
}

// finishGame logs and writes the summary of the game in progress.
func (g *Game) finishGame(reason string) {
	if g.state.Mode == ModeMenu || g.collector.Game() == 0 {
		return
	}
	rec := g.collector.EndGame(g.state.Tick, reason)
	slog.Info("game_summary", "game", rec, "perf", g.perf.Stats())
	if err := g.output.WriteGame(rec); err != nil {
		slog.Warn("telemetry_write_failed", "error", err)
	}
}
