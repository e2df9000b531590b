package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/menu"
	"github.com/pthm-cable/pong/systems"
)

// newGame runs the speed menu and resets the state for the chosen preset.
// It returns false if the menu was closed.
func (g *Game) newGame() bool {
	g.state.Mode = ModeMenu
	speed, ok := menu.RunSpeedSelect(g.platform, g.cfg)
	if !ok {
		return false
	}

	g.state.Reset(speed, systems.LaunchVelocity(g.cfg.Speeds, speed))
	g.physics.Serve(g.state.Ball(), g.state.Velocity())
	g.state.Mode = ModePlaying

	g.collector.StartGame(speed, g.state.Tick)
	slog.Info("game_started",
		"game", g.collector.Game(),
		"speed", speed.String(),
		"tick", g.state.Tick,
	)
	return true
}

// pause shows the pause menu over the last frame and applies its decision.
func (g *Game) pause() {
	g.state.Mode = ModePaused
	frozen := g.frame()

	decision := menu.RunPause(g.platform, frozen, g.cfg.Screen.MenuFPS)
	slog.Info("pause_decision", "decision", decision.String(), "tick", g.state.Tick)

	switch decision {
	case menu.Resume:
		g.state.Mode = ModePlaying
	case menu.NewGame:
		g.finishGame("new_game")
		if !g.newGame() {
			g.state.Mode = ModeTerminated
			slog.Info("game_quit", "reason", "menu_closed")
		}
	case menu.Quit:
		g.quit("pause_menu")
	}
}

// quit ends the current game and stops the loop.
func (g *Game) quit(reason string) {
	g.finishGame(reason)
	g.state.Mode = ModeTerminated
	slog.Info("game_quit", "reason", reason, "tick", g.state.Tick)
}
