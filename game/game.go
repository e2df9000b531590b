// Package game runs Pong: the speed menu, the per-frame update of paddles
// and ball, the pause menu and the transitions between them.
package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
)

// Options controls optional game behavior.
type Options struct {
	Autoplay bool                     // Drive the player paddle with an AI controller
	MaxTicks int32                    // Quit after this many play ticks (0 = unlimited)
	Seed     int64                    // Serve randomization seed, used when Coin is nil
	Coin     systems.Coin             // Serve randomization source
	Output   *telemetry.OutputManager // Optional CSV match log
	LogPerf  bool                     // Log frame timings every perfLogInterval ticks
}

// perfLogInterval is ten seconds of play at 60 fps.
const perfLogInterval = 600

// Game owns the state and drives it from a platform.
type Game struct {
	cfg      *config.Config
	platform platform.Platform

	state     *State
	bounds    systems.Bounds
	physics   *systems.PhysicsSystem
	ai        systems.AIController
	autopilot *systems.AIController

	sound     *audio.Guarded
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	logPerf   bool

	maxTicks int32
	events   []telemetry.Event
}

// NewGame creates a game on p. Nothing runs until Run.
func NewGame(cfg *config.Config, p platform.Platform, opts Options) *Game {
	coin := opts.Coin
	if coin == nil {
		coin = systems.NewRandCoin(opts.Seed)
	}

	bounds := systems.Bounds{Width: cfg.Derived.FieldW32, Height: cfg.Derived.FieldH32}

	var player audio.Player = p
	if !cfg.Audio.Enabled {
		player = audio.Nop{}
	}

	g := &Game{
		cfg:       cfg,
		platform:  p,
		state:     NewState(cfg),
		bounds:    bounds,
		physics:   systems.NewPhysicsSystem(bounds, cfg.Ball, coin),
		ai:        systems.NewAIController(cfg.AI),
		sound:     audio.NewGuarded(player),
		collector: telemetry.NewCollector(),
		output:    opts.Output,
		perf:      telemetry.NewPerfCollector(perfLogInterval),
		logPerf:   opts.LogPerf,
		maxTicks:  opts.MaxTicks,
		events:    make([]telemetry.Event, 0, 4),
	}
	if opts.Autoplay {
		pilot := systems.NewAIController(cfg.AI)
		g.autopilot = &pilot
	}
	return g
}

// State returns the game state.
func (g *Game) State() *State {
	return g.state
}

// Run shows the speed menu and then plays until the user quits.
func (g *Game) Run() {
	if !g.newGame() {
		g.state.Mode = ModeTerminated
		slog.Info("game_quit", "reason", "menu_closed")
		return
	}

	for g.state.Mode != ModeTerminated {
		g.Frame(g.platform.Poll())
	}
}

// Frame runs one playing frame with the given input.
func (g *Game) Frame(in platform.Input) {
	if in.Closed {
		g.quit("window_closed")
		return
	}
	if in.Has(platform.KeyEscape) {
		g.pause()
		return
	}

	g.perf.StartTick()
	g.update(in)
	g.perf.StartPhase(telemetry.PhaseRender)
	g.draw()
	g.perf.EndTick()
	g.platform.Sync(g.cfg.Screen.TargetFPS)

	if g.logPerf && g.state.Tick%perfLogInterval == 0 {
		slog.Info("perf", "tick", g.state.Tick, "stats", g.perf.Stats())
	}

	if g.maxTicks > 0 && g.state.Tick >= g.maxTicks {
		g.quit("max_ticks")
	}
}

// update advances paddles and ball by one tick.
func (g *Game) update(in platform.Input) {
	s := g.state
	ball := s.Ball()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.movePlayer(in, ball.CenterY())

	g.perf.StartPhase(telemetry.PhaseAI)
	g.ai.Update(s.AI(), ball.CenterY(), g.bounds)

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.events = g.physics.Step(g.events[:0], s.Tick, ball, s.Velocity(), s.Player(), s.AI())

	g.perf.StartPhase(telemetry.PhaseEvents)
	g.handleEvents(g.events)

	s.Tick++
}
