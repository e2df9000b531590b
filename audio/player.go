package audio

import "log/slog"

// Player plays a cue. Implementations are backend specific.
type Player interface {
	Play(c Cue) error
}

// Nop is a Player that plays nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) error { return nil }

// Guarded wraps a Player so that a cue which fails once stays silent
// for the rest of the run. Failures are logged, never returned.
type Guarded struct {
	player   Player
	disabled map[Cue]bool
}

// NewGuarded creates a guarded player. A nil player disables all cues.
func NewGuarded(p Player) *Guarded {
	if p == nil {
		p = Nop{}
	}
	return &Guarded{player: p, disabled: make(map[Cue]bool)}
}

// Play plays the cue unless it has previously failed.
func (g *Guarded) Play(c Cue) {
	if g.disabled[c] {
		return
	}
	if err := g.player.Play(c); err != nil {
		g.disabled[c] = true
		slog.Warn("audio_cue_disabled", "cue", c.String(), "error", err)
	}
}

// Disabled reports whether the cue has been turned off.
func (g *Guarded) Disabled(c Cue) bool {
	return g.disabled[c]
}
