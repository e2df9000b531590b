package game

import "github.com/pthm-cable/pong/renderer"

// frame builds the playfield frame for the current state.
func (g *Game) frame() renderer.Frame {
	scene := g.state.Snapshot().Scene(int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height))
	return renderer.Playfield(scene)
}

// draw presents the current state.
func (g *Game) draw() {
	g.platform.Present(g.frame())
}
