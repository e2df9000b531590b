package game

import (
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/systems"
)

// movePlayer moves the player paddle from held keys, or from the autopilot
// when one is set.
func (g *Game) movePlayer(in platform.Input, ballCenterY float32) {
	paddle := g.state.Player()
	if g.autopilot != nil {
		g.autopilot.Update(paddle, ballCenterY, g.bounds)
		return
	}
	dy := systems.PlayerDelta(in.HeldUp, in.HeldDown, float32(g.cfg.Paddle.PlayerStep))
	systems.MovePaddle(paddle, dy, g.bounds)
}
