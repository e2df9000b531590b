package systems

import "github.com/pthm-cable/pong/components"

// Bounds represents the playfield bounds.
type Bounds struct {
	Width, Height float32
}

// MovePaddle shifts a paddle vertically by dy, keeping it inside the playfield.
func MovePaddle(p *components.Rect, dy float32, b Bounds) {
	p.Y += dy
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Bottom() > b.Height {
		p.Y = b.Height - p.H
	}
}

// PlayerDelta converts held keys into a paddle displacement.
// Holding both keys cancels out.
func PlayerDelta(up, down bool, step float32) float32 {
	var dy float32
	if up {
		dy -= step
	}
	if down {
		dy += step
	}
	return dy
}
