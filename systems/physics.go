// Package systems contains the per-frame game systems: AI, paddle movement and ball physics.
package systems

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/telemetry"
)

// PhysicsSystem advances the ball and resolves wall, goal and paddle collisions.
type PhysicsSystem struct {
	bounds    Bounds
	maxDY     float32
	hitFactor float32
	coin      Coin
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(bounds Bounds, cfg config.BallConfig, coin Coin) *PhysicsSystem {
	return &PhysicsSystem{
		bounds:    bounds,
		maxDY:     float32(cfg.MaxDY),
		hitFactor: float32(cfg.HitFactor),
		coin:      coin,
	}
}

// Bounds returns the playfield bounds.
func (s *PhysicsSystem) Bounds() Bounds {
	return s.bounds
}

// Step runs one tick and appends the resulting events to dst.
//
// Goal checks run before paddle checks: a ball that has passed a paddle
// always scores, even if it still overlaps the paddle this frame.
func (s *PhysicsSystem) Step(dst []telemetry.Event, tick int32, ball *components.Rect, vel *components.Velocity, player, ai *components.Rect) []telemetry.Event {
	// 1. Integrate
	ball.X += vel.DX
	ball.Y += vel.DY

	// 2. Top and bottom walls (reflect only, no positional correction)
	if ball.Top() <= 0 || ball.Bottom() >= s.bounds.Height {
		vel.DY = -vel.DY
		dst = append(dst, telemetry.NewWallBounceEvent(tick))
	}

	// 3. Left goal: player scores
	if ball.Left() <= 0 {
		dst = append(dst, telemetry.NewScoreEvent(tick, components.SidePlayer))
		s.Serve(ball, vel)
	}

	// 4. Right goal: AI scores
	if ball.Right() >= s.bounds.Width {
		dst = append(dst, telemetry.NewScoreEvent(tick, components.SideAI))
		s.Serve(ball, vel)
	}

	// 5. Player paddle, only while the ball travels toward it
	if vel.DX > 0 && ball.Intersects(*player) {
		vel.DX = -vel.DX
		vel.DY += hitOffset(ball, player) * s.hitFactor
		dst = append(dst, telemetry.NewPaddleHitEvent(tick, components.SidePlayer))
	}

	// 6. AI paddle
	if vel.DX < 0 && ball.Intersects(*ai) {
		vel.DX = -vel.DX
		vel.DY += hitOffset(ball, ai) * s.hitFactor
		dst = append(dst, telemetry.NewPaddleHitEvent(tick, components.SideAI))
	}

	// 7. Bound vertical speed growth from repeated off-center hits
	if vel.DY > s.maxDY {
		vel.DY = s.maxDY
	} else if vel.DY < -s.maxDY {
		vel.DY = -s.maxDY
	}

	return dst
}

// Serve recenters the ball and randomizes the signs of both velocity
// components, keeping their magnitudes.
func (s *PhysicsSystem) Serve(ball *components.Rect, vel *components.Velocity) {
	ball.SetCenter(s.bounds.Width/2, s.bounds.Height/2)

	if s.coin.Flip() {
		vel.DX = -vel.DX
	}

	dy := vel.DY
	if dy < 0 {
		dy = -dy
	}
	if s.coin.Flip() {
		dy = -dy
	}
	vel.DY = dy
}

// hitOffset returns where the ball struck the paddle, roughly in [-1, 1]
// with 0 at the paddle center.
func hitOffset(ball, paddle *components.Rect) float32 {
	return (ball.CenterY() - paddle.CenterY()) / (paddle.H / 2)
}

// LaunchVelocity returns the initial ball velocity for a speed preset.
// The vertical component is half the base speed, truncated.
func LaunchVelocity(speeds config.SpeedsConfig, s components.Speed) components.Velocity {
	base := BaseSpeed(speeds, s)
	return components.Velocity{
		DX: float32(base),
		DY: float32(base / 2),
	}
}

// BaseSpeed returns the configured base speed for a preset.
func BaseSpeed(speeds config.SpeedsConfig, s components.Speed) int {
	switch s {
	case components.SpeedSlow:
		return speeds.Slow
	case components.SpeedFast:
		return speeds.Fast
	default:
		return speeds.Medium
	}
}
