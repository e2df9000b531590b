// Package telemetry provides match event tracking, rally statistics, and CSV output.
package telemetry

import "github.com/pthm-cable/pong/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventWallBounce EventType = iota
	EventPaddleHit
	EventScore
)

// String returns the snake_case event name.
func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	default:
		return "unknown"
	}
}

// Event represents a single gameplay event emitted by the physics step.
type Event struct {
	Type EventType
	Tick int32

	// Side is the paddle that was hit (EventPaddleHit) or the side
	// awarded the point (EventScore). SideNone for wall bounces.
	Side components.Side
}

// NewWallBounceEvent creates a top/bottom wall bounce event.
func NewWallBounceEvent(tick int32) Event {
	return Event{Type: EventWallBounce, Tick: tick}
}

// NewPaddleHitEvent creates a paddle hit event.
func NewPaddleHitEvent(tick int32, paddle components.Side) Event {
	return Event{Type: EventPaddleHit, Tick: tick, Side: paddle}
}

// NewScoreEvent creates a score event awarding a point to scorer.
func NewScoreEvent(tick int32, scorer components.Side) Event {
	return Event{Type: EventScore, Tick: tick, Side: scorer}
}
