// Package components defines ECS components for the game.
package components

import (
	"fmt"
	"strings"
)

// Side identifies which end of the playfield an entity or event belongs to.
type Side uint8

const (
	SideNone   Side = iota
	SidePlayer      // Right-hand paddle, human controlled
	SideAI          // Left-hand paddle, computer controlled
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Speed is the ball speed preset chosen in the menu.
type Speed uint8

const (
	SpeedSlow Speed = iota
	SpeedMedium
	SpeedFast
)

// Speeds lists the presets in menu order.
var Speeds = []Speed{SpeedSlow, SpeedMedium, SpeedFast}

// String returns the lowercase name of the preset.
func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedMedium:
		return "medium"
	case SpeedFast:
		return "fast"
	default:
		return fmt.Sprintf("speed(%d)", uint8(s))
	}
}

// ParseSpeed converts a preset name (case-insensitive) to a Speed.
func ParseSpeed(name string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slow":
		return SpeedSlow, nil
	case "medium":
		return SpeedMedium, nil
	case "fast":
		return SpeedFast, nil
	}
	return SpeedMedium, fmt.Errorf("unknown speed %q", name)
}
