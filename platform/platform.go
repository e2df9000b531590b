// Package platform defines the collaborators the game loop drives: a display
// that presents frames, an input source, an audio sink and a frame limiter.
package platform

import (
	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/renderer"
)

// Key is a logical key the game reacts to.
type Key uint8

const (
	KeyEscape Key = iota
	KeyUp
	KeyDown
	KeyEnter
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// NoClick is the Clicked value when no option was clicked.
const NoClick = -1

// Input is everything that happened since the previous poll.
type Input struct {
	Closed   bool  // Window or terminal close requested
	Pressed  []Key // Discrete key-down events in arrival order
	HeldUp   bool
	HeldDown bool
	Clicked  int // Button ID clicked this poll, or NoClick
}

// Idle returns an input with nothing pressed.
func Idle() Input {
	return Input{Clicked: NoClick}
}

// Press returns an input with the given keys pressed once.
func Press(keys ...Key) Input {
	return Input{Pressed: keys, Clicked: NoClick}
}

// Has reports whether k was pressed this poll.
func (in Input) Has(k Key) bool {
	for _, p := range in.Pressed {
		if p == k {
			return true
		}
	}
	return false
}

// Display presents frames.
type Display interface {
	Present(f renderer.Frame)
}

// Controls reports user input. A press or click is reported by exactly one
// Poll; later polls before the next Present see only Closed and held keys.
type Controls interface {
	Poll() Input
}

// Limiter paces the loop.
type Limiter interface {
	Sync(fps int)
}

// Platform bundles one backend's collaborators.
type Platform interface {
	Display
	Controls
	Limiter
	audio.Player
	Close() error
}
