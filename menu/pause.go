package menu

import (
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
	"github.com/pthm-cable/pong/ui"
)

// Decision is the pause menu's result.
type Decision uint8

const (
	Undecided Decision = iota
	Resume
	NewGame
	Quit
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Resume:
		return "resume"
	case NewGame:
		return "new_game"
	case Quit:
		return "quit"
	default:
		return "undecided"
	}
}

// PauseOptions are the pause menu entries in display order.
var PauseOptions = []Decision{Resume, NewGame, Quit}

// PauseLabels returns the button labels for PauseOptions.
func PauseLabels() []string {
	return []string{"Resume", "New Game", "Quit"}
}

// PauseMenu tracks the highlighted pause option.
type PauseMenu struct {
	Selected int
}

// NewPauseMenu creates a menu with Resume highlighted.
func NewPauseMenu() *PauseMenu {
	return &PauseMenu{}
}

// Handle applies one poll of input. Up and Down wrap around; Escape resumes
// whatever is highlighted.
func (m *PauseMenu) Handle(in platform.Input) Decision {
	if in.Closed {
		return Quit
	}
	if in.Clicked >= 0 && in.Clicked < len(PauseOptions) {
		m.Selected = in.Clicked
		return PauseOptions[m.Selected]
	}
	n := len(PauseOptions)
	for _, k := range in.Pressed {
		switch k {
		case platform.KeyEscape:
			return Resume
		case platform.KeyUp:
			m.Selected = (m.Selected - 1 + n) % n
		case platform.KeyDown:
			m.Selected = (m.Selected + 1) % n
		case platform.KeyEnter:
			return PauseOptions[m.Selected]
		}
	}
	return Undecided
}

// RunPause shows the pause overlay on top of frozen until a decision is
// made. The caller's state is never touched.
func RunPause(p platform.Platform, frozen renderer.Frame, fps int) Decision {
	m := NewPauseMenu()
	r := ui.NewRenderer()
	labels := PauseLabels()

	for {
		if d := m.Handle(p.Poll()); d != Undecided {
			return d
		}
		p.Present(r.PauseOverlay(frozen, labels, m.Selected))
		p.Sync(fps)
	}
}
