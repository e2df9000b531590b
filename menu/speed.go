// Package menu implements the speed selection and pause menus: pure models
// that react to input, and blocking loops that run them on a platform.
package menu

import (
	"image/color"
	"log/slog"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/ui"
)

// Outcome is the result of feeding one input to the speed menu.
type Outcome uint8

const (
	Pending   Outcome = iota // Still choosing
	Confirmed                // A speed was chosen
	Closed                   // Quit requested
)

// SpeedOptions are the speed menu entries, indexed by components.Speed.
var SpeedOptions = []ui.Option{
	components.SpeedSlow:   {Label: "Slow", Accent: color.RGBA{R: 255, G: 100, B: 100, A: 255}},
	components.SpeedMedium: {Label: "Medium (Recommended)", Accent: color.RGBA{R: 255, G: 255, B: 100, A: 255}},
	components.SpeedFast:   {Label: "Fast", Accent: color.RGBA{R: 100, G: 255, B: 100, A: 255}},
}

// SpeedMenu tracks the highlighted speed preset.
type SpeedMenu struct {
	Selected components.Speed
}

// NewSpeedMenu creates a menu with def highlighted.
func NewSpeedMenu(def components.Speed) *SpeedMenu {
	return &SpeedMenu{Selected: def}
}

// Handle applies one poll of input. Up and Down stop at the first and last
// entries. Keys after a confirming Enter are ignored.
func (m *SpeedMenu) Handle(in platform.Input) Outcome {
	if in.Closed {
		return Closed
	}
	if in.Clicked >= 0 && in.Clicked < len(components.Speeds) {
		m.Selected = components.Speeds[in.Clicked]
		return Confirmed
	}
	for _, k := range in.Pressed {
		switch k {
		case platform.KeyUp:
			if m.Selected > components.SpeedSlow {
				m.Selected--
			}
		case platform.KeyDown:
			if m.Selected < components.SpeedFast {
				m.Selected++
			}
		case platform.KeyEnter:
			return Confirmed
		}
	}
	return Pending
}

// RunSpeedSelect shows the speed menu until a speed is confirmed or the
// user quits. ok is false on quit.
func RunSpeedSelect(p platform.Platform, cfg *config.Config) (speed components.Speed, ok bool) {
	def, err := components.ParseSpeed(cfg.Speeds.Default)
	if err != nil {
		slog.Warn("invalid_default_speed", "value", cfg.Speeds.Default, "error", err)
	}

	m := NewSpeedMenu(def)
	r := ui.NewRenderer()
	w, h := int32(cfg.Screen.MenuWidth), int32(cfg.Screen.MenuHeight)

	for {
		switch m.Handle(p.Poll()) {
		case Confirmed:
			slog.Info("speed_selected", "speed", m.Selected.String())
			return m.Selected, true
		case Closed:
			return m.Selected, false
		}
		p.Present(r.SpeedMenu(w, h, SpeedOptions, int(m.Selected)))
		p.Sync(cfg.Screen.MenuFPS)
	}
}
