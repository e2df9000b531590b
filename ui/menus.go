package ui

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/renderer"
)

// Speed menu layout
const (
	speedTitleY      = 50
	speedSubtitleY   = 120
	speedOptionX     = 150
	speedOptionW     = 300
	speedOptionH     = 40
	speedOptionY     = 200 // Text baseline of the first option
	speedOptionGap   = 50
	speedOptionInset = 5 // Box starts this far above the option's y
	speedHintY       = 380
	speedHintGap     = 30
)

// Pause overlay layout
const (
	pauseW       = 300
	pauseH       = 200
	pauseTitleDY = 30
	pauseButtonW = 200
	pauseButtonH = 30
	pauseFirstDY = 70
	pauseGap     = 40
	pauseHintDY  = 20 // From the bottom of the box
)

// SpeedMenu builds the speed selection screen.
func (r *Renderer) SpeedMenu(width, height int32, opts []Option, selected int) renderer.Frame {
	f := renderer.NewFrame(width, height, r.Theme.Background)
	mid := float32(width) / 2

	r.DrawTitle(&f, "PONG", mid, speedTitleY)
	r.DrawSubtitle(&f, "Select Ball Speed", mid, speedSubtitleY)

	for i, opt := range opts {
		y := float32(speedOptionY + i*speedOptionGap)
		rect := components.Rect{X: speedOptionX, Y: y - speedOptionInset, W: speedOptionW, H: speedOptionH}
		r.DrawSpeedOption(&f, i, opt, rect, i == selected)
	}

	f.Text("Use UP/DOWN arrows to select", mid, speedHintY, r.Theme.HintFontSize, renderer.AlignCenterTop, r.Theme.HintColor)
	f.Text("Press ENTER to start", mid, speedHintY+speedHintGap, r.Theme.HintFontSize, renderer.AlignCenterTop, r.Theme.HintColor)

	return f
}

// PauseOverlay draws the pause menu over a copy of frozen.
func (r *Renderer) PauseOverlay(frozen renderer.Frame, labels []string, selected int) renderer.Frame {
	f := frozen.Clone()
	f.Overlay(r.Theme.Overlay)

	mid := float32(f.Width / 2)
	box := components.Rect{
		X: float32(f.Width/2 - pauseW/2),
		Y: float32(f.Height/2 - pauseH/2),
		W: pauseW,
		H: pauseH,
	}
	r.DrawPanel(&f, box)
	f.Text("PAUSED", mid, box.Y+pauseTitleDY, r.Theme.SubtitleFontSize, renderer.AlignCenter, r.Theme.TitleColor)

	for i, label := range labels {
		rect := components.Rect{
			X: mid - pauseButtonW/2,
			Y: box.Y + pauseFirstDY + float32(i*pauseGap),
			W: pauseButtonW,
			H: pauseButtonH,
		}
		r.DrawButton(&f, i, label, rect, i == selected)
	}

	r.DrawHint(&f, "Use UP/DOWN to select, ENTER to confirm, ESC to resume", mid, box.Bottom()-pauseHintDY)

	return f
}
