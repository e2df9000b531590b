package ui

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/renderer"
)

// Renderer appends themed widgets to a frame.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(f *renderer.Frame, rect components.Rect) {
	f.FillRect(rect, r.Theme.PanelBg)
	f.RectLines(rect, r.Theme.PanelBorderWidth, r.Theme.PanelBorder)
}

// DrawTitle draws large text centered horizontally on x with its top at y.
func (r *Renderer) DrawTitle(f *renderer.Frame, text string, x, y float32) {
	f.Text(text, x, y, r.Theme.TitleFontSize, renderer.AlignCenterTop, r.Theme.TitleColor)
}

// DrawSubtitle draws medium text centered horizontally on x with its top at y.
func (r *Renderer) DrawSubtitle(f *renderer.Frame, text string, x, y float32) {
	f.Text(text, x, y, r.Theme.SubtitleFontSize, renderer.AlignCenterTop, r.Theme.TitleColor)
}

// DrawHint draws an instruction line centered on (x, y).
func (r *Renderer) DrawHint(f *renderer.Frame, text string, x, y float32) {
	f.Text(text, x, y, r.Theme.HintFontSize, renderer.AlignCenter, r.Theme.HintColor)
}

// DrawSpeedOption draws a speed menu entry. A selected entry is filled with
// its accent color; others are dark with an accent border and label.
func (r *Renderer) DrawSpeedOption(f *renderer.Frame, id int, opt Option, rect components.Rect, selected bool) {
	cmd := renderer.Cmd{
		Rect:      rect,
		Text:      opt.Label,
		Size:      r.Theme.OptionFontSize,
		ID:        id,
		Selected:  selected,
		Color:     r.Theme.OptionBg,
		Border:    opt.Accent,
		TextColor: opt.Accent,
		Thickness: r.Theme.ButtonBorderWidth,
	}
	if selected {
		cmd.Color = opt.Accent
		cmd.Border = r.Theme.PanelBorder
		cmd.TextColor = r.Theme.SelectedText
		cmd.Thickness = r.Theme.ActiveBorderWidth
	}
	f.Button(cmd)
}

// DrawButton draws a pause menu button.
func (r *Renderer) DrawButton(f *renderer.Frame, id int, label string, rect components.Rect, selected bool) {
	cmd := renderer.Cmd{
		Rect:      rect,
		Text:      label,
		Size:      r.Theme.OptionFontSize,
		ID:        id,
		Selected:  selected,
		Color:     r.Theme.ButtonBg,
		Border:    r.Theme.ButtonBorder,
		TextColor: r.Theme.ButtonActiveFg,
		Thickness: r.Theme.ButtonBorderWidth,
	}
	if selected {
		cmd.Color = r.Theme.ButtonActive
		cmd.Border = r.Theme.PanelBorder
	}
	f.Button(cmd)
}
