// Package renderer describes frames as backend-neutral draw commands and
// builds the playfield frame from a game snapshot.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/pong/components"
)

// CmdKind identifies a draw command.
type CmdKind uint8

const (
	CmdFillRect  CmdKind = iota // Filled rectangle (alpha allowed)
	CmdRectLines                // Rectangle outline of Thickness
	CmdEllipse                  // Ellipse inscribed in Rect
	CmdText                     // Text anchored at Rect.X, Rect.Y
	CmdButton                   // Selectable option: fill, border, centered label
)

// Align controls how text is placed relative to its anchor.
type Align uint8

const (
	AlignLeft      Align = iota // Anchor is the top-left corner
	AlignCenterTop              // Anchor is the top-center
	AlignCenter                 // Anchor is the center
)

// Cmd is a single draw command.
type Cmd struct {
	Kind      CmdKind
	Rect      components.Rect
	Color     color.RGBA // Fill or text color
	Border    color.RGBA // Button border
	TextColor color.RGBA // Button label
	Thickness float32
	Text      string
	Size      int32 // Font size
	Align     Align
	ID        int // Button option index
	Selected  bool
}

// Frame is one complete picture: a logical surface size, a clear color and
// commands drawn in order.
type Frame struct {
	Width, Height int32
	Clear         color.RGBA
	Cmds          []Cmd
}

// NewFrame creates an empty frame of the given logical size.
func NewFrame(width, height int32, clear color.RGBA) Frame {
	return Frame{Width: width, Height: height, Clear: clear}
}

// FillRect appends a filled rectangle.
func (f *Frame) FillRect(r components.Rect, c color.RGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: CmdFillRect, Rect: r, Color: c})
}

// RectLines appends a rectangle outline.
func (f *Frame) RectLines(r components.Rect, thickness float32, c color.RGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: CmdRectLines, Rect: r, Color: c, Thickness: thickness})
}

// Ellipse appends an ellipse inscribed in r.
func (f *Frame) Ellipse(r components.Rect, c color.RGBA) {
	f.Cmds = append(f.Cmds, Cmd{Kind: CmdEllipse, Rect: r, Color: c})
}

// Text appends a text blit anchored at (x, y).
func (f *Frame) Text(text string, x, y float32, size int32, align Align, c color.RGBA) {
	f.Cmds = append(f.Cmds, Cmd{
		Kind:  CmdText,
		Rect:  components.Rect{X: x, Y: y},
		Color: c,
		Text:  text,
		Size:  size,
		Align: align,
	})
}

// Button appends a selectable option. Backends that support pointers report
// clicks on it by ID.
func (f *Frame) Button(cmd Cmd) {
	cmd.Kind = CmdButton
	f.Cmds = append(f.Cmds, cmd)
}

// Overlay appends a translucent full-frame rectangle.
func (f *Frame) Overlay(c color.RGBA) {
	f.FillRect(components.Rect{W: float32(f.Width), H: float32(f.Height)}, c)
}

// Clone returns a copy whose command slice can be appended to without
// touching the original.
func (f Frame) Clone() Frame {
	out := f
	out.Cmds = make([]Cmd, len(f.Cmds), len(f.Cmds)+16)
	copy(out.Cmds, f.Cmds)
	return out
}

// Buttons returns the button commands in draw order.
func (f Frame) Buttons() []Cmd {
	var out []Cmd
	for _, c := range f.Cmds {
		if c.Kind == CmdButton {
			out = append(out, c)
		}
	}
	return out
}
