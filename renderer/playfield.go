package renderer

import (
	"image/color"
	"strconv"

	"github.com/pthm-cable/pong/components"
)

var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLabel      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Playfield layout
const (
	centerLineGap    = 20
	centerLineWidth  = 4
	centerLineHeight = 10
	scoreFontSize    = 60
	labelFontSize    = 28
	scoreY           = 50
	labelY           = 100
	playerTextOffset = 50  // from the center line, to the right
	aiTextOffset     = 100 // from the center line, to the left
)

// Scene is everything the playfield needs from the game state.
type Scene struct {
	Width, Height int32
	Player        components.Rect
	AI            components.Rect
	Ball          components.Rect
	PlayerScore   int
	AIScore       int
}

// Playfield builds the gameplay frame: paddles, ball, dashed center line,
// scores and side labels.
func Playfield(s Scene) Frame {
	f := NewFrame(s.Width, s.Height, colorBackground)
	mid := float32(s.Width / 2)

	f.FillRect(s.Player, colorForeground)
	f.FillRect(s.AI, colorForeground)
	f.Ellipse(s.Ball, colorForeground)

	for y := int32(0); y < s.Height; y += centerLineGap {
		f.FillRect(components.Rect{
			X: mid - centerLineWidth/2,
			Y: float32(y),
			W: centerLineWidth,
			H: centerLineHeight,
		}, colorForeground)
	}

	f.Text(strconv.Itoa(s.PlayerScore), mid+playerTextOffset, scoreY, scoreFontSize, AlignLeft, colorForeground)
	f.Text(strconv.Itoa(s.AIScore), mid-aiTextOffset, scoreY, scoreFontSize, AlignLeft, colorForeground)

	f.Text("PLAYER", mid+playerTextOffset, labelY, labelFontSize, AlignLeft, colorLabel)
	f.Text("AI", mid-aiTextOffset, labelY, labelFontSize, AlignLeft, colorLabel)

	return f
}
