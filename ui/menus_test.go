package ui

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/renderer"
)

var testOptions = []Option{
	{Label: "Slow", Accent: color.RGBA{R: 255, G: 100, B: 100, A: 255}},
	{Label: "Medium (Recommended)", Accent: color.RGBA{R: 255, G: 255, B: 100, A: 255}},
	{Label: "Fast", Accent: color.RGBA{R: 100, G: 255, B: 100, A: 255}},
}

func TestSpeedMenuOptions(t *testing.T) {
	r := NewRenderer()
	f := r.SpeedMenu(600, 500, testOptions, 1)

	if f.Width != 600 || f.Height != 500 {
		t.Fatalf("frame size = %dx%d, want 600x500", f.Width, f.Height)
	}

	buttons := f.Buttons()
	if len(buttons) != 3 {
		t.Fatalf("got %d buttons, want 3", len(buttons))
	}

	wantY := []float32{195, 245, 295}
	for i, b := range buttons {
		if b.ID != i {
			t.Errorf("button %d id = %d", i, b.ID)
		}
		want := components.Rect{X: 150, Y: wantY[i], W: 300, H: 40}
		if b.Rect != want {
			t.Errorf("button %d rect = %+v, want %+v", i, b.Rect, want)
		}
		if b.Selected != (i == 1) {
			t.Errorf("button %d selected = %v", i, b.Selected)
		}
	}

	sel := buttons[1]
	if sel.Color != testOptions[1].Accent {
		t.Errorf("selected fill = %v, want accent %v", sel.Color, testOptions[1].Accent)
	}
	if sel.TextColor != r.Theme.SelectedText {
		t.Errorf("selected text = %v, want %v", sel.TextColor, r.Theme.SelectedText)
	}

	other := buttons[0]
	if other.Color != r.Theme.OptionBg || other.Border != testOptions[0].Accent {
		t.Errorf("unselected colors = %v/%v", other.Color, other.Border)
	}
}

func TestPauseOverlayKeepsFrozenFrame(t *testing.T) {
	r := NewRenderer()

	frozen := renderer.NewFrame(800, 600, r.Theme.Background)
	frozen.FillRect(components.Rect{X: 770, Y: 250, W: 15, H: 100}, r.Theme.TitleColor)
	n := len(frozen.Cmds)

	f := r.PauseOverlay(frozen, []string{"Resume", "New Game", "Quit"}, 2)

	if len(frozen.Cmds) != n {
		t.Errorf("frozen frame modified: %d commands, want %d", len(frozen.Cmds), n)
	}
	if f.Cmds[0] != frozen.Cmds[0] {
		t.Error("overlay should start with the frozen commands")
	}

	overlay := f.Cmds[n]
	if overlay.Kind != renderer.CmdFillRect || overlay.Color.A != 128 {
		t.Errorf("overlay cmd = %+v, want half-transparent fill", overlay)
	}

	buttons := f.Buttons()
	if len(buttons) != 3 {
		t.Fatalf("got %d buttons, want 3", len(buttons))
	}
	for i, b := range buttons {
		wantY := float32(200 + 70 + i*40)
		if b.Rect.Y != wantY || b.Rect.X != 300 || b.Rect.W != 200 || b.Rect.H != 30 {
			t.Errorf("button %d rect = %+v", i, b.Rect)
		}
	}
	if !buttons[2].Selected || buttons[0].Selected {
		t.Error("only Quit should be selected")
	}
	if buttons[2].Color != r.Theme.ButtonActive {
		t.Errorf("selected fill = %v, want %v", buttons[2].Color, r.Theme.ButtonActive)
	}
}
