// Package window runs the game in a raylib window. Menu options are raygui
// buttons so they can be clicked as well as chosen with the keyboard.
package window

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
)

// buttonHitMargin grows the raygui hit area around a drawn option.
const buttonHitMargin = 3

var errNoAudioDevice = errors.New("audio device not ready")

// keyMap lists the raylib keys the game reacts to.
var keyMap = []struct {
	rl  int32
	key platform.Key
}{
	{rl.KeyEscape, platform.KeyEscape},
	{rl.KeyUp, platform.KeyUp},
	{rl.KeyDown, platform.KeyDown},
	{rl.KeyEnter, platform.KeyEnter},
	{rl.KeyKpEnter, platform.KeyEnter},
}

// Window is a raylib-backed platform.
type Window struct {
	width, height int32
	fps           int
	clicked       int
	latch         platform.PressLatch

	audioReady bool
	sounds     map[audio.Cue]rl.Sound
}

var _ platform.Platform = (*Window)(nil)

// Open creates the window at the menu size. bank may be nil to run silently.
func Open(cfg *config.Config, bank *audio.Bank) (*Window, error) {
	w := &Window{
		width:   int32(cfg.Screen.MenuWidth),
		height:  int32(cfg.Screen.MenuHeight),
		clicked: platform.NoClick,
		sounds:  make(map[audio.Cue]rl.Sound),
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.width, w.height, cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("opening %dx%d window: raylib window not ready", w.width, w.height)
	}
	// Escape opens the pause menu; it must not close the window
	rl.SetExitKey(0)

	if bank != nil {
		w.loadSounds(bank)
	}
	return w, nil
}

// loadSounds uploads every synthesized cue to the raylib audio device.
func (w *Window) loadSounds(bank *audio.Bank) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		slog.Warn("audio_disabled", "frontend", "window", "error", errNoAudioDevice)
		return
	}
	w.audioReady = true

	rate := uint32(bank.Format().SampleRate)
	for _, cue := range audio.Cues {
		pcm := bank.PCM16(cue)
		if len(pcm) == 0 {
			continue
		}
		data := make([]byte, 2*len(pcm))
		for i, v := range pcm {
			binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
		}
		wave := rl.NewWave(uint32(len(pcm)), rate, 16, 1, data)
		w.sounds[cue] = rl.LoadSoundFromWave(wave)
	}
}

// Poll reads keyboard state and any option clicked during the last Present.
// raylib only refreshes pressed keys in EndDrawing, so presses are handed to
// the first Poll after each Present.
func (w *Window) Poll() platform.Input {
	in := platform.Input{
		Closed:   rl.WindowShouldClose(),
		HeldUp:   rl.IsKeyDown(rl.KeyUp),
		HeldDown: rl.IsKeyDown(rl.KeyDown),
		Clicked:  w.clicked,
	}
	w.clicked = platform.NoClick

	for _, k := range keyMap {
		if rl.IsKeyPressed(k.rl) {
			in.Pressed = append(in.Pressed, k.key)
		}
	}
	return w.latch.Take(in)
}

// Present draws the frame, resizing the window when the frame size changes.
func (w *Window) Present(f renderer.Frame) {
	if f.Width != w.width || f.Height != w.height {
		w.width, w.height = f.Width, f.Height
		rl.SetWindowSize(int(f.Width), int(f.Height))
	}

	rl.BeginDrawing()
	rl.ClearBackground(f.Clear)

	for _, cmd := range f.Cmds {
		switch cmd.Kind {
		case renderer.CmdFillRect:
			rl.DrawRectangleRec(toRect(cmd.Rect), cmd.Color)
		case renderer.CmdRectLines:
			rl.DrawRectangleLinesEx(toRect(cmd.Rect), cmd.Thickness, cmd.Color)
		case renderer.CmdEllipse:
			r := cmd.Rect
			rl.DrawEllipse(int32(r.CenterX()), int32(r.CenterY()), r.W/2, r.H/2, cmd.Color)
		case renderer.CmdText:
			drawText(cmd.Text, cmd.Rect.X, cmd.Rect.Y, cmd.Size, cmd.Align, cmd.Color)
		case renderer.CmdButton:
			w.drawButton(cmd)
		}
	}

	rl.EndDrawing()
	w.latch.Release()
}

// drawButton registers a raygui button for clicks and draws the themed
// option on top of it, leaving a thin raygui rim for hover feedback.
func (w *Window) drawButton(cmd renderer.Cmd) {
	hit := toRect(cmd.Rect)
	hit.X -= buttonHitMargin
	hit.Y -= buttonHitMargin
	hit.Width += 2 * buttonHitMargin
	hit.Height += 2 * buttonHitMargin
	if gui.Button(hit, "") {
		w.clicked = cmd.ID
	}

	rect := toRect(cmd.Rect)
	rl.DrawRectangleRec(rect, cmd.Color)
	rl.DrawRectangleLinesEx(rect, cmd.Thickness, cmd.Border)
	drawText(cmd.Text, cmd.Rect.CenterX(), cmd.Rect.CenterY(), cmd.Size, renderer.AlignCenter, cmd.TextColor)
}

// Sync sets the frame rate that EndDrawing waits for.
func (w *Window) Sync(fps int) {
	if fps != w.fps {
		w.fps = fps
		rl.SetTargetFPS(int32(fps))
	}
}

// Play starts a cue.
func (w *Window) Play(c audio.Cue) error {
	if !w.audioReady {
		return errNoAudioDevice
	}
	snd, ok := w.sounds[c]
	if !ok {
		return fmt.Errorf("no sound loaded for cue %s", c)
	}
	rl.PlaySound(snd)
	return nil
}

// Close releases sounds, the audio device and the window.
func (w *Window) Close() error {
	if w.audioReady {
		for _, snd := range w.sounds {
			rl.UnloadSound(snd)
		}
		rl.CloseAudioDevice()
	}
	rl.CloseWindow()
	return nil
}

func drawText(text string, x, y float32, size int32, align renderer.Align, col color.RGBA) {
	px, py := int32(x), int32(y)
	switch align {
	case renderer.AlignCenterTop:
		px -= rl.MeasureText(text, size) / 2
	case renderer.AlignCenter:
		px -= rl.MeasureText(text, size) / 2
		py -= size / 2
	}
	rl.DrawText(text, px, py, size, col)
}

func toRect(r components.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
