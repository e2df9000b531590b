// Package terminal runs the game in a text terminal with tcell, playing
// sound through the beep speaker.
package terminal

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
)

// holdFor is how long a key counts as held after its last key event.
// Terminals report repeats, never releases.
const holdFor = 120 * time.Millisecond

var errNoSpeaker = errors.New("speaker not initialized")

// Terminal is a tcell-backed platform.
type Terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	canvas  *Canvas
	limiter *platform.SleepLimiter

	bank      *audio.Bank
	speakerOn bool
	upUntil   time.Time
	downUntil time.Time
	now       func() time.Time
}

var _ platform.Platform = (*Terminal)(nil)

// Open takes over the terminal. bank may be nil to run silently.
func Open(bank *audio.Bank) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.EnableMouse()

	cols, rows := screen.Size()
	t := &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		done:    make(chan struct{}),
		canvas:  NewCanvas(cols, rows),
		limiter: platform.NewSleepLimiter(),
		bank:    bank,
		now:     time.Now,
	}

	if bank != nil {
		sr := bank.Format().SampleRate
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			slog.Warn("audio_disabled", "frontend", "terminal", "error", err)
		} else {
			t.speakerOn = true
		}
	}

	go t.pump(screen.PollEvent)
	return t, nil
}

// pump forwards events from poll until it returns nil or Close is called.
func (t *Terminal) pump(poll func() tcell.Event) {
	defer close(t.events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains pending terminal events without blocking.
func (t *Terminal) Poll() platform.Input {
	in := platform.Idle()
	now := t.now()

drain:
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Closed = true
				break drain
			}
			t.handle(ev, now, &in)
		default:
			break drain
		}
	}

	in.HeldUp = now.Before(t.upUntil)
	in.HeldDown = now.Before(t.downUntil)
	return in
}

func (t *Terminal) handle(ev tcell.Event, now time.Time, in *platform.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			in.Pressed = append(in.Pressed, platform.KeyEscape)
		case tcell.KeyUp:
			in.Pressed = append(in.Pressed, platform.KeyUp)
			t.upUntil = now.Add(holdFor)
			t.downUntil = time.Time{}
		case tcell.KeyDown:
			in.Pressed = append(in.Pressed, platform.KeyDown)
			t.downUntil = now.Add(holdFor)
			t.upUntil = time.Time{}
		case tcell.KeyEnter:
			in.Pressed = append(in.Pressed, platform.KeyEnter)
		case tcell.KeyCtrlC:
			in.Closed = true
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if id := t.canvas.ButtonAt(x, y); id >= 0 {
				in.Clicked = id
			}
		}
	case *tcell.EventResize:
		cols, rows := t.screen.Size()
		t.canvas.Resize(cols, rows)
		t.screen.Sync()
	}
}

// Present rasterizes the frame onto the terminal.
func (t *Terminal) Present(f renderer.Frame) {
	t.canvas.Draw(f)

	cols, rows := t.canvas.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := t.canvas.At(x, y)
			style := tcell.StyleDefault.Foreground(toColor(cell.Fg)).Background(toColor(cell.Bg))
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	t.screen.Show()
}

// Sync sleeps off the rest of the frame.
func (t *Terminal) Sync(fps int) {
	t.limiter.Sync(fps)
}

// Play starts a cue on the speaker.
func (t *Terminal) Play(c audio.Cue) error {
	if !t.speakerOn {
		return errNoSpeaker
	}
	s := t.bank.Streamer(c)
	if s == nil {
		return fmt.Errorf("no buffer for cue %s", c)
	}
	speaker.Play(s)
	return nil
}

// Close restores the terminal and stops audio.
func (t *Terminal) Close() error {
	close(t.done)
	if t.speakerOn {
		speaker.Close()
	}
	t.screen.Fini()
	return nil
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
