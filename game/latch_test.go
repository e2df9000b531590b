package game

import (
	"testing"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
)

// framePlatform behaves like raylib: input only advances when a frame is
// presented, so every Poll in between sees the same keys unless the latch
// hands them out once.
type framePlatform struct {
	script   []platform.Input
	step     int
	polls    int
	maxPolls int
	latch    platform.PressLatch
	frames   []renderer.Frame
}

func (p *framePlatform) Poll() platform.Input {
	p.polls++
	if p.polls > p.maxPolls || p.step >= len(p.script) {
		return platform.Input{Closed: true, Clicked: platform.NoClick}
	}
	return p.latch.Take(p.script[p.step])
}

func (p *framePlatform) Present(f renderer.Frame) {
	p.frames = append(p.frames, f)
	p.step++
	p.latch.Release()
}

func (p *framePlatform) Sync(int)             {}
func (p *framePlatform) Play(audio.Cue) error { return nil }
func (p *framePlatform) Close() error         { return nil }

func runFrames(t *testing.T, in []platform.Input) (*Game, *framePlatform) {
	t.Helper()
	p := &framePlatform{script: in, maxPolls: 100}
	g := NewGame(testConfig(t), p, Options{Coin: heads})
	g.Run()
	if p.polls > p.maxPolls {
		t.Fatalf("loop polled %d times without presenting, input is being re-read", p.polls)
	}
	return g, p
}

func TestEscapeOpensPauseOnce(t *testing.T) {
	g, p := runFrames(t, script(
		one(platform.Press(platform.KeyEnter)),
		idle(2),
		one(platform.Press(platform.KeyEscape)),
		one(platform.Press(platform.KeyEnter)), // Resume is preselected
	))

	// three play frames, the overlay, one play frame after resuming
	if len(p.frames) != 5 {
		t.Fatalf("presents = %d, want 5", len(p.frames))
	}
	if n := len(p.frames[3].Buttons()); n != 3 {
		t.Errorf("frame 4 has %d buttons, want the 3 pause options", n)
	}
	if n := len(p.frames[4].Buttons()); n != 0 {
		t.Errorf("frame 5 has %d buttons, want the playfield", n)
	}
	if g.State().Tick != 4 {
		t.Errorf("tick = %d, want 4", g.State().Tick)
	}
	if g.State().Mode != ModeTerminated {
		t.Errorf("mode = %v, want terminated", g.State().Mode)
	}
}

func TestNewGameShowsSpeedMenu(t *testing.T) {
	g, p := runFrames(t, script(
		one(platform.Press(platform.KeyEnter)),
		one(platform.Press(platform.KeyEscape)),
		one(platform.Press(platform.KeyDown)),
		one(platform.Press(platform.KeyEnter)), // New Game
		one(platform.Press(platform.KeyDown)),
		one(platform.Press(platform.KeyEnter)), // Fast
	))

	// play, overlay, overlay, speed menu, speed menu, play
	if len(p.frames) != 6 {
		t.Fatalf("presents = %d, want 6", len(p.frames))
	}
	for _, i := range []int{3, 4} {
		if f := p.frames[i]; f.Width != 600 || f.Height != 500 {
			t.Errorf("frame %d = %dx%d, want the 600x500 speed menu", i+1, f.Width, f.Height)
		}
	}

	s := g.State()
	if s.Speed != components.SpeedFast {
		t.Errorf("speed = %v, want fast", s.Speed)
	}
	if s.Tick != 2 {
		t.Errorf("tick = %d, want 2", s.Tick)
	}
}
