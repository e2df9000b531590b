package headless

import (
	"testing"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
)

func TestScriptThenClose(t *testing.T) {
	p := New(Options{Script: []platform.Input{
		platform.Press(platform.KeyUp),
		platform.Idle(),
	}})

	if !p.Poll().Has(platform.KeyUp) {
		t.Error("first poll should press Up")
	}
	if in := p.Poll(); in.Closed || len(in.Pressed) != 0 {
		t.Errorf("second poll = %+v, want idle", in)
	}
	if !p.Poll().Closed {
		t.Error("exhausted script should close")
	}
	if p.Polls() != 3 {
		t.Errorf("polls = %d, want 3", p.Polls())
	}
}

func TestAutoConfirmAndMaxPolls(t *testing.T) {
	p := New(Options{AutoConfirm: true, MaxPolls: 2})

	for i := 0; i < 2; i++ {
		in := p.Poll()
		if in.Closed || !in.Has(platform.KeyEnter) {
			t.Errorf("poll %d = %+v, want Enter", i, in)
		}
	}
	if !p.Poll().Closed {
		t.Error("poll past MaxPolls should close")
	}
}

func TestRecording(t *testing.T) {
	p := New(Options{Record: true})

	p.Present(renderer.NewFrame(800, 600, renderer.Frame{}.Clear))
	p.Present(renderer.NewFrame(600, 500, renderer.Frame{}.Clear))
	p.Sync(60)
	if err := p.Play(audio.CueScore); err != nil {
		t.Fatal(err)
	}

	if p.Presents() != 2 || len(p.Frames()) != 2 {
		t.Errorf("presents = %d, frames = %d, want 2/2", p.Presents(), len(p.Frames()))
	}
	if p.Last().Width != 600 {
		t.Errorf("last width = %d, want 600", p.Last().Width)
	}
	if len(p.Cues()) != 1 || p.Cues()[0] != audio.CueScore {
		t.Errorf("cues = %v, want [score]", p.Cues())
	}
	if len(p.Rates()) != 1 || p.Rates()[0] != 60 {
		t.Errorf("rates = %v, want [60]", p.Rates())
	}
}

func TestNoRecordingByDefault(t *testing.T) {
	p := New(Options{})

	for i := 0; i < 100; i++ {
		p.Present(renderer.NewFrame(800, 600, renderer.Frame{}.Clear))
		p.Sync(60)
		if err := p.Play(audio.CueBounce); err != nil {
			t.Fatal(err)
		}
	}

	if p.Presents() != 100 {
		t.Errorf("presents = %d, want 100", p.Presents())
	}
	if len(p.Frames()) != 0 || len(p.Cues()) != 0 || len(p.Rates()) != 0 {
		t.Errorf("kept %d frames, %d cues, %d rates, want none", len(p.Frames()), len(p.Cues()), len(p.Rates()))
	}
}
