package menu

import (
	"testing"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/platform/headless"
	"github.com/pthm-cable/pong/renderer"
)

func press(keys ...platform.Key) platform.Input {
	return platform.Press(keys...)
}

func TestSpeedMenuClamps(t *testing.T) {
	tests := []struct {
		name  string
		start components.Speed
		keys  []platform.Key
		want  components.Speed
	}{
		{"up from medium", components.SpeedMedium, []platform.Key{platform.KeyUp}, components.SpeedSlow},
		{"up stops at slow", components.SpeedMedium, []platform.Key{platform.KeyUp, platform.KeyUp, platform.KeyUp}, components.SpeedSlow},
		{"down stops at fast", components.SpeedMedium, []platform.Key{platform.KeyDown, platform.KeyDown}, components.SpeedFast},
		{"down then up", components.SpeedSlow, []platform.Key{platform.KeyDown, platform.KeyUp}, components.SpeedSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSpeedMenu(tt.start)
			if got := m.Handle(press(tt.keys...)); got != Pending {
				t.Errorf("outcome = %v, want Pending", got)
			}
			if m.Selected != tt.want {
				t.Errorf("selected = %v, want %v", m.Selected, tt.want)
			}
		})
	}
}

func TestSpeedMenuConfirmAndClose(t *testing.T) {
	m := NewSpeedMenu(components.SpeedMedium)
	if got := m.Handle(press(platform.KeyDown, platform.KeyEnter, platform.KeyUp)); got != Confirmed {
		t.Fatalf("outcome = %v, want Confirmed", got)
	}
	if m.Selected != components.SpeedFast {
		t.Errorf("selected = %v, want fast", m.Selected)
	}

	m = NewSpeedMenu(components.SpeedMedium)
	if got := m.Handle(platform.Input{Closed: true, Pressed: []platform.Key{platform.KeyEnter}}); got != Closed {
		t.Errorf("outcome = %v, want Closed", got)
	}

	m = NewSpeedMenu(components.SpeedMedium)
	in := platform.Idle()
	in.Clicked = 0
	if got := m.Handle(in); got != Confirmed || m.Selected != components.SpeedSlow {
		t.Errorf("click: outcome = %v, selected = %v, want Confirmed/slow", got, m.Selected)
	}
}

func TestPauseMenuWraps(t *testing.T) {
	tests := []struct {
		name string
		keys []platform.Key
		want Decision
	}{
		{"enter resumes", []platform.Key{platform.KeyEnter}, Resume},
		{"up wraps to quit", []platform.Key{platform.KeyUp, platform.KeyEnter}, Quit},
		{"down selects new game", []platform.Key{platform.KeyDown, platform.KeyEnter}, NewGame},
		{"down three times wraps", []platform.Key{platform.KeyDown, platform.KeyDown, platform.KeyDown, platform.KeyEnter}, Resume},
		{"escape resumes from quit", []platform.Key{platform.KeyUp, platform.KeyEscape}, Resume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPauseMenu()
			if got := m.Handle(press(tt.keys...)); got != tt.want {
				t.Errorf("decision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPauseMenuCloseQuits(t *testing.T) {
	m := NewPauseMenu()
	if got := m.Handle(platform.Input{Closed: true, Clicked: platform.NoClick}); got != Quit {
		t.Errorf("decision = %v, want quit", got)
	}
}

func TestRunSpeedSelect(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	p := headless.New(headless.Options{Script: []platform.Input{
		platform.Idle(),
		press(platform.KeyUp),
		press(platform.KeyEnter),
	}, Record: true})

	speed, ok := RunSpeedSelect(p, cfg)
	if !ok {
		t.Fatal("RunSpeedSelect reported quit")
	}
	if speed != components.SpeedSlow {
		t.Errorf("speed = %v, want slow", speed)
	}
	if p.Presents() != 2 {
		t.Errorf("presents = %d, want 2", p.Presents())
	}
	if p.Last().Width != 600 || p.Last().Height != 500 {
		t.Errorf("menu frame = %dx%d, want 600x500", p.Last().Width, p.Last().Height)
	}
	if len(p.Rates()) != 2 {
		t.Errorf("syncs = %d, want 2", len(p.Rates()))
	}
	for _, fps := range p.Rates() {
		if fps != 30 {
			t.Errorf("menu synced at %d fps, want 30", fps)
		}
	}
}

func TestRunSpeedSelectQuit(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	p := headless.New(headless.Options{})
	if _, ok := RunSpeedSelect(p, cfg); ok {
		t.Error("closing the menu should report quit")
	}
}

func TestRunPause(t *testing.T) {
	frozen := renderer.NewFrame(800, 600, renderer.Frame{}.Clear)

	p := headless.New(headless.Options{Script: []platform.Input{
		press(platform.KeyDown),
		press(platform.KeyEnter),
	}})

	if got := RunPause(p, frozen, 30); got != NewGame {
		t.Errorf("decision = %v, want new_game", got)
	}
	if p.Presents() != 1 {
		t.Errorf("presents = %d, want 1", p.Presents())
	}
	if len(frozen.Cmds) != 0 {
		t.Error("frozen frame was modified")
	}
}
