// Package headless implements a platform with no display, for unattended
// runs and for driving the game from scripted input.
package headless

import (
	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/platform"
	"github.com/pthm-cable/pong/renderer"
)

// Options configures a headless platform.
type Options struct {
	Script      []platform.Input // Returned one per Poll, in order
	AutoConfirm bool             // After the script: press Enter every poll instead of closing
	MaxPolls    int              // Report Closed from this poll on (0 = unlimited)
	Record      bool             // Keep every presented frame, rate and cue
}

// Platform records what the game presents and plays.
type Platform struct {
	opts     Options
	polls    int
	presents int
	last     renderer.Frame
	frames   []renderer.Frame
	cues     []audio.Cue
	rates    []int
}

var _ platform.Platform = (*Platform)(nil)

// New creates a headless platform.
func New(opts Options) *Platform {
	return &Platform{opts: opts}
}

// Poll returns the next scripted input.
func (p *Platform) Poll() platform.Input {
	n := p.polls
	p.polls++

	if p.opts.MaxPolls > 0 && n >= p.opts.MaxPolls {
		return platform.Input{Closed: true, Clicked: platform.NoClick}
	}
	if n < len(p.opts.Script) {
		return p.opts.Script[n]
	}
	if p.opts.AutoConfirm {
		return platform.Press(platform.KeyEnter)
	}
	return platform.Input{Closed: true, Clicked: platform.NoClick}
}

// Present stores the frame.
func (p *Platform) Present(f renderer.Frame) {
	p.presents++
	p.last = f
	if p.opts.Record {
		p.frames = append(p.frames, f)
	}
}

// Sync returns immediately, recording the requested rate.
func (p *Platform) Sync(fps int) {
	if p.opts.Record {
		p.rates = append(p.rates, fps)
	}
}

// Play records the cue.
func (p *Platform) Play(c audio.Cue) error {
	if p.opts.Record {
		p.cues = append(p.cues, c)
	}
	return nil
}

// Close does nothing.
func (p *Platform) Close() error { return nil }

// Polls returns how many times Poll was called.
func (p *Platform) Polls() int { return p.polls }

// Presents returns how many frames were presented.
func (p *Platform) Presents() int { return p.presents }

// Last returns the most recently presented frame.
func (p *Platform) Last() renderer.Frame { return p.last }

// Frames returns every presented frame when recording.
func (p *Platform) Frames() []renderer.Frame { return p.frames }

// Cues returns the cues played so far when recording.
func (p *Platform) Cues() []audio.Cue { return p.cues }

// Rates returns the fps passed to each Sync when recording.
func (p *Platform) Rates() []int { return p.rates }
