package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/pthm-cable/pong/config"
)

// Bank holds one synthesized buffer per cue.
type Bank struct {
	format  beep.Format
	buffers map[Cue]*beep.Buffer
}

// NewBank synthesizes every cue described by cfg.
func NewBank(cfg config.AudioConfig) (*Bank, error) {
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}

	b := &Bank{format: format, buffers: make(map[Cue]*beep.Buffer, len(Cues))}
	for _, cue := range Cues {
		buf, err := Synthesize(format, toneFor(cfg, cue))
		if err != nil {
			return nil, fmt.Errorf("synthesizing %s: %w", cue, err)
		}
		b.buffers[cue] = buf
	}
	return b, nil
}

// Format returns the sample format shared by all buffers.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Buffer returns the synthesized buffer for a cue, or nil.
func (b *Bank) Buffer(c Cue) *beep.Buffer {
	return b.buffers[c]
}

// Streamer returns a fresh streamer over the full cue.
func (b *Bank) Streamer(c Cue) beep.StreamSeeker {
	buf := b.buffers[c]
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// PCM16 returns the cue as mono signed 16-bit samples.
func (b *Bank) PCM16(c Cue) []int16 {
	s := b.Streamer(c)
	if s == nil {
		return nil
	}
	return drainMono16(s)
}

func toneFor(cfg config.AudioConfig, c Cue) config.ToneConfig {
	if c == CueScore {
		return cfg.Score
	}
	return cfg.Bounce
}

// Synthesize renders a sine tone of the given duration and volume into a buffer.
func Synthesize(format beep.Format, tone config.ToneConfig) (*beep.Buffer, error) {
	if tone.Duration <= 0 {
		return nil, fmt.Errorf("tone duration must be positive, got %v", tone.Duration)
	}

	sine, err := generators.SineTone(format.SampleRate, tone.Frequency)
	if err != nil {
		return nil, err
	}

	// Gain scales by (1 + Gain)
	gained := &effects.Gain{Streamer: sine, Gain: tone.Volume - 1}
	n := format.SampleRate.N(time.Duration(tone.Duration * float64(time.Second)))

	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(n, gained))
	return buf, nil
}

// drainMono16 reads a streamer to the end and converts the left channel to int16.
func drainMono16(s beep.Streamer) []int16 {
	var out []int16
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			v := math.Max(-1, math.Min(1, chunk[i][0]))
			out = append(out, int16(v*math.MaxInt16))
		}
		if !ok || n == 0 {
			return out
		}
	}
}
