package telemetry

import (
	"log/slog"
	"time"
)

// Phase is a timed section of a play frame.
type Phase uint8

const (
	PhaseInput Phase = iota
	PhaseAI
	PhasePhysics
	PhaseEvents
	PhaseRender
	numPhases
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseAI:
		return "ai"
	case PhasePhysics:
		return "physics"
	case PhaseEvents:
		return "events"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

type perfSample struct {
	tick   time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times frames over a rolling window.
type PerfCollector struct {
	now     func() time.Time
	samples []perfSample
	next    int
	count   int

	current    perfSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	return newPerfCollector(windowSize, time.Now)
}

func newPerfCollector(windowSize int, now func() time.Time) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{now: now, samples: make([]perfSample, windowSize)}
}

// StartTick begins timing a frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = perfSample{}
	p.inPhase = false
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.endPhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) endPhase(now time.Time) {
	if p.inPhase {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// EndTick records the frame.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.endPhase(now)
	p.current.tick = now.Sub(p.tickStart)

	p.samples[p.next] = p.current
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
}

// PerfStats summarizes frame timings.
type PerfStats struct {
	Samples  int
	AvgTick  time.Duration
	MaxTick  time.Duration
	PhaseAvg [numPhases]time.Duration
}

// Stats aggregates the samples in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Samples: p.count}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var phaseTotal [numPhases]time.Duration
	for _, sample := range p.samples[:p.count] {
		total += sample.tick
		if sample.tick > s.MaxTick {
			s.MaxTick = sample.tick
		}
		for i, d := range sample.phases {
			phaseTotal[i] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTick = total / n
	for i, d := range phaseTotal {
		s.PhaseAvg[i] = d / n
	}
	return s
}

// PhasePct returns phase's share of the average frame, in percent.
func (s PerfStats) PhasePct(phase Phase) float64 {
	if s.AvgTick <= 0 {
		return 0
	}
	return float64(s.PhaseAvg[phase]) / float64(s.AvgTick) * 100
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("samples", s.Samples),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
	}
	for phase := Phase(0); phase < numPhases; phase++ {
		attrs = append(attrs, slog.Float64(phase.String()+"_pct", s.PhasePct(phase)))
	}
	return slog.GroupValue(attrs...)
}
