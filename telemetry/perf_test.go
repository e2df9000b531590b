package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step on every reading.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestPerfCollectorPhases(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	pc := newPerfCollector(10, clock.now)

	for i := 0; i < 4; i++ {
		pc.StartTick()              // t0
		pc.StartPhase(PhaseAI)      // +1ms
		pc.StartPhase(PhasePhysics) // +1ms: ai = 1ms
		pc.EndTick()                // +1ms: physics = 1ms, tick = 3ms
	}

	stats := pc.Stats()
	if stats.Samples != 4 {
		t.Errorf("samples = %d, want 4", stats.Samples)
	}
	if stats.AvgTick != 3*time.Millisecond {
		t.Errorf("avg tick = %v, want 3ms", stats.AvgTick)
	}
	if stats.PhaseAvg[PhaseAI] != time.Millisecond || stats.PhaseAvg[PhasePhysics] != time.Millisecond {
		t.Errorf("phase avg = %v", stats.PhaseAvg)
	}
	if stats.PhaseAvg[PhaseRender] != 0 {
		t.Errorf("render avg = %v, want 0", stats.PhaseAvg[PhaseRender])
	}

	pct := stats.PhasePct(PhaseAI)
	if pct < 33.3 || pct > 33.4 {
		t.Errorf("ai pct = %v, want ~33.3", pct)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	pc := newPerfCollector(3, clock.now)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.Samples != 3 {
		t.Errorf("samples = %d, want 3", stats.Samples)
	}
	if stats.MaxTick != time.Millisecond {
		t.Errorf("max tick = %v, want 1ms", stats.MaxTick)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgTick != 0 || stats.PhasePct(PhaseAI) != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
