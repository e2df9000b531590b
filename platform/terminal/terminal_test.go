package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/platform"
)

func newTestTerminal(buffer int) *Terminal {
	return &Terminal{
		events: make(chan tcell.Event, buffer),
		done:   make(chan struct{}),
		canvas: NewCanvas(80, 24),
		now:    func() time.Time { return time.Unix(0, 0) },
	}
}

func TestPumpStopsWhenClosedWithFullBuffer(t *testing.T) {
	term := newTestTerminal(1)
	key := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	finished := make(chan struct{})
	go func() {
		term.pump(func() tcell.Event { return key })
		close(finished)
	}()

	// Nobody drains: the pump fills the buffer and blocks on the next send.
	close(term.done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pump still blocked after close")
	}
	n := 0
	for range term.events {
		n++
	}
	if n > 1 {
		t.Errorf("drained %d events, want at most the buffer size 1", n)
	}
}

func TestPumpClosesEventsAtEnd(t *testing.T) {
	term := newTestTerminal(4)
	events := []tcell.Event{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)}

	term.pump(func() tcell.Event {
		if len(events) == 0 {
			return nil
		}
		ev := events[0]
		events = events[1:]
		return ev
	})

	in := term.Poll()
	if !in.Has(platform.KeyEscape) {
		t.Errorf("pressed = %v, want escape", in.Pressed)
	}
	if !in.Closed {
		t.Error("finished pump should report Closed")
	}
}

func TestPollHoldsArrowKeys(t *testing.T) {
	term := newTestTerminal(4)
	term.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	in := term.Poll()
	if !in.Has(platform.KeyUp) || !in.Has(platform.KeyEnter) {
		t.Errorf("pressed = %v, want up and enter", in.Pressed)
	}
	if !in.HeldUp || in.HeldDown {
		t.Errorf("held up/down = %v/%v, want true/false", in.HeldUp, in.HeldDown)
	}

	// Within holdFor with no new events the key stays held
	again := term.Poll()
	if len(again.Pressed) != 0 || !again.HeldUp {
		t.Errorf("second poll = %+v, want held up and nothing pressed", again)
	}
	if again.Closed {
		t.Error("open event channel should not report Closed")
	}
}
