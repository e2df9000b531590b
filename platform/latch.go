package platform

// PressLatch hands the presses and clicks gathered for one frame to a single
// Poll. Backends whose key state only advances when a frame is drawn (raylib
// refreshes it in EndDrawing) would otherwise report the same press to every
// Poll until the next Present, so a key that opens a menu would also act
// inside it.
type PressLatch struct {
	taken bool
}

// Take returns in, minus its presses and click if they were already taken
// since the last Release. Closed and held keys pass through.
func (l *PressLatch) Take(in Input) Input {
	if l.taken {
		in.Pressed = nil
		in.Clicked = NoClick
	}
	l.taken = true
	return in
}

// Release makes the next frame's presses available. Call it after presenting.
func (l *PressLatch) Release() {
	l.taken = false
}
