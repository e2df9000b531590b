package systems

import (
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestAIDecide(t *testing.T) {
	ai := AIController{Step: 6, DeadZone: 10}

	tests := []struct {
		name    string
		paddle  float32
		ball    float32
		wantDY  float32
	}{
		{"ball well below", 300, 350, 6},
		{"ball well above", 300, 250, -6},
		{"inside dead zone below", 300, 310, 0},
		{"inside dead zone above", 300, 290, 0},
		{"just past dead zone", 300, 310.5, 6},
		{"aligned", 300, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ai.Decide(tt.paddle, tt.ball); got != tt.wantDY {
				t.Errorf("Decide(%v, %v) = %v, want %v", tt.paddle, tt.ball, got, tt.wantDY)
			}
		})
	}
}

func TestAIUpdateClampsToPlayfield(t *testing.T) {
	ai := AIController{Step: 6, DeadZone: 10}
	bounds := Bounds{Width: 800, Height: 600}

	// Chasing a ball at the bottom edge must never push the paddle out.
	paddle := components.Rect{X: 15, Y: 250, W: 15, H: 100}
	for i := 0; i < 200; i++ {
		ai.Update(&paddle, 595, bounds)
		if paddle.Top() < 0 || paddle.Bottom() > bounds.Height {
			t.Fatalf("frame %d: paddle out of bounds: top=%v bottom=%v", i, paddle.Top(), paddle.Bottom())
		}
	}
	if paddle.Bottom() != bounds.Height {
		t.Errorf("bottom = %v, want paddle resting on %v", paddle.Bottom(), bounds.Height)
	}

	for i := 0; i < 200; i++ {
		ai.Update(&paddle, 5, bounds)
		if paddle.Top() < 0 || paddle.Bottom() > bounds.Height {
			t.Fatalf("frame %d: paddle out of bounds: top=%v bottom=%v", i, paddle.Top(), paddle.Bottom())
		}
	}
	if paddle.Top() != 0 {
		t.Errorf("top = %v, want 0", paddle.Top())
	}
}

func TestAIUpdateDeadZoneHoldsStill(t *testing.T) {
	ai := AIController{Step: 6, DeadZone: 10}
	paddle := components.Rect{X: 15, Y: 250, W: 15, H: 100}

	ai.Update(&paddle, 305, Bounds{Width: 800, Height: 600})
	if paddle.Y != 250 {
		t.Errorf("paddle moved to %v inside the dead zone", paddle.Y)
	}
}

func TestMovePaddleClamp(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}

	tests := []struct {
		name  string
		y, dy float32
		want  float32
	}{
		{"free move down", 250, 8, 258},
		{"free move up", 250, -8, 242},
		{"clamp top", 4, -8, 0},
		{"clamp bottom", 496, 8, 500},
		{"at bottom stays", 500, 8, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.Rect{X: 770, Y: tt.y, W: 15, H: 100}
			MovePaddle(&p, tt.dy, bounds)
			if p.Y != tt.want {
				t.Errorf("Y = %v, want %v", p.Y, tt.want)
			}
		})
	}
}

func TestPlayerDelta(t *testing.T) {
	if got := PlayerDelta(true, false, 8); got != -8 {
		t.Errorf("up = %v, want -8", got)
	}
	if got := PlayerDelta(false, true, 8); got != 8 {
		t.Errorf("down = %v, want 8", got)
	}
	if got := PlayerDelta(true, true, 8); got != 0 {
		t.Errorf("both = %v, want 0", got)
	}
}
