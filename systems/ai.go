package systems

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
)

// AIController tracks the ball with a fixed step and a dead zone.
// It never predicts the ball's path, so it lags behind fast or angled shots.
type AIController struct {
	Step     float32
	DeadZone float32
}

// NewAIController creates a controller from config.
func NewAIController(cfg config.AIConfig) AIController {
	return AIController{
		Step:     float32(cfg.Step),
		DeadZone: float32(cfg.DeadZone),
	}
}

// Decide returns the unclamped vertical displacement for this frame.
func (c AIController) Decide(paddleCenterY, ballCenterY float32) float32 {
	switch {
	case ballCenterY-paddleCenterY > c.DeadZone:
		return c.Step
	case paddleCenterY-ballCenterY > c.DeadZone:
		return -c.Step
	default:
		return 0
	}
}

// Update moves the paddle toward the ball, clamped to the playfield.
func (c AIController) Update(paddle *components.Rect, ballCenterY float32, b Bounds) {
	dy := c.Decide(paddle.CenterY(), ballCenterY)
	if dy == 0 {
		return
	}
	MovePaddle(paddle, dy, b)
}
