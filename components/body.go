package components

// Paddle marks a paddle entity and the side it defends.
type Paddle struct {
	Side Side
}

// Ball marks the ball entity.
type Ball struct{}
