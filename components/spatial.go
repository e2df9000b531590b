package components

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float32 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float32 { return r.Y + r.H/2 }

// SetCenter moves the rectangle so its center is at (cx, cy).
func (r *Rect) SetCenter(cx, cy float32) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Intersects reports whether the two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Velocity is a per-tick displacement.
type Velocity struct {
	DX, DY float32
}
