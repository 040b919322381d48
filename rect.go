package main

// Rect is an axis-aligned box in world units, X and Y at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// centeredRect builds the box of an entity from its centre and size.
func centeredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
