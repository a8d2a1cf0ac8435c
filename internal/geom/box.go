package geom

// BoundingBox2D is an axis-aligned rectangle anchored at its top-left corner.
//
// All tests use half-open intervals: a box covers [X, X+Width) by [Y, Y+Height).
// Boxes that only share an edge do not intersect, which keeps IntersectsBox symmetric.
type BoundingBox2D struct {
	Origin Vector2
	Width  uint
	Height uint
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y float64, width, height uint) BoundingBox2D {
	return BoundingBox2D{Origin: Vector2{X: x, Y: y}, Width: width, Height: height}
}

// Right returns the x coordinate one past the right edge.
func (b BoundingBox2D) Right() float64 {
	return b.Origin.X + float64(b.Width)
}

// Bottom returns the y coordinate one past the bottom edge.
func (b BoundingBox2D) Bottom() float64 {
	return b.Origin.Y + float64(b.Height)
}

// IntersectsPoint reports whether p lies inside the box.
func (b BoundingBox2D) IntersectsPoint(p Vector2) bool {
	return p.X >= b.Origin.X && p.X < b.Right() &&
		p.Y >= b.Origin.Y && p.Y < b.Bottom()
}

// IntersectsBox reports whether the two boxes overlap on both axes.
func (b BoundingBox2D) IntersectsBox(o BoundingBox2D) bool {
	return b.Origin.X < o.Right() && o.Origin.X < b.Right() &&
		b.Origin.Y < o.Bottom() && o.Origin.Y < b.Bottom()
}

// Center returns the origin offset by half the size. Odd sizes truncate.
func (b BoundingBox2D) Center() Vector2 {
	return Vector2{
		X: b.Origin.X + float64(b.Width/2),
		Y: b.Origin.Y + float64(b.Height/2),
	}
}

// ResolveAgainst moves the box by velocity, one axis at a time (x, then y).
// After each axis move the first obstacle that overlaps the box snaps it flush
// against that obstacle's near edge, chosen by the sign of the velocity
// component. Obstacle order decides which obstacle wins.
func (b *BoundingBox2D) ResolveAgainst(obstacles []BoundingBox2D, velocity Vector2) {
	b.Origin.X += velocity.X
	for _, o := range obstacles {
		if !b.IntersectsBox(o) {
			continue
		}
		switch {
		case velocity.X > 0:
			b.Origin.X = o.Origin.X - float64(b.Width)
		case velocity.X < 0:
			b.Origin.X = o.Right()
		}
		break
	}

	b.Origin.Y += velocity.Y
	for _, o := range obstacles {
		if !b.IntersectsBox(o) {
			continue
		}
		switch {
		case velocity.Y > 0:
			b.Origin.Y = o.Origin.Y - float64(b.Height)
		case velocity.Y < 0:
			b.Origin.Y = o.Bottom()
		}
		break
	}
}
