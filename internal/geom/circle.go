package geom

// BoundingCircle2D is a circle used for proximity tests.
type BoundingCircle2D struct {
	Center Vector2
	Radius uint
}

// IntersectsPoint reports whether p is strictly inside the circle.
func (c BoundingCircle2D) IntersectsPoint(p Vector2) bool {
	return p.Sub(c.Center).Length() < float64(c.Radius)
}

// IntersectsCircle reports whether the two circles overlap.
func (c BoundingCircle2D) IntersectsCircle(o BoundingCircle2D) bool {
	return c.Center.Sub(o.Center).Length() < float64(c.Radius+o.Radius)
}
