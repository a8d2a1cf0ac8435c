// Package geom provides the 2D value types used for movement and collision.
package geom

import "math"

// Vector2 is a 2D vector with float64 components.
// Equality is exact component-wise comparison.
type Vector2 struct {
	X float64
	Y float64
}

var (
	// Zero is the zero vector.
	Zero = Vector2{}
	// Up is the unit vector along +Y.
	Up = Vector2{X: 0, Y: 1}
	// Right is the unit vector along +X.
	Right = Vector2{X: 1, Y: 0}
)

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return v.Div(l)
}

// Equal reports whether both components are exactly equal.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}
