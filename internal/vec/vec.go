package vec

import "math"

// Vec2 is a 2D vector value type. Vectors are always copied, never
// aliased; there is no identity beyond component equality.
type Vec2 struct {
	X, Y float64
}

// Zero returns the additive identity.
func Zero() Vec2 { return Vec2{} }

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns k * v.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{k * v.X, k * v.Y}
}

// Length returns the Euclidean norm of v. It is never negative and is
// zero only for the zero vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
