package physics

import (
	"math"

	"github.com/san-kum/gravlab/internal/vec"
)

// MinDistance floors the pair separation so coincident particles do not
// produce a singular force.
const MinDistance = 1.0

// minNormal is the smallest positive normal float64 (2^-1022).
const minNormal = 0x1p-1022

// Force returns the gravitational pull on a due to b for gravitational
// constant g. By Newton's third law the negated vector is the pull on b
// due to a.
//
// The magnitude is g/d³ with d floored at MinDistance. A magnitude that
// is not a normal float (zero, subnormal, Inf, or NaN) yields the zero
// vector instead, so underflow at extreme separations or a pathological
// g never leaks a NaN into the accumulators.
func Force(a, b vec.Vec2, g float64) vec.Vec2 {
	r := b.Sub(a)
	d := math.Max(r.Length(), MinDistance)
	mag := g / (d * d * d)
	if !isNormal(mag) {
		return vec.Zero()
	}
	return r.Scale(mag)
}

// isNormal reports whether f is a normal finite float: not zero, not
// subnormal, not Inf, not NaN.
func isNormal(f float64) bool {
	return math.Abs(f) >= minNormal && !math.IsInf(f, 0)
}
