// Package vmath provides float 2D vectors, scalar easing and polynomial roots
package vmath

import "math"

// Vec2 is a float64 2D vector used for all simulation positions and velocities
type Vec2 struct {
	X, Y float64
}

// Zero is the origin
var Zero = Vec2{}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len uses math.Hypot for stability on large and tiny components
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Normalize returns a unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// ClampLen limits vector length to maxLen while preserving direction
// Returns unchanged vector if length <= maxLen; negative maxLen clamps to zero
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	if maxLen <= 0 {
		return Vec2{}
	}
	magSq := v.LenSq()
	if magSq <= maxLen*maxLen {
		return v
	}
	return v.Scale(maxLen / math.Sqrt(magSq))
}

// Angle returns the direction in radians, [-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp interpolates from v to o by t (unclamped)
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Midpoint returns the point halfway between v and o
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// IsFinite reports whether both components are neither NaN nor infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ApproxEqual compares component-wise within tolerance
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}
