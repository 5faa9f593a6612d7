package vmath

import "math"

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates from a to b by t (unclamped)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic Hermite ease 3t²-2t³ over t clamped to [0, 1]
func Smoothstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle wraps angle to [-π, π)
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle - math.Pi
}
