// Package physics holds the pursuit and integration steps shared by the weapon and player
package physics

import "github.com/lixenwraith/swordplay/vmath"

// Pursue steps velocity toward targetVel with the change capped at maxDelta
// This is acceleration-limited pursuit: pass acceleration·dt as maxDelta
func Pursue(velocity, targetVel vmath.Vec2, maxDelta float64) vmath.Vec2 {
	return velocity.Add(targetVel.Sub(velocity).ClampLen(maxDelta))
}

// Chase returns the target velocity of a proportional pursuit toward target
// ((target - position) · gain) limited to speedMax
func Chase(position, target vmath.Vec2, gain, speedMax float64) vmath.Vec2 {
	return target.Sub(position).Scale(gain).ClampLen(speedMax)
}

// Integrate advances position by velocity over dt
func Integrate(position, velocity vmath.Vec2, dt float64) vmath.Vec2 {
	return position.Add(velocity.Scale(dt))
}

// IntegrateClamped advances position and keeps it within reach of the origin
func IntegrateClamped(position, velocity vmath.Vec2, dt, reach float64) vmath.Vec2 {
	return Integrate(position, velocity, dt).ClampLen(reach)
}

// ApplyImpulse adds an instantaneous velocity change and caps the result at speedMax
func ApplyImpulse(velocity, impulse vmath.Vec2, speedMax float64) vmath.Vec2 {
	return velocity.Add(impulse).ClampLen(speedMax)
}
