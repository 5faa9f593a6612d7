// Package weapon drives the weapon tip: pursuit of a target while idle or charging,
// arc following while swinging
package weapon

import (
	"github.com/lixenwraith/swordplay/curve"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/physics"
	"github.com/lixenwraith/swordplay/vmath"
)

// Control is the weapon tip's motion state, relative to the player
type Control struct {
	Position     vmath.Vec2
	Velocity     vmath.Vec2
	Reach        float64
	Acceleration float64
	SpeedMax     float64
	History      *history.Buffer
	Action       Action
}

func NewControl(reach, acceleration, speedMax float64) *Control {
	return &Control{
		Reach:        reach,
		Acceleration: acceleration,
		SpeedMax:     speedMax,
		History:      history.NewBuffer(parameter.HistoryInitialCapacity),
		Action:       Idle(vmath.Zero),
	}
}

// arcFrame projects the tip onto arc and returns the pull back onto the curve
// and the unit direction along it
func (c *Control) arcFrame(arc curve.Parabola) (t float64, normal, tangent vmath.Vec2) {
	t = arc.Project(c.Position)
	normal = arc.At(t).Sub(c.Position)
	tangent = arc.Tangent(t).Normalize()
	return t, normal, tangent
}

// Begin installs s and kicks the tip toward and along its arc
func (c *Control) Begin(s *Swing) {
	c.Action = Swinging(s)

	_, normal, tangent := c.arcFrame(s.Arc)
	boost := normal.Scale(parameter.BoostNormalGain).
		Add(tangent.Scale(parameter.BoostTangentGain * s.Power)).
		Scale(parameter.BoostGain)
	c.Velocity = physics.ApplyImpulse(c.Velocity, boost, c.SpeedMax)
}

// Update advances one tick; cursor is the player-relative cursor position
// Returns the swing that completed on this tick, if any
func (c *Control) Update(dt float64, cursor vmath.Vec2) *Swing {
	var finished *Swing
	maxDelta := c.Acceleration * dt

	switch c.Action.Kind {
	case ActionSwinging:
		s := c.Action.Swing
		t, normal, tangent := c.arcFrame(s.Arc)
		if t > parameter.SwingEndT {
			recoil := cursor.Sub(c.Position).Scale(parameter.RecoilGain * s.Power)
			c.Velocity = physics.ApplyImpulse(c.Velocity, recoil, c.SpeedMax)
			c.Action = Idle(cursor)
			finished = s
			break
		}
		targetVel := normal.Scale(parameter.SwingNormalGain).
			Add(tangent.Scale(parameter.SwingTangentGain * s.Power)).
			Scale(parameter.SwingGain).
			ClampLen(parameter.SwingSpeedFactor * c.SpeedMax)
		c.Velocity = physics.Pursue(c.Velocity, targetVel, maxDelta)

	case ActionIdle, ActionCharging:
		target := c.Action.Target.ClampLen(c.Reach)
		targetVel := physics.Chase(c.Position, target, parameter.WeaponChaseGain, c.SpeedMax)
		c.Velocity = physics.Pursue(c.Velocity, targetVel, maxDelta)
	}

	c.Position = physics.IntegrateClamped(c.Position, c.Velocity, dt, c.Reach)
	return finished
}

// TraceState is the state the next trail sample is recorded under
func (c *Control) TraceState() history.State {
	if c.Action.Swinging() {
		return c.Action.Swing.Intent.State()
	}
	return history.StateIdle
}

// Trace prunes samples older than horizon and records the current tip
func (c *Control) Trace(now, horizon float64, origin vmath.Vec2) {
	c.History.Prune(now, horizon)
	c.History.Append(history.Sample{
		Position: c.Position,
		World:    origin.Add(c.Position),
		Time:     now,
		State:    c.TraceState(),
	})
}
