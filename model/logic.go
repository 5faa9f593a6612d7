package model

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/swordplay/gesture"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/input"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/physics"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

// Update advances the simulation by dt seconds; negative or NaN dt counts as zero
func (m *Model) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	m.RealTime += dt

	m.updateTexts(dt)
	m.updateCursor()
	m.control()
	m.updatePlayer(dt)
	m.updateWeapon(dt)
}

func (m *Model) updateTexts(dt float64) {
	kept := m.FloatingTexts[:0]
	for _, t := range m.FloatingTexts {
		t.Lifetime.Tick(dt)
		if !t.Lifetime.Expired() {
			kept = append(kept, t)
		}
	}
	clear(m.FloatingTexts[len(kept):])
	m.FloatingTexts = kept
}

func (m *Model) updateCursor() {
	c := &m.Player.Cursor

	// Poll held buttons in case a press or release event was missed (e.g. focus loss)
	if m.keys != nil {
		c.machine.Reconcile(m.keys.Pressed(input.ActionAttack), m.keys.Pressed(input.ActionDefend))
	}

	if state := c.State(); state != c.LastState {
		m.checkAction()
		c.LastState = state
	}

	c.History.Prune(m.RealTime, m.Config.Cursor.TrailTime)
}

// checkAction classifies the run that just ended and launches its swing
func (m *Model) checkAction() {
	c := &m.Player.Cursor
	g, ok := gesture.Classify(c.History, c.LastState, gesture.Params{
		TrailTime: m.Config.Cursor.TrailTime,
		PowerMin:  m.Config.Weapon.PowerMin,
		PowerMax:  m.Config.Weapon.PowerMax,
	})
	if !ok {
		return
	}

	pos := m.Player.Position.Add(g.Center())
	swing := weapon.NewSwing(g.Intent, g.Power, g.Arc())
	m.Player.Weapon.Begin(swing)

	m.log.Debug(strings.ToLower(g.Label()),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("power", g.Power),
		zap.Stringer("swing", swing.ID))

	spread := parameter.TextRotationSpreadDeg
	m.FloatingTexts = append(m.FloatingTexts, FloatingText{
		Text:         fmt.Sprintf("%s %d", g.Label(), int(math.Round(g.Power))),
		Position:     pos,
		Lifetime:     NewCountdown(parameter.TextLifetime),
		InitialScale: parameter.TextInitialScale,
		Rotation:     vmath.Radians(m.rng.Range(-spread, spread)),
	})

	kind := NoticeSlash
	if g.Intent == weapon.IntentDefend {
		kind = NoticeParry
	}
	m.notify(Notice{Kind: kind, Position: pos, Power: g.Power, SwingID: swing.ID, Time: m.RealTime})
}

// control picks the weapon action from the gesture state and polls movement
func (m *Model) control() {
	c := &m.Player.Cursor
	w := m.Player.Weapon

	if !w.Action.Swinging() {
		// Charging holds the weapon where the current gesture began
		target := w.Position
		if start, ok := c.History.RunStart(c.LastState); ok {
			target = c.History.At(start).Position
		}
		switch state := c.State(); state {
		case history.StateIdle:
			w.Action = weapon.Idle(c.Position)
		default:
			intent, _ := weapon.IntentFromState(state)
			w.Action = weapon.Charging(target, intent)
		}
	}

	var dir vmath.Vec2
	if m.keys != nil {
		if m.keys.Pressed(input.ActionUp) {
			dir.Y += 1
		}
		if m.keys.Pressed(input.ActionDown) {
			dir.Y -= 1
		}
		if m.keys.Pressed(input.ActionLeft) {
			dir.X -= 1
		}
		if m.keys.Pressed(input.ActionRight) {
			dir.X += 1
		}
	}
	m.Player.TargetMoveDir = dir
}

func (m *Model) updatePlayer(dt float64) {
	p := &m.Player
	target := p.TargetMoveDir.Scale(m.Config.Player.WalkSpeed)
	p.Velocity = physics.Pursue(p.Velocity, target, m.Config.Player.Acceleration*dt)
	p.Position = physics.Integrate(p.Position, p.Velocity, dt)
}

func (m *Model) updateWeapon(dt float64) {
	w := m.Player.Weapon
	done := w.Update(dt, m.Player.Cursor.Position)
	m.ended = done
	if done != nil {
		m.log.Debug("swing end", zap.Stringer("swing", done.ID), zap.Stringer("intent", done.Intent))
		m.notify(Notice{
			Kind:     NoticeSwingEnd,
			Position: m.Player.Position.Add(w.Position),
			Power:    done.Power,
			SwingID:  done.ID,
			Time:     m.RealTime,
		})
	}
	w.Trace(m.RealTime, m.Config.Cursor.TrailTime, m.Player.Position)
}

// sweeping is the swing that moved the tip on the latest tick: the active one,
// or the one whose arc ran out on that tick
func (m *Model) sweeping() *weapon.Swing {
	if a := m.Player.Weapon.Action; a.Swinging() {
		return a.Swing
	}
	return m.ended
}

// DetectHits sweeps the weapon tip's last movement through the mannequins while an
// attack swing is active, including the tick its arc runs out; each mannequin is
// hit at most once per swing
// Returns the number of new hits
func (m *Model) DetectHits() int {
	w := m.Player.Weapon
	swing := m.sweeping()
	if swing == nil || swing.Intent != weapon.IntentAttack {
		return 0
	}
	n := w.History.Len()
	if n < 2 {
		return 0
	}
	from, to := w.History.At(n-2).World, w.History.At(n-1).World

	hits := 0
	for i := range m.Mannequins {
		mq := &m.Mannequins[i]
		if mq.LastSwing == swing.ID || !mq.Collider.IntersectsSegment(from, to) {
			continue
		}
		mq.HitTime = m.RealTime
		mq.LastSwing = swing.ID
		hits++

		m.log.Debug("hit",
			zap.Int("mannequin", i),
			zap.Float64("power", swing.Power),
			zap.Stringer("swing", swing.ID))
		m.notify(Notice{Kind: NoticeHit, Position: to, Power: swing.Power, SwingID: swing.ID, Time: m.RealTime})
	}
	return hits
}
