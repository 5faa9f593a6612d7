package model

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/swordplay/curve"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

// Read-only helpers for renderers

// TrailFade is how far a trail sample has faded: 0 while younger than fade_time,
// easing to 1 at trail_time
func (m *Model) TrailFade(s history.Sample) float64 {
	span := m.Config.Cursor.TrailTime - m.Config.Cursor.FadeTime
	age := max(m.RealTime-s.Time-m.Config.Cursor.FadeTime, 0)
	if span <= 0 {
		if age > 0 {
			return 1
		}
		return 0
	}
	return vmath.Smoothstep(age / span)
}

// WeaponAngle orients the blade along the tip offset, turned while defending
func (m *Model) WeaponAngle() float64 {
	w := m.Player.Weapon
	angle := w.Position.Angle()
	if intent, ok := w.Action.Tag(); ok && intent == weapon.IntentDefend {
		angle += vmath.Radians(parameter.DefendAngleOffsetDeg)
	}
	return vmath.NormalizeAngle(angle)
}

// Arc returns the active swing's player-relative arc
func (m *Model) Arc() (curve.Parabola, bool) {
	w := m.Player.Weapon
	if !w.Action.Swinging() {
		return curve.Parabola{}, false
	}
	return w.Action.Swing.Arc, true
}

// CursorWorld is the cursor in world space
func (m *Model) CursorWorld() vmath.Vec2 {
	return m.Player.Position.Add(m.Player.Cursor.Position)
}

// TipWorld is the weapon tip in world space
func (m *Model) TipWorld() vmath.Vec2 {
	return m.Player.Position.Add(m.Player.Weapon.Position)
}

// PointerDelta converts a raw pointer delta in pixels (y up) to world units
// for a view viewHeight pixels tall
func (m *Model) PointerDelta(pixels vmath.Vec2, viewHeight float64) vmath.Vec2 {
	if viewHeight <= 0 {
		return vmath.Zero
	}
	return pixels.Scale(parameter.CameraFov / viewHeight * m.Config.Cursor.Sensitivity)
}

// Flashing reports whether mq was hit recently enough to render highlighted
func (m *Model) Flashing(mq Mannequin) bool {
	return mq.LastSwing != uuid.Nil && m.RealTime-mq.HitTime < parameter.MannequinFlashDuration
}
