package gesture

import (
	"github.com/lixenwraith/swordplay/curve"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

// Params are the config values classification depends on
type Params struct {
	TrailTime float64
	PowerMin  float64
	PowerMax  float64
}

// Gesture is a classified charge run
type Gesture struct {
	Intent weapon.Intent
	Power  float64
	Start  history.Sample
	Mid    history.Sample
	End    history.Sample
}

// Classify inspects the most recent run of samples recorded under last
// ok is false when no such run exists or last is idle
// Power scales linearly with run duration, reaching PowerMax at TrailTime
func Classify(buf *history.Buffer, last history.State, p Params) (Gesture, bool) {
	intent, ok := weapon.IntentFromState(last)
	if !ok {
		return Gesture{}, false
	}
	start, end, ok := buf.LastRun(last)
	if !ok {
		return Gesture{}, false
	}

	g := Gesture{
		Intent: intent,
		Start:  buf.At(start),
		Mid:    buf.At((start + end) / 2),
		End:    buf.At(end),
	}
	powerT := 1.0
	if p.TrailTime > 0 {
		powerT = vmath.Clamp((g.End.Time-g.Start.Time)/p.TrailTime, 0, 1)
	}
	g.Power = vmath.Lerp(p.PowerMin, p.PowerMax, powerT)
	return g, true
}

// Arc fits the swing curve through start, middle and end, player-relative
func (g Gesture) Arc() curve.Parabola {
	return curve.Fit(g.Start.Position, g.Mid.Position, g.End.Position)
}

// Label names the gesture for feedback text
func (g Gesture) Label() string {
	if g.Intent == weapon.IntentDefend {
		return "Parry"
	}
	return "Slash"
}

// Center is the player-relative midpoint of the gesture's endpoints
func (g Gesture) Center() vmath.Vec2 {
	return g.Start.Position.Midpoint(g.End.Position)
}
