package weapon

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/swordplay/curve"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/vmath"
)

// Intent is what a gesture is for
type Intent uint8

const (
	IntentAttack Intent = iota
	IntentDefend
)

func (i Intent) String() string {
	if i == IntentDefend {
		return "defend"
	}
	return "attack"
}

// State maps an intent to the gesture state its samples are recorded under
func (i Intent) State() history.State {
	if i == IntentDefend {
		return history.StateDefend
	}
	return history.StateAttack
}

// IntentFromState is the inverse of State; idle has no intent
func IntentFromState(s history.State) (Intent, bool) {
	switch s {
	case history.StateAttack:
		return IntentAttack, true
	case history.StateDefend:
		return IntentDefend, true
	default:
		return 0, false
	}
}

// Swing is an in-flight arc motion
type Swing struct {
	ID     uuid.UUID
	Intent Intent
	Power  float64
	Arc    curve.Parabola
}

func NewSwing(intent Intent, power float64, arc curve.Parabola) *Swing {
	return &Swing{
		ID:     uuid.New(),
		Intent: intent,
		Power:  power,
		Arc:    arc,
	}
}

// Kind discriminates Action variants
type Kind uint8

const (
	ActionIdle     Kind = iota // Follow Target
	ActionCharging             // Hold at Target while a gesture is drawn
	ActionSwinging             // Follow Swing.Arc
)

func (k Kind) String() string {
	switch k {
	case ActionIdle:
		return "idle"
	case ActionCharging:
		return "charging"
	case ActionSwinging:
		return "swinging"
	default:
		return "unknown"
	}
}

// Action is the weapon's current behavior
// Target is valid for Idle and Charging, Intent for Charging, Swing for Swinging
type Action struct {
	Kind   Kind
	Target vmath.Vec2
	Intent Intent
	Swing  *Swing
}

func Idle(target vmath.Vec2) Action {
	return Action{Kind: ActionIdle, Target: target}
}

func Charging(target vmath.Vec2, intent Intent) Action {
	return Action{Kind: ActionCharging, Target: target, Intent: intent}
}

func Swinging(s *Swing) Action {
	return Action{Kind: ActionSwinging, Intent: s.Intent, Swing: s}
}

func (a Action) Swinging() bool {
	return a.Kind == ActionSwinging
}

// Tag returns the intent carried by Charging and Swinging actions
func (a Action) Tag() (Intent, bool) {
	switch a.Kind {
	case ActionCharging:
		return a.Intent, true
	case ActionSwinging:
		return a.Swing.Intent, true
	default:
		return 0, false
	}
}
