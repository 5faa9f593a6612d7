package input

// Action is a logical control the simulation polls or receives
type Action uint8

const (
	ActionNone Action = iota
	ActionAttack
	ActionDefend
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// Actions lists every bindable action in config order
var Actions = []Action{ActionAttack, ActionDefend, ActionUp, ActionDown, ActionLeft, ActionRight}

// actionToName maps actions to canonical config names
var actionToName = map[Action]string{
	ActionAttack: "attack",
	ActionDefend: "defend",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionLeft:   "left",
	ActionRight:  "right",
}

// nameToAction is the reverse lookup, built from actionToName
var nameToAction map[string]Action

func init() {
	nameToAction = make(map[string]Action, len(actionToName))
	for a, n := range actionToName {
		nameToAction[n] = a
	}
}

func (a Action) String() string {
	if n, ok := actionToName[a]; ok {
		return n
	}
	return "none"
}

// ActionByName resolves a canonical name
func ActionByName(name string) (Action, bool) {
	a, ok := nameToAction[name]
	return a, ok
}

// KeyState is the polled button capability the model reads every tick
type KeyState interface {
	Pressed(Action) bool
}

// NoKeys reports every action released
type NoKeys struct{}

func (NoKeys) Pressed(Action) bool { return false }

// KeyStateFunc adapts a function to KeyState
type KeyStateFunc func(Action) bool

func (f KeyStateFunc) Pressed(a Action) bool { return f(a) }
