// Package gesture tracks the cursor's charge state and classifies finished gestures
package gesture

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/weapon"
)

// FSM state and event names
const (
	stateIdle   = "idle"
	stateAttack = "attack"
	stateDefend = "defend"

	eventAttack  = "attack"
	eventDefend  = "defend"
	eventRelease = "release"
)

var stateByName = map[string]history.State{
	stateIdle:   history.StateIdle,
	stateAttack: history.StateAttack,
	stateDefend: history.StateDefend,
}

// Machine is the cursor gesture state: idle, or charging an attack or a defense
// Charging one intent while holding the other switches directly
type Machine struct {
	fsm *fsm.FSM
}

func NewMachine() *Machine {
	return &Machine{
		fsm: fsm.NewFSM(
			stateIdle,
			fsm.Events{
				{Name: eventAttack, Src: []string{stateIdle, stateDefend}, Dst: stateAttack},
				{Name: eventDefend, Src: []string{stateIdle, stateAttack}, Dst: stateDefend},
				{Name: eventRelease, Src: []string{stateAttack, stateDefend}, Dst: stateIdle},
			},
			fsm.Callbacks{},
		),
	}
}

// State returns the current gesture state
func (m *Machine) State() history.State {
	return stateByName[m.fsm.Current()]
}

// fire applies event when the current state allows it, reporting whether the state changed
func (m *Machine) fire(event string) bool {
	if !m.fsm.Can(event) {
		return false
	}
	return m.fsm.Event(context.Background(), event) == nil
}

// Charge starts charging intent
func (m *Machine) Charge(intent weapon.Intent) bool {
	if intent == weapon.IntentDefend {
		return m.fire(eventDefend)
	}
	return m.fire(eventAttack)
}

// Release returns to idle only if intent is the one being charged
func (m *Machine) Release(intent weapon.Intent) bool {
	if m.State() != intent.State() {
		return false
	}
	return m.fire(eventRelease)
}

// Reconcile corrects the state from polled button levels, covering missed press or release events
// Attack wins when both are held from idle
func (m *Machine) Reconcile(attackHeld, defendHeld bool) bool {
	switch m.State() {
	case history.StateIdle:
		if attackHeld {
			return m.fire(eventAttack)
		}
		if defendHeld {
			return m.fire(eventDefend)
		}
	case history.StateAttack:
		if !attackHeld {
			return m.fire(eventRelease)
		}
	case history.StateDefend:
		if !defendHeld {
			return m.fire(eventRelease)
		}
	}
	return false
}
