package model

import (
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

// EventType discriminates input events
type EventType uint8

const (
	EventCursorMove EventType = iota // Delta is valid
	EventCharge                      // Intent is valid
	EventRelease                     // Intent is valid
)

// Event is one input delivered by the collaborator
type Event struct {
	Type   EventType
	Delta  vmath.Vec2 // World units, sensitivity already applied
	Intent weapon.Intent
}

func CursorMove(delta vmath.Vec2) Event {
	return Event{Type: EventCursorMove, Delta: delta}
}

func Charge(intent weapon.Intent) Event {
	return Event{Type: EventCharge, Intent: intent}
}

func Release(intent weapon.Intent) Event {
	return Event{Type: EventRelease, Intent: intent}
}

// HandleEvent applies one input event
// State changes are classified on the next Update, not here
func (m *Model) HandleEvent(e Event) {
	c := &m.Player.Cursor
	switch e.Type {
	case EventCursorMove:
		if !e.Delta.IsFinite() {
			return
		}
		c.Position = c.Position.Add(e.Delta).ClampLen(m.Player.Weapon.Reach)
		c.History.Append(history.Sample{
			Position: c.Position,
			World:    m.Player.Position.Add(c.Position),
			Time:     m.RealTime,
			State:    c.State(),
		})
	case EventCharge:
		c.machine.Charge(e.Intent)
	case EventRelease:
		c.machine.Release(e.Intent)
	}
}
