package input

import "math"

// Held tracks which actions are down
// Terminals report key presses without releases, so key bindings are held for a
// short window after each press (Tap) while mouse buttons are held until released
type Held struct {
	until map[Action]float64 // Expiry time, +Inf while explicitly pressed
	now   float64
}

func NewHeld() *Held {
	return &Held{until: make(map[Action]float64)}
}

// Press holds a until Release
func (h *Held) Press(a Action) {
	h.until[a] = math.Inf(1)
}

// Tap holds a for duration seconds from the current time; repeats extend the window
func (h *Held) Tap(a Action, duration float64) {
	expiry := h.now + duration
	if cur, ok := h.until[a]; ok && cur >= expiry {
		return
	}
	h.until[a] = expiry
}

func (h *Held) Release(a Action) {
	delete(h.until, a)
}

// Advance moves the clock and drops expired taps
func (h *Held) Advance(now float64) {
	h.now = now
	for a, t := range h.until {
		if t <= now {
			delete(h.until, a)
		}
	}
}

// Pressed implements KeyState
func (h *Held) Pressed(a Action) bool {
	t, ok := h.until[a]
	return ok && t > h.now
}
