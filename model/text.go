package model

import (
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

// Countdown is a value bounded to [0, Max]
type Countdown struct {
	Value float64
	Max   float64
}

// NewCountdown starts full
func NewCountdown(limit float64) Countdown {
	return Countdown{Value: limit, Max: limit}
}

// Tick subtracts dt, stopping at zero
func (c *Countdown) Tick(dt float64) {
	c.Value = vmath.Clamp(c.Value-dt, 0, c.Max)
}

func (c Countdown) Expired() bool {
	return c.Value <= 0
}

// Ratio is remaining / max: 1 when fresh, 0 when expired
func (c Countdown) Ratio() float64 {
	if c.Max <= 0 {
		return 0
	}
	return c.Value / c.Max
}

// FloatingText is a short-lived label; purely cosmetic
type FloatingText struct {
	Text         string
	Position     vmath.Vec2 // World space
	Lifetime     Countdown
	InitialScale float64
	Rotation     float64 // Radians
}

// Opacity eases from 1 to 0 over the lifetime
func (t FloatingText) Opacity() float64 {
	return vmath.Smoothstep(t.Lifetime.Ratio())
}

// Scale shrinks from InitialScale to 0 over the lifetime
func (t FloatingText) Scale() float64 {
	return t.InitialScale * vmath.Smoothstep(t.Lifetime.Ratio())
}

// NoticeKind tags a Notice
type NoticeKind uint8

const (
	NoticeSlash    NoticeKind = iota // Attack swing started
	NoticeParry                      // Defend swing started
	NoticeSwingEnd                   // Arc exhausted
	NoticeHit                        // Attack swing crossed a mannequin
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSlash:
		return "slash"
	case NoticeParry:
		return "parry"
	case NoticeSwingEnd:
		return "swing_end"
	case NoticeHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Notice reports a discrete simulation occurrence to collaborators (audio, logs)
type Notice struct {
	Kind     NoticeKind
	Position vmath.Vec2 // World space
	Power    float64
	SwingID  uuid.UUID
	Time     float64
}

// notify queues n, dropping the oldest notice once the queue is full
func (m *Model) notify(n Notice) {
	if len(m.notices) >= parameter.NoticeQueueMax {
		m.notices = slices.Delete(m.notices, 0, len(m.notices)-parameter.NoticeQueueMax+1)
	}
	m.notices = append(m.notices, n)
}

// Notices drains the queued notices in emission order
func (m *Model) Notices() []Notice {
	out := m.notices
	m.notices = nil
	return out
}
