// Package model owns the simulation state: player, cursor, weapon, floating texts and targets
// It is single-threaded; callers feed events and ticks from one goroutine
package model

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/swordplay/collider"
	"github.com/lixenwraith/swordplay/config"
	"github.com/lixenwraith/swordplay/gesture"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/input"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

// Model is the whole simulation; Notices must be drained by the caller, the
// queue keeps only the newest parameter.NoticeQueueMax entries
type Model struct {
	Config   config.Config
	RealTime float64

	Player        Player
	Mannequins    []Mannequin
	FloatingTexts []FloatingText

	log     *zap.Logger
	keys    input.KeyState
	rng     *vmath.FastRand
	notices []Notice
	// Swing whose arc ran out on the latest tick
	ended *weapon.Swing
}

// Player positions are world space; Cursor and Weapon are relative to Position
type Player struct {
	Cursor        Cursor
	Position      vmath.Vec2
	Velocity      vmath.Vec2
	TargetMoveDir vmath.Vec2
	Weapon        *weapon.Control
}

type Cursor struct {
	Position vmath.Vec2
	History  *history.Buffer
	// State on the previous tick
	LastState history.State

	machine *gesture.Machine
}

// State is the current gesture state
func (c *Cursor) State() history.State {
	return c.machine.State()
}

// Mannequin is a practice target
type Mannequin struct {
	Collider collider.Collider
	// Last time the mannequin got hit
	HitTime   float64
	LastSwing uuid.UUID
}

// Option configures a Model at construction
type Option func(*Model)

// WithLogger routes classification and hit logs; default discards
func WithLogger(log *zap.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// WithKeyState enables polling of held buttons for cursor reconciliation and movement
// Without one the cursor follows Charge/Release events alone and the player never walks
func WithKeyState(keys input.KeyState) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithSeed fixes the text rotation sequence
func WithSeed(seed uint64) Option {
	return func(m *Model) {
		m.rng = vmath.NewFastRand(seed)
	}
}

// WithMannequins replaces the default target set
func WithMannequins(ms ...Mannequin) Option {
	return func(m *Model) {
		m.Mannequins = ms
	}
}

// DefaultMannequin is a square target a little up and right of the spawn point
func DefaultMannequin() Mannequin {
	return Mannequin{
		Collider: collider.FromAABB(collider.AABBAround(
			vmath.V2(parameter.MannequinX, parameter.MannequinY),
			vmath.V2(parameter.MannequinHalfSize, parameter.MannequinHalfSize),
		)),
	}
}

func New(cfg config.Config, opts ...Option) *Model {
	m := &Model{
		Config: cfg,
		Player: Player{
			Cursor: Cursor{
				History: history.NewBuffer(parameter.HistoryInitialCapacity),
				machine: gesture.NewMachine(),
			},
			Weapon: weapon.NewControl(cfg.Weapon.Reach, cfg.Weapon.Acceleration, cfg.Weapon.SpeedMax),
		},
		Mannequins: []Mannequin{DefaultMannequin()},
		log:        zap.NewNop(),
		rng:        vmath.NewFastRand(uint64(uuid.New().ID()) | 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
