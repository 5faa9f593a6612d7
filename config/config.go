// Package config loads the simulator's tuning and control bindings from TOML
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/swordplay/input"
	"github.com/lixenwraith/swordplay/parameter"
)

// Config is the full user-facing configuration surface
type Config struct {
	Cursor   Cursor   `toml:"cursor" json:"cursor"`
	Weapon   Weapon   `toml:"weapon" json:"weapon"`
	Player   Player   `toml:"player" json:"player"`
	Controls Controls `toml:"controls" json:"controls"`
	Palette  Palette  `toml:"palette" json:"palette"`
}

type Cursor struct {
	Sensitivity float64 `toml:"sensitivity" json:"sensitivity" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Pointer delta multiplier"`
	TrailTime   float64 `toml:"trail_time" json:"trail_time" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Seconds a cursor or weapon sample stays in history; also the time for full swing power"`
	FadeTime    float64 `toml:"fade_time" json:"fade_time" jsonschema:"minimum=0" jsonschema_description:"Seconds a trail sample stays fully opaque before fading"`
}

type Weapon struct {
	Reach        float64 `toml:"reach" json:"reach" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Maximum tip distance from the player"`
	Acceleration float64 `toml:"acceleration" json:"acceleration" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Maximum velocity change per second"`
	SpeedMax     float64 `toml:"speed_max" json:"speed_max" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Tip speed cap outside an active swing"`
	PowerMin     float64 `toml:"power_min" json:"power_min" jsonschema:"minimum=0" jsonschema_description:"Power of an instant release"`
	PowerMax     float64 `toml:"power_max" json:"power_max" jsonschema:"minimum=0" jsonschema_description:"Power of a gesture held for trail_time"`
}

type Player struct {
	WalkSpeed    float64 `toml:"walk_speed" json:"walk_speed" jsonschema:"minimum=0"`
	Acceleration float64 `toml:"acceleration" json:"acceleration" jsonschema:"exclusiveMinimum=0"`
}

// Controls lists binding strings per action: "mouse:left", "key:up" or a single character
type Controls struct {
	Attack []string `toml:"attack" json:"attack"`
	Defend []string `toml:"defend" json:"defend"`
	Up     []string `toml:"up" json:"up"`
	Down   []string `toml:"down" json:"down"`
	Left   []string `toml:"left" json:"left"`
	Right  []string `toml:"right" json:"right"`
}

// Palette colors trail and blade samples by gesture state
type Palette struct {
	Idle   Color `toml:"idle" json:"idle"`
	Attack Color `toml:"attack" json:"attack"`
	Defend Color `toml:"defend" json:"defend"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Cursor: Cursor{
			Sensitivity: 1.0,
			TrailTime:   0.5,
			FadeTime:    0.2,
		},
		Weapon: Weapon{
			Reach:        parameter.WeaponReachDefault,
			Acceleration: 60.0,
			SpeedMax:     15.0,
			PowerMin:     1.0,
			PowerMax:     10.0,
		},
		Player: Player{
			WalkSpeed:    3.0,
			Acceleration: 20.0,
		},
		Controls: Controls{
			Attack: []string{"mouse:left", "j"},
			Defend: []string{"mouse:right", "k"},
			Up:     []string{"w", "key:up"},
			Down:   []string{"s", "key:down"},
			Left:   []string{"a", "key:left"},
			Right:  []string{"d", "key:right"},
		},
		Palette: Palette{
			Idle:   Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Attack: Color{R: 0xff, G: 0x40, B: 0x40, A: 0xff},
			Defend: Color{R: 0x40, G: 0x80, B: 0xff, A: 0xff},
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML over the defaults and validates the result
// Unknown keys are rejected so typos surface instead of silently keeping defaults
func Decode(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes c as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every out-of-range value and unparsable binding
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %g", name, v))
		}
	}

	positive("cursor.sensitivity", c.Cursor.Sensitivity)
	positive("cursor.trail_time", c.Cursor.TrailTime)
	nonNegative("cursor.fade_time", c.Cursor.FadeTime)
	if c.Cursor.FadeTime >= c.Cursor.TrailTime {
		errs = append(errs, fmt.Errorf("cursor.fade_time (%g) must be < cursor.trail_time (%g)", c.Cursor.FadeTime, c.Cursor.TrailTime))
	}

	positive("weapon.reach", c.Weapon.Reach)
	positive("weapon.acceleration", c.Weapon.Acceleration)
	positive("weapon.speed_max", c.Weapon.SpeedMax)
	nonNegative("weapon.power_min", c.Weapon.PowerMin)
	if c.Weapon.PowerMax < c.Weapon.PowerMin {
		errs = append(errs, fmt.Errorf("weapon.power_max (%g) must be >= weapon.power_min (%g)", c.Weapon.PowerMax, c.Weapon.PowerMin))
	}

	nonNegative("player.walk_speed", c.Player.WalkSpeed)
	positive("player.acceleration", c.Player.Acceleration)

	if _, err := c.Controls.Keymap(); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}

	return errors.Join(errs...)
}

// Keymap parses the binding strings
func (c Controls) Keymap() (input.Keymap, error) {
	return input.ParseKeymap(c.byName())
}

func (c Controls) byName() map[string][]string {
	return map[string][]string{
		input.ActionAttack.String(): c.Attack,
		input.ActionDefend.String(): c.Defend,
		input.ActionUp.String():     c.Up,
		input.ActionDown.String():   c.Down,
		input.ActionLeft.String():   c.Left,
		input.ActionRight.String():  c.Right,
	}
}
