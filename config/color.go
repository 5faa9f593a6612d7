package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/lixenwraith/swordplay/history"
)

// Color is an 8-bit RGBA color written as "#rrggbb" or "#rrggbbaa"
type Color struct {
	R, G, B, A uint8
}

// ParseColor accepts "#rrggbb" (opaque) and "#rrggbbaa"
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Scale multiplies alpha by f in [0, 1]
func (c Color) Scale(f float64) Color {
	f = min(max(f, 0), 1)
	c.A = uint8(float64(c.A)*f + 0.5)
	return c
}

// RGB32 packs red, green, blue as 0xRRGGBB
func (c Color) RGB32() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// JSONSchema describes the text form instead of the struct layout
func (Color) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     "^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$",
		Description: "RGB or RGBA hex color",
	}
}

// For picks the trail tint of a gesture state
func (p Palette) For(s history.State) Color {
	switch s {
	case history.StateAttack:
		return p.Attack
	case history.StateDefend:
		return p.Defend
	default:
		return p.Idle
	}
}
