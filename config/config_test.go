package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordplay/input"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEncodeDecodeDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	got, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`
[weapon]
reach = 3.5

[controls]
attack = ["mouse:middle"]

[palette]
attack = "#00ff00"
`))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 3.5, cfg.Weapon.Reach)
	assert.Equal(t, def.Weapon.SpeedMax, cfg.Weapon.SpeedMax)
	assert.Equal(t, def.Cursor, cfg.Cursor)
	assert.Equal(t, []string{"mouse:middle"}, cfg.Controls.Attack)
	assert.Equal(t, def.Controls.Defend, cfg.Controls.Defend)
	assert.Equal(t, Color{R: 0, G: 0xff, B: 0, A: 0xff}, cfg.Palette.Attack)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"syntax", "[weapon\nreach = 1", "parse"},
		{"unknown key", "[weapon]\nrech = 1", "weapon.rech"},
		{"negative reach", "[weapon]\nreach = -1", "weapon.reach"},
		{"fade past trail", "[cursor]\nfade_time = 0.9", "cursor.fade_time"},
		{"power order", "[weapon]\npower_min = 5\npower_max = 2", "weapon.power_max"},
		{"bad binding", "[controls]\nup = [\"key:nowhere\"]", "controls"},
		{"bad color", "[palette]\nidle = \"white\"", "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Weapon.Reach = 0
	cfg.Player.Acceleration = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weapon.reach")
	assert.Contains(t, err.Error(), "player.acceleration")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swordplay.toml")
	require.NoError(t, os.WriteFile(path, []byte("[player]\nwalk_speed = 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Player.WalkSpeed)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "missing.toml")
}

func TestControlsKeymap(t *testing.T) {
	km, err := Default().Controls.Keymap()
	require.NoError(t, err)
	assert.Equal(t, []input.Action{input.ActionAttack}, km.Lookup(input.MouseBinding(input.MouseLeft)))
	assert.Equal(t, []input.Action{input.ActionDefend}, km.Lookup(input.RuneBinding('k')))
	assert.Equal(t, []input.Action{input.ActionUp}, km.Lookup(input.KeyBinding(input.KeyUp)))
}

func TestColor(t *testing.T) {
	c, err := ParseColor("#4080ff")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x40, G: 0x80, B: 0xff, A: 0xff}, c)
	assert.Equal(t, "#4080ffff", c.String())
	assert.Equal(t, int32(0x4080ff), c.RGB32())
	assert.Equal(t, uint8(0x80), c.Scale(0.5).A)
	assert.Equal(t, uint8(0), c.Scale(-1).A)

	for _, bad := range []string{"4080ff", "#4080f", "#zz80ffff", ""} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"cursor", "weapon", "player", "controls", "palette"} {
		assert.Contains(t, props, key)
	}

	palette := props["palette"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "string", palette["idle"].(map[string]any)["type"])
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvPath+"=from-dotenv.toml\n"), 0o644))
	t.Setenv(EnvPath, "")

	p, err := ResolvePath("flag.toml", envFile)
	require.NoError(t, err)
	assert.Equal(t, "flag.toml", p)

	p, err = ResolvePath("", filepath.Join(dir, "absent.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.toml", p)

	t.Setenv(EnvPath, "from-env.toml")
	p, err = ResolvePath("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env.toml", p)

	t.Setenv(EnvPath, "")
	p, err = ResolvePath("", filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
	assert.Empty(t, p)
}
