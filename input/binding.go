package input

import (
	"fmt"
	"strings"
)

// Source discriminates what physical input a binding listens to
type Source uint8

const (
	SourceNone  Source = iota // Unbound
	SourceKey                 // Named special key
	SourceRune                // Printable character
	SourceMouse               // Mouse button
)

// Key is a named non-printable key, independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
)

// MouseButton identifies a pointer button
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
}

var buttonToName = map[MouseButton]string{
	MouseLeft:   "left",
	MouseRight:  "right",
	MouseMiddle: "middle",
}

var (
	nameToKey    map[string]Key
	nameToButton map[string]MouseButton
)

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter

	nameToButton = make(map[string]MouseButton, len(buttonToName))
	for b, v := range buttonToName {
		nameToButton[v] = b
	}
	nameToButton["primary"] = MouseLeft
	nameToButton["secondary"] = MouseRight
}

// KeyByName resolves a canonical name to a Key constant
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// Binding is one physical trigger for an action
type Binding struct {
	Source Source
	Key    Key
	Rune   rune
	Button MouseButton
}

// KeyBinding, RuneBinding and MouseBinding build bindings without parsing
func KeyBinding(k Key) Binding           { return Binding{Source: SourceKey, Key: k} }
func RuneBinding(r rune) Binding         { return Binding{Source: SourceRune, Rune: r} }
func MouseBinding(b MouseButton) Binding { return Binding{Source: SourceMouse, Button: b} }

// ParseBinding accepts "mouse:<button>", "key:<name>" or a single character
func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if prefix, name, ok := strings.Cut(s, ":"); ok && len(s) > 1 {
		name = strings.ToLower(name)
		switch strings.ToLower(prefix) {
		case "mouse":
			b, ok := nameToButton[name]
			if !ok {
				return Binding{}, fmt.Errorf("unknown mouse button: %q", name)
			}
			return MouseBinding(b), nil
		case "key":
			k, ok := nameToKey[name]
			if !ok {
				return Binding{}, fmt.Errorf("unknown key name: %q", name)
			}
			return KeyBinding(k), nil
		default:
			return Binding{}, fmt.Errorf("unknown binding source: %q", prefix)
		}
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return RuneBinding(runes[0]), nil
	}
	return Binding{}, fmt.Errorf("invalid binding: %q (expected single character, key:<name> or mouse:<button>)", s)
}

func (b Binding) String() string {
	switch b.Source {
	case SourceKey:
		return "key:" + keyToName[b.Key]
	case SourceRune:
		return string(b.Rune)
	case SourceMouse:
		return "mouse:" + buttonToName[b.Button]
	default:
		return ""
	}
}

// Keymap resolves physical bindings to the actions they drive
// A binding may drive more than one action
type Keymap map[Binding][]Action

// ParseKeymap builds a Keymap from action name → binding strings
// Returns error on unknown action names or invalid bindings
func ParseKeymap(raw map[string][]string) (Keymap, error) {
	km := make(Keymap)
	for name, specs := range raw {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", name)
		}
		for _, spec := range specs {
			b, err := ParseBinding(spec)
			if err != nil {
				return nil, fmt.Errorf("[%s] %w", name, err)
			}
			km.Bind(b, action)
		}
	}
	return km, nil
}

// Bind adds action to b, ignoring duplicates
func (km Keymap) Bind(b Binding, action Action) {
	for _, a := range km[b] {
		if a == action {
			return
		}
	}
	km[b] = append(km[b], action)
}

// Lookup returns the actions driven by b
func (km Keymap) Lookup(b Binding) []Action {
	return km[b]
}
