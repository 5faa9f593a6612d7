package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/swordplay/audio"
	"github.com/lixenwraith/swordplay/config"
	"github.com/lixenwraith/swordplay/input"
	"github.com/lixenwraith/swordplay/model"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/weapon"
)

// tcellKeys maps terminal keys onto backend-neutral binding keys
var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
}

var tcellButtons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button2, input.MouseRight},
	{tcell.Button3, input.MouseMiddle},
}

// Sandbox drives one model from a tcell screen
type Sandbox struct {
	screen  tcell.Screen
	model   *model.Model
	held    *input.Held
	keymap  input.Keymap
	cues    *audio.Cues
	log     *zap.Logger
	buttons tcell.ButtonMask

	mouseX, mouseY int
	mouseSeen      bool
	showArc        bool
}

// NewSandbox wires a model whose held keys come from screen events; cues may be nil
func NewSandbox(screen tcell.Screen, cfg config.Config, keymap input.Keymap, cues *audio.Cues, log *zap.Logger) *Sandbox {
	if log == nil {
		log = zap.NewNop()
	}
	held := input.NewHeld()
	return &Sandbox{
		screen: screen,
		held:   held,
		keymap: keymap,
		cues:   cues,
		log:    log,
		model:  model.New(cfg, model.WithLogger(log.Named("model")), model.WithKeyState(held)),
	}
}

func (s *Sandbox) Model() *model.Model {
	return s.model
}

func (s *Sandbox) camera() camera {
	w, h := s.screen.Size()
	return camera{width: w, height: h, center: s.model.Player.Position}
}

// HandleEvent applies one terminal event; false means quit
func (s *Sandbox) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyF1:
		s.showArc = !s.showArc
		return true
	}
	if b, ok := keyBinding(key, r); ok {
		for _, a := range s.keymap.Lookup(b) {
			s.held.Tap(a, parameter.KeyHoldDuration)
		}
	}
	return true
}

func keyBinding(key tcell.Key, r rune) (input.Binding, bool) {
	if key == tcell.KeyRune {
		if r == ' ' {
			return input.KeyBinding(input.KeySpace), true
		}
		return input.RuneBinding(r), true
	}
	k, ok := tcellKeys[key]
	if !ok {
		return input.Binding{}, false
	}
	return input.KeyBinding(k), true
}

func (s *Sandbox) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if s.mouseSeen && (x != s.mouseX || y != s.mouseY) {
		cam := s.camera()
		delta := s.model.PointerDelta(cam.pointerPixels(x-s.mouseX, y-s.mouseY), cam.viewPixels())
		s.model.HandleEvent(model.CursorMove(delta))
	}
	s.mouseX, s.mouseY, s.mouseSeen = x, y, true

	cur := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	changed := cur ^ s.buttons
	s.buttons = cur
	for _, tb := range tcellButtons {
		if changed&tb.mask == 0 {
			continue
		}
		down := cur&tb.mask != 0
		for _, a := range s.keymap.Lookup(input.MouseBinding(tb.button)) {
			s.setHeld(a, down)
		}
	}
}

// setHeld tracks a button-bound action and forwards gesture edges to the model
func (s *Sandbox) setHeld(a input.Action, down bool) {
	if down {
		s.held.Press(a)
	} else {
		s.held.Release(a)
	}

	var intent weapon.Intent
	switch a {
	case input.ActionAttack:
		intent = weapon.IntentAttack
	case input.ActionDefend:
		intent = weapon.IntentDefend
	default:
		return
	}
	if down {
		s.model.HandleEvent(model.Charge(intent))
	} else {
		s.model.HandleEvent(model.Release(intent))
	}
}

// Tick advances the simulation by dt, voices its notices and redraws
func (s *Sandbox) Tick(dt float64) {
	m := s.model
	s.held.Advance(m.RealTime)
	m.Update(dt)
	m.DetectHits()

	notices := m.Notices()
	for _, n := range notices {
		s.log.Debug("notice",
			zap.Stringer("kind", n.Kind),
			zap.Float64("power", n.Power),
			zap.Stringer("swing", n.SwingID),
		)
	}
	if s.cues != nil {
		s.cues.PlayAll(notices)
	}

	s.Draw()
}
