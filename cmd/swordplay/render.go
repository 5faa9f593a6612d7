package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swordplay/config"
	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/model"
	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

var (
	colorBg        = tcell.NewRGBColor(18, 18, 26)
	colorMannequin = tcell.NewRGBColor(150, 120, 80)
	colorFlash     = tcell.NewRGBColor(255, 240, 200)
	colorPlayer    = tcell.NewRGBColor(120, 255, 120)
	colorArc       = tcell.NewRGBColor(90, 90, 110)
	colorStatus    = tcell.NewRGBColor(170, 170, 190)
)

// shade converts a palette color to a terminal color, premultiplying alpha and f
func shade(c config.Color, f float64) tcell.Color {
	k := float64(c.A) / 255 * vmath.Clamp(f, 0, 1)
	return tcell.NewRGBColor(int32(float64(c.R)*k), int32(float64(c.G)*k), int32(float64(c.B)*k))
}

func style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(colorBg).Foreground(fg)
}

func (s *Sandbox) put(cam camera, p vmath.Vec2, r rune, st tcell.Style) {
	if x, y, ok := cam.toCell(p); ok {
		s.screen.SetContent(x, y, r, nil, st)
	}
}

func (s *Sandbox) text(x, y int, str string, st tcell.Style) {
	w, h := s.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= 0 && x < w {
			s.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

// Draw renders the whole frame, back to front
func (s *Sandbox) Draw() {
	m := s.model
	cam := s.camera()
	palette := m.Config.Palette

	s.screen.SetStyle(tcell.StyleDefault.Background(colorBg))
	s.screen.Clear()

	for _, mq := range m.Mannequins {
		s.drawMannequin(cam, mq, m.Flashing(mq))
	}

	if arc, ok := m.Arc(); ok && s.showArc {
		for _, p := range arc.Chain(parameter.ArcChainResolution) {
			s.put(cam, m.Player.Position.Add(p), '·', style(colorArc))
		}
	}

	s.drawTrail(cam, m.Player.Cursor.History, '·', parameter.CursorTrailAlpha)
	s.drawTrail(cam, m.Player.Weapon.History, '•', 1)

	// Blade from the player to the tip, one glyph per half cell
	tip := m.TipWorld()
	blade := style(shade(palette.For(m.Player.Weapon.TraceState()), 1))
	glyph := bladeGlyph(m.WeaponAngle())
	steps := int(m.Player.Weapon.Position.Len()*cam.rowsPerUnit()*parameter.CellAspect*2) + 1
	for i := 1; i <= steps; i++ {
		s.put(cam, m.Player.Position.Lerp(tip, float64(i)/float64(steps)), glyph, blade)
	}
	s.put(cam, tip, '+', blade.Bold(true))

	s.put(cam, m.CursorWorld(), 'x', style(shade(palette.For(m.Player.Cursor.State()), 1)))
	s.put(cam, m.Player.Position, '@', style(colorPlayer).Bold(true))

	for _, t := range m.FloatingTexts {
		opacity := t.Opacity()
		if opacity < parameter.TextVisibleOpacity {
			continue
		}
		x, y, _ := cam.toCell(t.Position)
		st := style(shade(config.Color{R: 255, G: 255, B: 255, A: 255}, opacity)).Bold(t.Scale() > 0.5)
		s.text(x-len(t.Text)/2, y-1, t.Text, st)
	}

	s.drawStatus()
	s.screen.Show()
}

func (s *Sandbox) drawMannequin(cam camera, mq model.Mannequin, flashing bool) {
	fg := colorMannequin
	if flashing {
		fg = colorFlash
	}
	b := mq.Collider.Bounds()
	x0, y0, _ := cam.toCell(vmath.V2(b.Min.X, b.Max.Y))
	x1, y1, _ := cam.toCell(vmath.V2(b.Max.X, b.Min.Y))
	w, h := s.screen.Size()
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			s.screen.SetContent(x, y, '█', nil, style(fg))
		}
	}
}

// drawTrail draws samples oldest first so newer ones win shared cells
func (s *Sandbox) drawTrail(cam camera, buf *history.Buffer, r rune, alpha float64) {
	m := s.model
	for _, smp := range buf.All() {
		fade := m.TrailFade(smp)
		if fade >= 1 {
			continue
		}
		s.put(cam, smp.World, r, style(shade(m.Config.Palette.For(smp.State), alpha*(1-fade))))
	}
}

func (s *Sandbox) drawStatus() {
	m := s.model
	w := m.Player.Weapon
	_, h := s.screen.Size()

	status := fmt.Sprintf("gesture %-6s | weapon %-8s", m.Player.Cursor.State(), w.Action.Kind)
	if w.Action.Swinging() {
		status += fmt.Sprintf(" %s %.1f", w.Action.Swing.Intent, w.Action.Swing.Power)
	}
	status += " | arc [F1] | quit [Esc]"
	s.text(1, h-1, status, style(colorStatus))
}
