package main

import (
	"math"

	"github.com/lixenwraith/swordplay/parameter"
	"github.com/lixenwraith/swordplay/vmath"
)

// camera maps world units (y up) onto terminal cells (y down), centered on a point
type camera struct {
	width, height int
	center        vmath.Vec2
}

func (c camera) rowsPerUnit() float64 {
	return float64(c.height) / parameter.CameraFov
}

// toCell returns the cell containing p and whether it is on screen
func (c camera) toCell(p vmath.Vec2) (int, int, bool) {
	d := p.Sub(c.center)
	k := c.rowsPerUnit()
	x := int(math.Round(float64(c.width)/2 + d.X*k*parameter.CellAspect))
	y := int(math.Round(float64(c.height)/2 - d.Y*k))
	return x, y, x >= 0 && x < c.width && y >= 0 && y < c.height
}

// pointerPixels expresses a cell delta in half-row units with y up, the square
// "pixel" PointerDelta expects; viewPixels is the matching view height
func (c camera) pointerPixels(dx, dy int) vmath.Vec2 {
	return vmath.V2(float64(dx), -float64(dy)*parameter.CellAspect)
}

func (c camera) viewPixels() float64 {
	return float64(c.height) * parameter.CellAspect
}

// bladeGlyph picks a line character for a world angle (y up)
func bladeGlyph(angle float64) rune {
	deg := vmath.Degrees(vmath.NormalizeAngle(angle))
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '-'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '|'
	default:
		return '\\'
	}
}
