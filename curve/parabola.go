// Package curve fits the parabolic swing arc and answers closest-point queries on it
package curve

import (
	"math"

	"github.com/lixenwraith/swordplay/vmath"
)

// tieTolerance treats squared distances this close (relative) as equal
const tieTolerance = 1e-9

// Parabola is f(t) = A·t² + B·t + C, parameterized so f(-1), f(0), f(1) are the fitted points
type Parabola struct {
	A, B, C vmath.Vec2
}

// Fit solves f(-1)=p0 (start), f(0)=p1 (middle), f(1)=p2 (end)
//
//	a - b + c = p0
//	        c = p1
//	a + b + c = p2
func Fit(p0, p1, p2 vmath.Vec2) Parabola {
	c := p1
	return Parabola{
		A: p2.Add(p0).Scale(0.5).Sub(c),
		B: p2.Sub(p0).Scale(0.5),
		C: c,
	}
}

// At evaluates the curve
func (p Parabola) At(t float64) vmath.Vec2 {
	return p.A.Scale(t * t).Add(p.B.Scale(t)).Add(p.C)
}

// Tangent is the first derivative 2A·t + B (not normalized)
func (p Parabola) Tangent(t float64) vmath.Vec2 {
	return p.A.Scale(2 * t).Add(p.B)
}

// Degenerate reports whether all three fitted points coincide
func (p Parabola) Degenerate() bool {
	return p.A == vmath.Zero && p.B == vmath.Zero
}

// Project returns the parameter of the closest point on the curve to point
// Among equally close candidates the smallest t wins
// Always finite: a fully degenerate curve (single point) projects to 0
func (p Parabola) Project(point vmath.Vec2) float64 {
	best, bestDist := 0.0, math.Inf(1)
	for _, t := range p.NormalsFrom(point) {
		// Roots come sorted ascending; a later root must be strictly closer to win
		if d := p.At(t).DistSq(point); bestDist-d > tieTolerance*math.Max(1, d) {
			best, bestDist = t, d
		}
	}
	return best
}

// NormalsFrom returns every t where point - f(t) is perpendicular to the tangent
//
// d/dt |f(t) - point|² = 0 expands to the cubic
//
//	2|A|²·t³ + 3(A·B)·t² + (2A·C + |B|² - 2A·point)·t + (B·C - B·point) = 0
//
// With A = 0 (straight segment) it reduces to the linear projection onto B
func (p Parabola) NormalsFrom(point vmath.Vec2) []float64 {
	a := 2 * p.A.LenSq()
	b := 3 * p.A.Dot(p.B)
	c := 2*p.A.Dot(p.C) + p.B.LenSq() - 2*p.A.Dot(point)
	d := p.B.Dot(p.C) - p.B.Dot(point)
	return vmath.SolveCubic(a, b, c, d)
}

// Chain samples the arc over t ∈ [-1, 1] with resolution segments for debug overlays
func (p Parabola) Chain(resolution int) []vmath.Vec2 {
	if resolution < 1 {
		resolution = 1
	}
	vertices := make([]vmath.Vec2, 0, resolution+1)
	step := 2.0 / float64(resolution)
	for i := 0; i <= resolution; i++ {
		vertices = append(vertices, p.At(-1+step*float64(i)))
	}
	return vertices
}
