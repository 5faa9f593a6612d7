package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordplay/vmath"
)

func assertVec(t *testing.T, want, got vmath.Vec2, tol float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
}

func TestFitInterpolatesPoints(t *testing.T) {
	triples := [][3]vmath.Vec2{
		{vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(1, 0)},
		{vmath.V2(0.3, -1.2), vmath.V2(1.7, 0.4), vmath.V2(-0.5, 1.9)},
		{vmath.V2(0, 0), vmath.V2(1, 0), vmath.V2(2, 0)},
		{vmath.V2(5, 5), vmath.V2(5, 5), vmath.V2(5, 5)},
		{vmath.V2(1e3, -2e3), vmath.V2(-4e2, 7), vmath.V2(3, 3)},
	}
	for _, pts := range triples {
		arc := Fit(pts[0], pts[1], pts[2])
		assertVec(t, pts[0], arc.At(-1), 1e-9)
		assertVec(t, pts[1], arc.At(0), 1e-9)
		assertVec(t, pts[2], arc.At(1), 1e-9)
	}
}

func TestTangentIsDerivative(t *testing.T) {
	arc := Fit(vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(1, 0))
	const h = 1e-6
	for _, tt := range []float64{-1, -0.3, 0, 0.5, 1.2} {
		numeric := arc.At(tt + h).Sub(arc.At(tt - h)).Scale(1 / (2 * h))
		assertVec(t, numeric, arc.Tangent(tt), 1e-6)
	}
}

func TestProjectRecoversParameter(t *testing.T) {
	arcs := []Parabola{
		Fit(vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(1, 0)),
		Fit(vmath.V2(-0.8, -0.4), vmath.V2(0.2, 0.9), vmath.V2(1.1, 0.3)),
		Fit(vmath.V2(1.5, 0), vmath.V2(0, 1.5), vmath.V2(-1.5, 0)),
	}
	for i, arc := range arcs {
		for _, t0 := range []float64{-1, -0.6, -0.1, 0, 0.25, 0.8, 1, 1.3} {
			got := arc.Project(arc.At(t0))
			assert.InDelta(t, t0, got, 1e-6, "arc %d t0 %f", i, t0)
		}
	}
}

func TestProjectOffCurvePoint(t *testing.T) {
	// f(t) = (t, 1 - t²); a point above the vertex projects onto the vertex
	arc := Fit(vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(1, 0))
	assert.InDelta(t, 0, arc.Project(vmath.V2(0, 3)), 1e-9)

	// Far outside the end point the projection runs past 1
	assert.Greater(t, arc.Project(vmath.V2(3, -5)), 1.0)
}

func TestProjectTieBreaksToSmallestT(t *testing.T) {
	// f(t) = (t, t²); (0, 5) is equidistant from t = ±√4.5
	arc := Fit(vmath.V2(-1, 1), vmath.V2(0, 0), vmath.V2(1, 1))
	roots := arc.NormalsFrom(vmath.V2(0, 5))
	require.Len(t, roots, 3)
	assert.InDelta(t, -math.Sqrt(4.5), arc.Project(vmath.V2(0, 5)), 1e-9)
}

func TestProjectDegenerate(t *testing.T) {
	t.Run("straight segment", func(t *testing.T) {
		arc := Fit(vmath.V2(0, 0), vmath.V2(1, 0), vmath.V2(2, 0))
		assert.Equal(t, vmath.Zero, arc.A)
		assert.InDelta(t, 0.5, arc.Project(vmath.V2(1.5, 3)), 1e-12)
		assert.InDelta(t, 4, arc.Project(vmath.V2(5, -1)), 1e-12)
	})

	t.Run("coincident points", func(t *testing.T) {
		arc := Fit(vmath.V2(2, 2), vmath.V2(2, 2), vmath.V2(2, 2))
		assert.True(t, arc.Degenerate())
		assert.NotPanics(t, func() {
			assert.Equal(t, 0.0, arc.Project(vmath.V2(-3, 4)))
		})
	})

	t.Run("two coincident points", func(t *testing.T) {
		arc := Fit(vmath.V2(0, 0), vmath.V2(0, 0), vmath.V2(1, 1))
		got := arc.Project(vmath.V2(1, 1))
		assert.False(t, math.IsNaN(got))
		assertVec(t, vmath.V2(1, 1), arc.At(got), 1e-6)
	})

	t.Run("near-zero curvature", func(t *testing.T) {
		arc := Fit(vmath.V2(0, 0), vmath.V2(1, 1e-13), vmath.V2(2, 0))
		got := arc.Project(vmath.V2(1.5, 0.2))
		assert.InDelta(t, 0.5, got, 1e-6)
	})
}

func TestChain(t *testing.T) {
	arc := Fit(vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(1, 0))
	chain := arc.Chain(50)
	require.Len(t, chain, 51)
	assertVec(t, vmath.V2(-1, 0), chain[0], 1e-12)
	assertVec(t, vmath.V2(0, 1), chain[25], 1e-12)
	assertVec(t, vmath.V2(1, 0), chain[50], 1e-12)
}
