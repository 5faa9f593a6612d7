package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/swordplay/vmath"
)

func TestPursueBoundsVelocityChange(t *testing.T) {
	tests := []struct {
		name      string
		vel, tgt  vmath.Vec2
		maxDelta  float64
		wantSnaps bool
	}{
		{"far target is rate limited", vmath.V2(0, 0), vmath.V2(100, 0), 1, false},
		{"close target snaps", vmath.V2(1, 1), vmath.V2(1.2, 1), 1, true},
		{"reverse direction", vmath.V2(5, 0), vmath.V2(-5, 0), 0.5, false},
		{"zero budget", vmath.V2(3, 3), vmath.V2(0, 0), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pursue(tt.vel, tt.tgt, tt.maxDelta)
			assert.LessOrEqual(t, got.Sub(tt.vel).Len(), tt.maxDelta+1e-12)
			if tt.wantSnaps {
				assert.True(t, got.ApproxEqual(tt.tgt, 1e-12))
			}
		})
	}
}

func TestPursueConverges(t *testing.T) {
	vel := vmath.Zero
	target := vmath.V2(3, -4)
	for i := 0; i < 100; i++ {
		vel = Pursue(vel, target, 0.2)
	}
	assert.True(t, vel.ApproxEqual(target, 1e-9))
}

func TestChase(t *testing.T) {
	got := Chase(vmath.V2(0, 0), vmath.V2(0.1, 0), 10, 5)
	assert.InDelta(t, 1, got.X, 1e-12)

	capped := Chase(vmath.V2(0, 0), vmath.V2(10, 0), 10, 5)
	assert.InDelta(t, 5, capped.Len(), 1e-12)
}

func TestIntegrateClampedRespectsReach(t *testing.T) {
	pos := vmath.V2(1.9, 0)
	for i := 0; i < 50; i++ {
		pos = IntegrateClamped(pos, vmath.V2(3, 2), 0.1, 2)
		assert.LessOrEqual(t, pos.Len(), 2+1e-12)
	}
}

func TestApplyImpulse(t *testing.T) {
	got := ApplyImpulse(vmath.V2(1, 0), vmath.V2(0, 10), 4)
	assert.InDelta(t, 4, got.Len(), 1e-12)
	assert.Greater(t, got.Y, got.X)
}
