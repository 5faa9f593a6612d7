package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/swordplay/history"
	"github.com/lixenwraith/swordplay/vmath"
	"github.com/lixenwraith/swordplay/weapon"
)

func TestMachineTransitions(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, history.StateIdle, m.State())

	assert.False(t, m.Release(weapon.IntentAttack), "release from idle")
	assert.True(t, m.Charge(weapon.IntentAttack))
	assert.Equal(t, history.StateAttack, m.State())
	assert.False(t, m.Charge(weapon.IntentAttack), "same state is no transition")

	assert.False(t, m.Release(weapon.IntentDefend), "release of the other intent is ignored")
	assert.Equal(t, history.StateAttack, m.State())

	assert.True(t, m.Charge(weapon.IntentDefend))
	assert.Equal(t, history.StateDefend, m.State())

	assert.True(t, m.Release(weapon.IntentDefend))
	assert.Equal(t, history.StateIdle, m.State())
}

func TestMachineReconcile(t *testing.T) {
	tests := []struct {
		name           string
		from           history.State
		attack, defend bool
		want           history.State
		changed        bool
	}{
		{"idle stays idle", history.StateIdle, false, false, history.StateIdle, false},
		{"idle to attack", history.StateIdle, true, false, history.StateAttack, true},
		{"idle to defend", history.StateIdle, false, true, history.StateDefend, true},
		{"attack wins from idle", history.StateIdle, true, true, history.StateAttack, true},
		{"attack held", history.StateAttack, true, true, history.StateAttack, false},
		{"attack missed release", history.StateAttack, false, true, history.StateIdle, true},
		{"defend held", history.StateDefend, false, true, history.StateDefend, false},
		{"defend missed release", history.StateDefend, true, false, history.StateIdle, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			if intent, ok := weapon.IntentFromState(tt.from); ok {
				require.True(t, m.Charge(intent))
			}
			assert.Equal(t, tt.changed, m.Reconcile(tt.attack, tt.defend))
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func fill(buf *history.Buffer, states []history.State, dt float64) {
	for i, s := range states {
		buf.Append(history.Sample{
			Position: vmath.V2(float64(i), 0),
			Time:     float64(i) * dt,
			State:    s,
		})
	}
}

var params = Params{TrailTime: 0.5, PowerMin: 1, PowerMax: 10}

func TestClassifyRun(t *testing.T) {
	const (
		I = history.StateIdle
		A = history.StateAttack
		D = history.StateDefend
	)
	buf := history.NewBuffer(0)
	// Run of attack at indices 2..6, newer idle samples after it
	fill(buf, []history.State{I, I, A, A, A, A, A, I, I}, 0.05)

	g, ok := Classify(buf, A, params)
	require.True(t, ok)
	assert.Equal(t, weapon.IntentAttack, g.Intent)
	assert.Equal(t, 2.0, g.Start.Position.X)
	assert.Equal(t, 4.0, g.Mid.Position.X)
	assert.Equal(t, 6.0, g.End.Position.X)
	// 0.2s of a 0.5s trail: 1 + 0.4·9
	assert.InDelta(t, 4.6, g.Power, 1e-9)
	assert.Equal(t, "Slash", g.Label())
	assert.Equal(t, vmath.V2(4, 0), g.Center())

	_, ok = Classify(buf, D, params)
	assert.False(t, ok, "no defend run")

	_, ok = Classify(buf, I, params)
	assert.False(t, ok, "idle never classifies")
}

func TestClassifyPowerClamped(t *testing.T) {
	buf := history.NewBuffer(0)
	D := history.StateDefend
	fill(buf, []history.State{D, D, D}, 1.0) // 2s run, longer than the trail

	g, ok := Classify(buf, D, params)
	require.True(t, ok)
	assert.Equal(t, params.PowerMax, g.Power)
	assert.Equal(t, "Parry", g.Label())

	single := history.NewBuffer(0)
	fill(single, []history.State{D}, 0)
	g, ok = Classify(single, D, params)
	require.True(t, ok)
	assert.Equal(t, params.PowerMin, g.Power)
	assert.Equal(t, g.Start, g.End)
	assert.True(t, g.Arc().Degenerate())
}

func TestClassifyArcPassesThroughSamples(t *testing.T) {
	buf := history.NewBuffer(0)
	A := history.StateAttack
	pts := []vmath.Vec2{vmath.V2(-1, 0), vmath.V2(-0.5, 0.8), vmath.V2(0, 1), vmath.V2(0.5, 0.8), vmath.V2(1, 0)}
	for i, p := range pts {
		buf.Append(history.Sample{Position: p, Time: float64(i) * 0.01, State: A})
	}
	g, ok := Classify(buf, A, params)
	require.True(t, ok)

	arc := g.Arc()
	assert.True(t, arc.At(-1).ApproxEqual(pts[0], 1e-12))
	assert.True(t, arc.At(0).ApproxEqual(pts[2], 1e-12))
	assert.True(t, arc.At(1).ApproxEqual(pts[4], 1e-12))
}
