package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countFires(p *IconPass, deltas []float64) int {
	fires := 0
	for _, dt := range deltas {
		if p.Tick(dt) {
			fires++
		}
	}
	return fires
}

func TestIconCadenceSteadyFrames(t *testing.T) {
	// 0.3 seconds in 0.1-second frames crosses the 0.125 threshold twice.
	p := NewIconPass()
	assert.Equal(t, 2, countFires(p, []float64{0.1, 0.1, 0.1}))
}

func TestIconCadenceCarriesRemainder(t *testing.T) {
	p := NewIconPass()

	// First fire at 0.2s leaves 0.075 in the bank.
	assert.False(t, p.Tick(0.1))
	assert.True(t, p.Tick(0.1))
	// 0.075 + 0.05 = 0.125 fires exactly on the boundary.
	assert.True(t, p.Tick(0.05))
	assert.False(t, p.Tick(0.05))
}

func TestIconCadenceFrameRateIndependent(t *testing.T) {
	slices := [][]float64{
		{1.0},
		{0.5, 0.5},
		{0.25, 0.25, 0.25, 0.25},
		{0.0625, 0.25, 0.1875, 0.5},
	}
	for _, deltas := range slices {
		p := NewIconPass()
		fires := countFires(p, deltas)
		// A burst frame fires at most once; the backlog drains on
		// subsequent ticks.
		for fires < 8 && p.Tick(0) {
			fires++
		}
		assert.Equal(t, 8, fires, "deltas=%v", deltas)
		assert.False(t, p.Tick(0))
	}
}

func TestIconCadenceAtMostOncePerTick(t *testing.T) {
	p := NewIconPass()
	assert.True(t, p.Tick(1.0))

	// Remaining backlog fires once per subsequent tick, not all at once.
	drained := 0
	for p.Tick(0) {
		drained++
	}
	assert.Equal(t, 7, drained)
}

func TestIconSpinAccumulatesAcrossTicks(t *testing.T) {
	p := NewIconPass()
	p.Tick(0.06)
	p.Tick(0.06)
	assert.InDelta(t, 0.12, p.spin, 1e-9)
}
