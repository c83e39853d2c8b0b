package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterDeterministic(t *testing.T) {
	assert.Equal(t, Jitter(12.5, 40.5), Jitter(12.5, 40.5))
	assert.NotEqual(t, Jitter(12.5, 40.5), Jitter(13.5, 40.5))
}

func TestJitterRange(t *testing.T) {
	for x := float32(0); x < 64; x++ {
		for y := float32(0); y < 64; y++ {
			j := Jitter(x+0.5, y+0.5)
			assert.GreaterOrEqual(t, j, float32(0))
			assert.Less(t, j, float32(1))
		}
	}
}

func TestJitterSpread(t *testing.T) {
	// The hash should cover the unit interval, not cluster.
	var buckets [8]int
	for x := float32(0); x < 32; x++ {
		for y := float32(0); y < 32; y++ {
			buckets[int(Jitter(x+0.5, y+0.5)*8)]++
		}
	}
	for i, n := range buckets {
		assert.Greater(t, n, 0, "bucket %d empty", i)
	}
}

func TestBlurWeightsNormalized(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 20, 64, 128} {
		for _, j := range []float32{0.1, 0.5, 0.9} {
			ws := blurWeights(n, j)
			require.Len(t, ws, n)

			var sum float32
			for _, w := range ws {
				assert.GreaterOrEqual(t, w, float32(0))
				sum += w
			}
			assert.InDelta(t, 1, sum, 1e-3, "n=%d j=%v", n, j)
		}
	}
}

func TestBlurWeightsPeakMidLine(t *testing.T) {
	ws := blurWeights(20, 0.5)

	// Rises to the middle, falls toward the end.
	assert.Greater(t, ws[10], ws[0])
	assert.Greater(t, ws[10], ws[19])
	for i := 0; i < 9; i++ {
		assert.Less(t, ws[i], ws[i+1])
	}
	for i := 11; i < 19; i++ {
		assert.Greater(t, ws[i], ws[i+1])
	}
}

func TestBlurWeightsEmpty(t *testing.T) {
	assert.Nil(t, blurWeights(0, 0.5))
	assert.Nil(t, blurWeights(-3, 0.5))
}

func TestClampIterations(t *testing.T) {
	assert.Equal(t, 0, clampIterations(-10))
	assert.Equal(t, 20, clampIterations(20))
	assert.Equal(t, 128, clampIterations(500))
}
