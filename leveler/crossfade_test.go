package leveler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossfadeRampIsExactlyLinear(t *testing.T) {
	const n = 10
	prev := make([]float64, n*Channels)
	curr := make([]float64, n*Channels)
	for i := range curr {
		curr[i] = 1
	}
	out, err := Crossfade(prev, curr)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		want := float64(j) / n
		assert.InDelta(t, want, out[j*2], 1e-15, "left frame %d", j)
		assert.InDelta(t, want, out[j*2+1], 1e-15, "right frame %d", j)
	}
}

func TestCrossfadeNeverOvershoots(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 257
	prev := make([]float64, n*Channels)
	curr := make([]float64, n*Channels)
	for i := range prev {
		prev[i] = 2*rng.Float64() - 1
		curr[i] = 2*rng.Float64() - 1
	}
	prevCopy := append([]float64(nil), prev...)

	out, err := Crossfade(prev, curr)
	require.NoError(t, err)
	for k := range out {
		lo, hi := prev[k], curr[k]
		if lo > hi {
			lo, hi = hi, lo
		}
		require.GreaterOrEqual(t, out[k], lo-1e-15, "sample %d", k)
		require.LessOrEqual(t, out[k], hi+1e-15, "sample %d", k)
	}
	assert.Equal(t, prevCopy, prev, "crossfade must not write into its inputs")
	assert.Equal(t, prev[0], out[0], "first frame is all previous block")
}

func TestCrossfadeChannelsAreIndependent(t *testing.T) {
	prev := []float64{1, -1, 1, -1}
	curr := []float64{0, 0, 0, 0}
	out, err := Crossfade(prev, curr)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 0.5, -0.5}, out)
}

func TestCrossfadeRejectsMismatch(t *testing.T) {
	_, err := Crossfade(make([]float64, 4), make([]float64, 6))
	assert.Error(t, err)
	_, err = Crossfade(make([]float64, 3), make([]float64, 3))
	assert.Error(t, err)
}

func TestCrossfadeEmpty(t *testing.T) {
	out, err := Crossfade(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
