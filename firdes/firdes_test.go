package firdes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sum(k Kernel) float64 {
	var s float64
	for _, v := range k {
		s += float64(v)
	}
	return s
}

func TestNumTaps(t *testing.T) {
	assert.Equal(t, 533, NumTaps(80e6, 300e3))
	assert.Equal(t, 16001, NumTaps(80e6, 10e3))
	assert.Equal(t, 27, NumTaps(4e6, 300e3))
}

func TestChannelFilter(t *testing.T) {
	k, err := LowPass(1, 80e6, 500e3, 300e3, WindowHann)
	require.NoError(t, err)
	require.Len(t, k, 533)
	assert.Equal(t, 266, k.Delay())
	assert.InDelta(t, 1.0, sum(k), 1e-4)
	assert.Equal(t, float32(0), k[0])

	// center tap is the largest
	for i, v := range k {
		assert.LessOrEqual(t, v, k[k.Delay()], "tap %d", i)
	}
}

func TestDeterministic(t *testing.T) {
	a, err := LowPass(1, 20e6, 22.5e3, 10e3, WindowHann)
	require.NoError(t, err)
	b, err := LowPass(1, 20e6, 22.5e3, 10e3, WindowHann)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGain(t *testing.T) {
	k, err := LowPass(3, 8e6, 500e3, 300e3, WindowHann)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, sum(k), 1e-4)
}

func TestHammingSymmetric(t *testing.T) {
	k, err := LowPass(1, 8e6, 500e3, 300e3, WindowHamming)
	require.NoError(t, err)
	require.NotEmpty(t, k)
	for i := range k {
		assert.Equal(t, k[i], k[len(k)-1-i], "tap %d", i)
	}
}

func TestSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.Float64Range(2e6, 40e6).Draw(t, "rate")
		cutoff := rapid.Float64Range(10e3, rate/2).Draw(t, "cutoff")
		tw := rapid.Float64Range(50e3, 2e6).Draw(t, "tw")

		k, err := LowPass(1, rate, cutoff, tw, WindowHann)
		if err != nil {
			t.Fatalf("design failed: %v", err)
		}
		if len(k)%2 != 1 {
			t.Fatalf("even kernel length %d", len(k))
		}
		for i := range k {
			if k[i] != k[len(k)-1-i] {
				t.Fatalf("tap %d: %v != %v", i, k[i], k[len(k)-1-i])
			}
			if math.IsNaN(float64(k[i])) {
				t.Fatalf("tap %d is NaN", i)
			}
		}
	})
}

func TestInvalid(t *testing.T) {
	_, err := LowPass(1, 0, 500e3, 300e3, WindowHann)
	assert.Error(t, err)
	_, err = LowPass(1, 4e6, 3e6, 300e3, WindowHann)
	assert.Error(t, err)
	_, err = LowPass(1, 4e6, 500e3, 0, WindowHann)
	assert.Error(t, err)
	_, err = LowPass(1, 4e6, 500e3, 300e3, Window(9))
	assert.Error(t, err)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("Hamming")
	require.NoError(t, err)
	assert.Equal(t, WindowHamming, w)

	w, err = ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowHann, w)
	assert.Equal(t, "hann", w.String())

	_, err = ParseWindow("kaiser")
	assert.Error(t, err)
}
