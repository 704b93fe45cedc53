package demod

import (
	"math"
	"testing"

	"github.com/jrwynneiii/bluetuner/firdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSNRdB(t *testing.T) {
	assert.Equal(t, 0.0, SNRdB(42, 42))
	assert.InDelta(t, 10.0, SNRdB(100, 10), 1e-12)
	assert.InDelta(t, -3.0103, SNRdB(1, 2), 1e-4)

	for _, v := range []float64{SNRdB(1, 0), SNRdB(0, 0), SNRdB(0, 1)} {
		assert.True(t, math.IsInf(v, -1))
		assert.False(t, math.IsNaN(v))
	}
}

func newTestEstimator(t *testing.T) *SNREstimator {
	taps, err := firdes.LowPass(1, 4e6, 22500, 10e3, firdes.WindowHann)
	require.NoError(t, err)
	return NewSNREstimator(NewChannelizer(taps, 2, 4e6), 2441e6, 2500)
}

func TestSNREstimatorSilence(t *testing.T) {
	e := newTestEstimator(t)
	ok, snr := e.Check(2441e6, -100, make([]complex64, 4000))
	assert.False(t, ok)
	assert.True(t, math.IsInf(snr, -1))
}

func TestSNREstimatorCarrier(t *testing.T) {
	e := newTestEstimator(t)

	// a carrier on channel 40, 1 MHz above center
	in := tone(4000, 0.25, 1)
	ok, snr := e.Check(2442e6, 6, in)
	assert.True(t, ok)
	assert.Greater(t, snr, 20.0)

	// measured from the valley side the same carrier is noise
	ok, snr = e.Check(2442e6-ValleyOffset, 6, in)
	assert.False(t, ok)
	assert.Less(t, snr, -20.0)
}
