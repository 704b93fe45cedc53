package demod

import (
	"math/cmplx"
	"testing"

	"github.com/jrwynneiii/bluetuner/firdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestChannelizerIdentity(t *testing.T) {
	c := NewChannelizer(firdes.Kernel{1}, 1, 4e6)
	in := tone(100, 0.1, 1)
	out := make([]complex64, c.OutputSize(len(in)))

	require.Equal(t, len(in), len(out))
	n := c.Process(in, out)
	assert.Equal(t, len(in), n)
	assert.Equal(t, in, out)
	assert.Equal(t, 0, c.History())
}

func TestChannelizerOutputSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ntaps := rapid.IntRange(1, 64).Draw(t, "ntaps")
		decim := rapid.IntRange(1, 16).Draw(t, "decim")
		ninput := rapid.IntRange(0, 2048).Draw(t, "ninput")

		c := NewChannelizer(make(firdes.Kernel, ntaps), decim, 4e6)
		want := 0
		if ninput >= ntaps-1 {
			want = (ninput - (ntaps - 1)) / decim
		}
		if got := c.OutputSize(ninput); got != want {
			t.Fatalf("OutputSize(%d) = %d, want %d", ninput, got, want)
		}

		out := make([]complex64, want+3)
		if got := c.Process(make([]complex64, ninput), out); got != want {
			t.Fatalf("Process produced %d, want %d", got, want)
		}
	})
}

func TestChannelizerShortInput(t *testing.T) {
	c := NewChannelizer(make(firdes.Kernel, 27), 2, 4e6)
	assert.Equal(t, 0, c.OutputSize(10))
	assert.Equal(t, 0, c.Process(make([]complex64, 10), make([]complex64, 10)))
	assert.Equal(t, 0, c.Process(make([]complex64, 100), nil))
}

func TestChannelizerMixesToBaseband(t *testing.T) {
	taps, err := firdes.LowPass(1, 4e6, 500e3, 300e3, firdes.WindowHann)
	require.NoError(t, err)

	c := NewChannelizer(taps, 2, 4e6)
	c.Tune(1e6)
	assert.Equal(t, 1e6, c.Offset())

	// a 1 MHz tone lands on DC
	in := tone(4096, 0.25, 1)
	out := make([]complex64, c.OutputSize(len(in)))
	n := c.Process(in, out)
	require.Equal(t, (4096-26)/2, n)

	for i, v := range out[:n] {
		assert.InDelta(t, 0, cmplx.Abs(complex128(v)-1), 1e-3, "output %d = %v", i, v)
	}
}

func TestChannelizerRejectsOtherChannel(t *testing.T) {
	taps, err := firdes.LowPass(1, 4e6, 500e3, 300e3, firdes.WindowHann)
	require.NoError(t, err)

	c := NewChannelizer(taps, 2, 4e6)
	c.Tune(-1e6)

	in := tone(4096, 0.25, 1)
	out := make([]complex64, c.OutputSize(len(in)))
	n := c.Process(in, out)
	for _, v := range out[:n] {
		assert.Less(t, cmplx.Abs(complex128(v)), 0.05)
	}
}
