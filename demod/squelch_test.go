package demod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquelchThreshold(t *testing.T) {
	assert.Equal(t, 272.0, SquelchThreshold(0, 4, 68))
	assert.InDelta(t, 27.2, SquelchThreshold(-10, 4, 68), 1e-9)
	assert.InDelta(t, 3200.0, SquelchThreshold(10, 80, 4), 1e-9)
}

func TestSquelchSilence(t *testing.T) {
	s := NewSquelch(1e-9, 2772)
	assert.False(t, s.Check(make([]complex64, 4000)))

	pwr, ok := s.Power(make([]complex64, 4000))
	assert.True(t, ok)
	assert.Equal(t, 0.0, pwr)
}

func TestSquelchBoundary(t *testing.T) {
	// 0.5^2 * 2772 is exactly 693
	in := constant(2772, complex(0.5, 0))

	assert.True(t, NewSquelch(693, 2772).Check(in))
	assert.False(t, NewSquelch(math.Nextafter(693, 1000), 2772).Check(in))

	quieter := constant(2772, complex(0.4999, 0))
	assert.False(t, NewSquelch(693, 2772).Check(quieter))

	// only the window counts
	longer := append(constant(2772, complex(0.5, 0)), constant(1000, complex(10, 0))...)
	pwr, ok := NewSquelch(693, 2772).Power(longer)
	assert.True(t, ok)
	assert.Equal(t, 693.0, pwr)
}

func TestSquelchDecibelBoundary(t *testing.T) {
	// A^2 * window compared against 10^(dB/10) * window
	const window = 1000
	in := constant(window, complex(0, 0.5))
	level := 10 * math.Log10(0.25)

	assert.True(t, NewSquelch(SquelchThreshold(level-0.01, 1, window), window).Check(in))
	assert.False(t, NewSquelch(SquelchThreshold(level+0.01, 1, window), window).Check(in))
}

func TestSquelchShortBlock(t *testing.T) {
	s := NewSquelch(0, 100)
	assert.False(t, s.Check(constant(99, 1)))
	_, ok := s.Power(constant(99, 1))
	assert.False(t, ok)
	assert.Equal(t, 100, s.Window())
	assert.Equal(t, 0.0, s.Threshold())
}
