package demod

import (
	"math"
	"math/cmplx"

	"github.com/jrwynneiii/bluetuner/firdes"
)

// Renormalise the oscillator this often to stop its magnitude drifting.
const rotatorRenorm = 512

// Channelizer shifts a channel to baseband, low pass filters it and keeps
// one output every decimation inputs. It owns a scratch buffer for the
// mixed input and must not be shared between concurrent attempts.
type Channelizer struct {
	taps       firdes.Kernel
	decimation int
	sampleRate float64
	offset     float64
	mixed      []complex64
}

func NewChannelizer(taps firdes.Kernel, decimation int, sampleRate float64) *Channelizer {
	if decimation < 1 {
		decimation = 1
	}
	return &Channelizer{
		taps:       taps,
		decimation: decimation,
		sampleRate: sampleRate,
	}
}

// Tune sets the frequency, relative to the capture center, that is moved
// to baseband.
func (c *Channelizer) Tune(offset float64) {
	c.offset = offset
}

func (c *Channelizer) Offset() float64 {
	return c.offset
}

func (c *Channelizer) Decimation() int {
	return c.decimation
}

func (c *Channelizer) History() int {
	return len(c.taps) - 1
}

// OutputSize is the number of outputs available from ninput samples.
func (c *Channelizer) OutputSize(ninput int) int {
	avail := ninput - c.History()
	if avail <= 0 {
		return 0
	}
	return avail / c.decimation
}

func (c *Channelizer) Process(in []complex64, out []complex64) int {
	n := min(c.OutputSize(len(in)), len(out))
	if n == 0 {
		return 0
	}

	span := (n-1)*c.decimation + len(c.taps)
	src := in[:span]
	if c.offset != 0 {
		c.mixed = grow(c.mixed, span)
		c.mix(src, c.mixed)
		src = c.mixed
	}

	for j := 0; j < n; j++ {
		window := src[j*c.decimation : j*c.decimation+len(c.taps)]
		var re, im float32
		for k, h := range c.taps {
			re += h * real(window[k])
			im += h * imag(window[k])
		}
		out[j] = complex(re, im)
	}
	return n
}

// mix multiplies by exp(-j*2*pi*offset*n/fs), with n counted from in[0].
func (c *Channelizer) mix(in, out []complex64) {
	step := cmplx.Rect(1, -2*math.Pi*c.offset/c.sampleRate)
	phase := complex(1, 0)
	for i, s := range in {
		out[i] = s * complex64(phase)
		phase *= step
		if i%rotatorRenorm == rotatorRenorm-1 {
			phase /= complex(cmplx.Abs(phase), 0)
		}
	}
}
