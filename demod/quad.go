package demod

import (
	"math"

	"github.com/racerxdl/segdsp/dsp"
)

// QuadDemod converts a complex baseband stream into its instantaneous
// frequency scaled by gain.
//
// For n outputs it reads n inputs and writes out[1:n]; out[0] belongs to the
// caller since there is no sample before in[0] to difference against.
type QuadDemod struct {
	gain    float32
	product []complex64
}

func NewQuadDemod(gain float32) *QuadDemod {
	return &QuadDemod{gain: gain}
}

func (q *QuadDemod) Gain() float32 {
	return q.gain
}

func (q *QuadDemod) Process(in []complex64, out []float32) int {
	n := min(len(in), len(out))
	if n < 2 {
		return n
	}

	// product[i-1] = in[i] * conj(in[i-1])
	q.product = grow(q.product, n-1)
	copy(q.product, in[1:n])
	dsp.MultiplyConjugateInline(q.product, in[:n-1], n-1)
	for i := 1; i < n; i++ {
		p := q.product[i-1]
		out[i] = q.gain * float32(math.Atan2(float64(imag(p)), float64(real(p))))
	}
	return n
}

func (q *QuadDemod) History() int {
	return 1
}
