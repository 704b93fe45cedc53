package demod

import (
	"math"

	"github.com/racerxdl/segdsp/tools"
)

// Squelch is an energy gate on raw samples: the summed power over the first
// window samples must reach threshold.
type Squelch struct {
	threshold float64
	window    int
}

func NewSquelch(threshold float64, window int) *Squelch {
	return &Squelch{threshold: threshold, window: window}
}

// SquelchThreshold converts a per-sample level in dB into the total power
// expected over symbols symbols of samplesPerSymbol samples each.
func SquelchThreshold(squelchDB, samplesPerSymbol float64, symbols int) float64 {
	return math.Pow(10.0, squelchDB/10) * samplesPerSymbol * float64(symbols)
}

func (s *Squelch) Threshold() float64 {
	return s.threshold
}

func (s *Squelch) Window() int {
	return s.window
}

// Power sums |x|^2 over the window. ok is false when in is shorter than
// the window.
func (s *Squelch) Power(in []complex64) (pwr float64, ok bool) {
	if len(in) < s.window {
		return 0, false
	}
	for _, v := range in[:s.window] {
		pwr += float64(tools.ComplexAbsSquared(v))
	}
	return pwr, true
}

func (s *Squelch) Check(in []complex64) bool {
	pwr, ok := s.Power(in)
	return ok && pwr >= s.threshold
}
