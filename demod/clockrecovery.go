package demod

import "math"

// ClockRecoveryMM is a Mueller & Muller symbol timing loop producing one
// output per symbol. State starts over on every Reset; a decode attempt
// calls Reset before Process so nothing is carried between attempts.
type ClockRecoveryMM struct {
	mu         float64
	omega      float64
	lastSample float32

	initMu     float64
	omegaMid   float64
	omegaLimit float64
	gainMu     float64
	gainOmega  float64
}

// NewClockRecoveryMM builds a loop for omega input samples per symbol.
// omegaRelativeLimit bounds omega to omega*(1 +/- omegaRelativeLimit).
func NewClockRecoveryMM(omega, gainOmega, mu, gainMu, omegaRelativeLimit float64) *ClockRecoveryMM {
	c := &ClockRecoveryMM{
		initMu:     mu,
		omegaMid:   omega,
		omegaLimit: omegaRelativeLimit * omega,
		gainMu:     gainMu,
		gainOmega:  gainOmega,
	}
	c.Reset()
	return c
}

func (c *ClockRecoveryMM) Reset() {
	c.mu = c.initMu
	c.omega = c.omegaMid
	c.lastSample = 0
}

func (c *ClockRecoveryMM) Mu() float64 {
	return c.mu
}

func (c *ClockRecoveryMM) Omega() float64 {
	return c.omega
}

func (c *ClockRecoveryMM) OmegaMid() float64 {
	return c.omegaMid
}

// OmegaLimit is the absolute deviation allowed around OmegaMid.
func (c *ClockRecoveryMM) OmegaLimit() float64 {
	return c.omegaLimit
}

func (c *ClockRecoveryMM) History() int {
	return InterpTaps
}

func slice(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// Process runs the loop until out is full or fewer than InterpTaps inputs
// remain ahead of the read position. It returns the number of symbols
// written, which can be less than len(out).
func (c *ClockRecoveryMM) Process(in []float32, out []float32) int {
	return c.process(in, out, nil)
}

// process calls step, when non-nil, after every symbol.
func (c *ClockRecoveryMM) process(in []float32, out []float32, step func()) int {
	ni := len(in) - InterpTaps
	ii := 0
	oo := 0

	for oo < len(out) && ii < ni {
		out[oo] = interpolate(in[ii:ii+InterpTaps], c.mu)
		mmVal := float64(slice(c.lastSample)*out[oo] - slice(out[oo])*c.lastSample)
		c.lastSample = out[oo]

		c.omega += c.gainOmega * mmVal
		c.omega = c.omegaMid + clip(c.omega-c.omegaMid, c.omegaLimit)
		c.mu += c.omega + c.gainMu*mmVal

		advance := math.Floor(c.mu)
		c.mu -= advance
		ii += int(advance)
		if c.mu >= 1 {
			// rounding of a tiny negative mu
			c.mu -= 1
			ii++
		}
		if ii < 0 {
			ii = 0
		}
		oo++

		if step != nil {
			step()
		}
	}
	return oo
}

func clip(x, limit float64) float64 {
	return max(-limit, min(x, limit))
}
