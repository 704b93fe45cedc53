package demod

import (
	"math"

	"github.com/racerxdl/segdsp/tools"
)

// ValleyOffset is where off-channel noise is measured, relative to the
// channel being tested.
const ValleyOffset = 790e3

// SNREstimator compares the narrowband power at a channel against the power
// at a nearby valley between channels.
type SNREstimator struct {
	ddc        *Channelizer
	centerFreq float64
	window     int
	out        []complex64
}

// NewSNREstimator measures over window raw samples using its own
// channelizer, which must not be shared.
func NewSNREstimator(ddc *Channelizer, centerFreq float64, window int) *SNREstimator {
	return &SNREstimator{
		ddc:        ddc,
		centerFreq: centerFreq,
		window:     window,
		out:        make([]complex64, window/ddc.Decimation()),
	}
}

func (e *SNREstimator) power(freq float64, in []complex64) float64 {
	if span := e.window + e.ddc.History(); len(in) > span {
		in = in[:span]
	}
	e.ddc.Tune(freq - e.centerFreq)
	n := e.ddc.OutputSize(len(in))
	e.out = grow(e.out, n)
	n = e.ddc.Process(in, e.out)

	var pwr float64
	for _, v := range e.out[:n] {
		pwr += float64(tools.ComplexAbsSquared(v))
	}
	return pwr
}

// Measure returns the SNR in dB of the channel at freq.
func (e *SNREstimator) Measure(freq float64, in []complex64) float64 {
	on := e.power(freq, in)
	off := e.power(freq+ValleyOffset, in)
	return SNRdB(on, off)
}

// Check passes when the measured SNR reaches thresholdDB.
func (e *SNREstimator) Check(freq, thresholdDB float64, in []complex64) (bool, float64) {
	snr := e.Measure(freq, in)
	if math.IsInf(snr, -1) {
		return false, snr
	}
	return snr >= thresholdDB, snr
}

// SNRdB is 10*log10(on/off). A silent valley has no defined ratio and
// yields -Inf.
func SNRdB(on, off float64) float64 {
	if off <= 0 || on <= 0 {
		return math.Inf(-1)
	}
	return 10.0 * math.Log10(on/off)
}
