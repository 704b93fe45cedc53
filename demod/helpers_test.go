package demod

import (
	"math"
	"math/cmplx"

	"github.com/jrwynneiii/bluetuner/channel"
	"github.com/jrwynneiii/bluetuner/config"
)

var testClock = config.ClockRecoveryConf{
	Mu:         0.32,
	Alpha:      0.175,
	OmegaLimit: 0.005,
}

func testConf(sampleRate, centerFreq float64) config.ReceiverConf {
	return config.ReceiverConf{
		SampleRate:   sampleRate,
		CenterFreq:   centerFreq,
		Squelch:      -20,
		SNRThreshold: 6,
		Window:       "hann",
	}
}

// fsk frequency modulates bits at the Bluetooth symbol rate, offset Hz away
// from the capture center, with +/-deviation Hz for 1/0.
func fsk(bits []byte, sampleRate, offset, deviation float64) []complex64 {
	sps := int(sampleRate / channel.SymbolRate)
	out := make([]complex64, 0, len(bits)*sps)
	var phase float64
	for _, b := range bits {
		freq := offset - deviation
		if b == 1 {
			freq = offset + deviation
		}
		for i := 0; i < sps; i++ {
			out = append(out, complex64(cmplx.Rect(1, phase)))
			phase += 2 * math.Pi * freq / sampleRate
		}
	}
	return out
}

func alternating(n int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(i & 1)
	}
	return bits
}

func tone(n int, cyclesPerSample float64, amplitude float64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex64(cmplx.Rect(amplitude, 2*math.Pi*cyclesPerSample*float64(i)))
	}
	return out
}

func constant(n int, v complex64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// prbs9 is the x^9 + x^5 + 1 sequence seeded with all ones.
func prbs9(n int) []byte {
	state := uint16(0x1ff)
	out := make([]byte, n)
	for i := range out {
		fb := ((state >> 8) ^ (state >> 4)) & 1
		out[i] = byte(state & 1)
		state = ((state << 1) | fb) & 0x1ff
	}
	return out
}
