package spectrum

import (
	"math"

	"github.com/jrwynneiii/bluetuner/channel"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

const DefaultSize = 4096

// ChannelPower is the mean power of one channel relative to a full scale
// complex tone.
type ChannelPower struct {
	Channel int
	Freq    float64
	PowerDB float64
}

// Analyzer averages Hann windowed FFT frames over a block and sums the bins
// of each 1 MHz channel.
type Analyzer struct {
	SampleRate float64
	CenterFreq float64
	Channels   channel.Range

	fft   *fourier.CmplxFFT
	win   []float64
	norm  float64
	frame []complex128
	coeff []complex128
	power []float64
}

// NewAnalyzer rounds size down to a power of two.
func NewAnalyzer(size int, sampleRate, centerFreq float64, channels channel.Range) *Analyzer {
	n := 1
	for n*2 <= size {
		n *= 2
	}
	win := make([]float64, n)
	for i := range win {
		win[i] = 1
	}
	window.Hann(win)

	return &Analyzer{
		SampleRate: sampleRate,
		CenterFreq: centerFreq,
		Channels:   channels,
		fft:        fourier.NewCmplxFFT(n),
		win:        win,
		norm:       float64(n) * floats.Dot(win, win),
		frame:      make([]complex128, n),
		coeff:      make([]complex128, n),
		power:      make([]float64, n),
	}
}

func (a *Analyzer) Size() int {
	return len(a.win)
}

// Bins returns the averaged power per FFT bin in natural order. It is
// overwritten by the next Survey.
func (a *Analyzer) Bins() []float64 {
	return a.power
}

// Survey returns one entry per channel in range, or nil when the block is
// shorter than one frame.
func (a *Analyzer) Survey(samples []complex64) []ChannelPower {
	n := len(a.win)
	frames := len(samples) / n
	if frames == 0 {
		return nil
	}

	for i := range a.power {
		a.power[i] = 0
	}
	for f := 0; f < frames; f++ {
		for i, s := range samples[f*n : (f+1)*n] {
			a.frame[i] = complex128(s) * complex(a.win[i], 0)
		}
		a.coeff = a.fft.Coefficients(a.coeff, a.frame)
		for i, c := range a.coeff {
			a.power[i] += real(c)*real(c) + imag(c)*imag(c)
		}
	}
	floats.Scale(1/(a.norm*float64(frames)), a.power)

	out := make([]ChannelPower, 0, a.Channels.Len())
	var chanBins []float64
	for _, ch := range a.Channels.Channels() {
		rel := channel.RelFreq(ch, a.CenterFreq)
		chanBins = chanBins[:0]
		for i, p := range a.power {
			freq := a.fft.Freq(i) * a.SampleRate
			if freq >= rel-channel.ChannelWidth/2 && freq < rel+channel.ChannelWidth/2 {
				chanBins = append(chanBins, p)
			}
		}
		out = append(out, ChannelPower{
			Channel: ch,
			Freq:    channel.AbsFreq(ch),
			PowerDB: 10 * math.Log10(floats.Sum(chanBins)),
		})
	}
	return out
}

// Strongest returns the entry with the highest power.
func Strongest(powers []ChannelPower) (ChannelPower, bool) {
	if len(powers) == 0 {
		return ChannelPower{}, false
	}
	best := powers[0]
	for _, p := range powers[1:] {
		if p.PowerDB > best.PowerDB {
			best = p
		}
	}
	return best, true
}
