package channel

import "math"

const (
	BaseFrequency = 2402e6
	ChannelWidth  = 1e6
	SymbolRate    = 1e6

	MinChannel = 0
	MaxChannel = 78

	SymbolsPerBasicRateSlot                = 625
	SymbolsPerBasicRateShortenedAccessCode = 68
	SymbolsPerLowEnergyPreambleAA          = 40

	// Fraction of a channel that must fall inside the acquired band for the
	// channel to be considered decodable.
	MinChannelWidth = 0.9
)

// Range is the inclusive set of classic channels fully contained in the
// acquired band. Low > High means no channel is usable.
type Range struct {
	Low  int
	High int
}

func (r Range) Empty() bool {
	return r.Low > r.High
}

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.High - r.Low + 1
}

func (r Range) Contains(ch int) bool {
	return ch >= r.Low && ch <= r.High
}

// LowFreq and HighFreq are the absolute frequencies of the range edges.
func (r Range) LowFreq() float64 {
	return AbsFreq(r.Low)
}

func (r Range) HighFreq() float64 {
	return AbsFreq(r.High)
}

// Channels lists every channel index in the range, lowest first.
func (r Range) Channels() []int {
	chans := make([]int, 0, r.Len())
	for ch := r.Low; ch <= r.High; ch++ {
		chans = append(chans, ch)
	}
	return chans
}

// Select computes the channel range visible at the given center frequency
// and sample rate.
func Select(centerFreq, sampleRate float64) Range {
	// center frequency described as a fractional channel
	center := (centerFreq - BaseFrequency) / ChannelWidth
	bandwidth := sampleRate / ChannelWidth
	lowEdge := center - bandwidth/2
	highEdge := center + bandwidth/2

	low := int(math.Floor(lowEdge + MinChannelWidth/2 + 1))
	if low < MinChannel {
		low = MinChannel
	}
	high := int(math.Floor(highEdge - MinChannelWidth/2))
	if high > MaxChannel {
		high = MaxChannel
	}
	return Range{Low: low, High: high}
}

func AbsFreq(ch int) float64 {
	return BaseFrequency + float64(ch)*ChannelWidth
}

// RelFreq is the channel frequency relative to centerFreq.
func RelFreq(ch int, centerFreq float64) float64 {
	return AbsFreq(ch) - centerFreq
}

// FromFreq returns the classic channel whose center is nearest to freq.
func FromFreq(freq float64) (int, bool) {
	ch := int((freq-BaseFrequency)/ChannelWidth + 0.5)
	if freq < BaseFrequency-ChannelWidth/2 || ch > MaxChannel {
		return -1, false
	}
	return ch, true
}
