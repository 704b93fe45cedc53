package demod

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/bluetuner/channel"
	"github.com/jrwynneiii/bluetuner/config"
	"github.com/jrwynneiii/bluetuner/firdes"
)

var (
	ErrSamplesPerSymbol = errors.New("fewer than 2 samples per symbol after decimation")
	ErrNoChannels       = errors.New("no channel fits inside the acquired band")
)

// Channel and noise filter design parameters
const (
	channelCutoff     = 500e3
	channelTransition = 300e3
	noiseCutoff       = 22500
	noiseTransition   = 10e3
)

// Receiver holds everything derived from the configuration. It is read-only
// after New and SetSymbolHistory and may be shared between Pipelines.
type Receiver struct {
	SampleRate              float64
	CenterFreq              float64
	SamplesPerSymbol        float64
	ChannelSamplesPerSymbol float64
	Decimation              int
	SamplesPerSlot          int
	SNRThreshold            float64
	Channels                channel.Range
	ChannelFilter           firdes.Kernel
	NoiseFilter             firdes.Kernel
	DemodGain               float32
	BasicRateSquelch        *Squelch
	LowEnergySquelch        *Squelch

	clockConf config.ClockRecoveryConf
	history   int
	pipeline  *Pipeline
}

func New(conf config.ReceiverConf, clockConf config.ClockRecoveryConf) (*Receiver, error) {
	window, err := firdes.ParseWindow(conf.Window)
	if err != nil {
		return nil, err
	}

	r := Receiver{
		SampleRate:       conf.SampleRate,
		CenterFreq:       conf.CenterFreq,
		SamplesPerSymbol: conf.SampleRate / channel.SymbolRate,
		SNRThreshold:     conf.SNRThreshold,
		Channels:         channel.Select(conf.CenterFreq, conf.SampleRate),
		clockConf:        clockConf,
	}

	// we will decimate by the largest integer that leaves 2 samples per symbol
	r.Decimation = int(r.SamplesPerSymbol) / 2
	if r.Decimation < 1 {
		return nil, fmt.Errorf("%w: sample rate %.0f gives %.2f samples per symbol", ErrSamplesPerSymbol, conf.SampleRate, r.SamplesPerSymbol)
	}
	r.ChannelSamplesPerSymbol = r.SamplesPerSymbol / float64(r.Decimation)
	if r.Channels.Empty() {
		return nil, fmt.Errorf("%w: center %.0f Hz, sample rate %.0f Hz", ErrNoChannels, conf.CenterFreq, conf.SampleRate)
	}
	r.SamplesPerSlot = int(channel.SymbolsPerBasicRateSlot * r.SamplesPerSymbol)

	r.BasicRateSquelch = NewSquelch(
		SquelchThreshold(conf.Squelch, r.SamplesPerSymbol, channel.SymbolsPerBasicRateShortenedAccessCode),
		int(r.SamplesPerSymbol*(channel.SymbolsPerBasicRateSlot+channel.SymbolsPerBasicRateShortenedAccessCode)),
	)
	r.LowEnergySquelch = NewSquelch(
		SquelchThreshold(conf.Squelch, r.SamplesPerSymbol, channel.SymbolsPerLowEnergyPreambleAA),
		r.SamplesPerSlot,
	)

	if r.ChannelFilter, err = firdes.LowPass(1, r.SampleRate, channelCutoff, channelTransition, window); err != nil {
		return nil, fmt.Errorf("could not design channel filter: %w", err)
	}
	if r.NoiseFilter, err = firdes.LowPass(1, r.SampleRate, noiseCutoff, noiseTransition, window); err != nil {
		return nil, fmt.Errorf("could not design noise filter: %w", err)
	}

	// full scale deviation maps to +/-1 at the symbol rate
	r.DemodGain = float32(r.ChannelSamplesPerSymbol / (math.Pi / 2))

	r.history = r.SamplesPerSlot + max(len(r.ChannelFilter), len(r.NoiseFilter)) - 1 + InterpTaps*r.Decimation
	r.SetSymbolHistory(conf.SymbolHistory)

	log.Debugf("[demod] Receiver: %.0f Hz center, %.0f Hz rate, channels %d-%d, decimation %d, %d channel taps, %d noise taps, history %d",
		r.CenterFreq, r.SampleRate, r.Channels.Low, r.Channels.High, r.Decimation, len(r.ChannelFilter), len(r.NoiseFilter), r.history)

	r.pipeline = r.NewPipeline()
	return &r, nil
}

// SetSymbolHistory extends the required lookback by numSymbols symbols. Call
// it before the first block is delivered.
func (r *Receiver) SetSymbolHistory(numSymbols int) {
	r.history += int(float64(numSymbols) * r.SamplesPerSymbol)
}

// RequiredHistory is the number of samples every block must carry ahead of
// its first new sample.
func (r *Receiver) RequiredHistory() int {
	return r.history
}

func (r *Receiver) ChannelAbsFreq(ch int) float64 {
	return channel.AbsFreq(ch)
}

func (r *Receiver) ChannelRelFreq(ch int) float64 {
	return channel.RelFreq(ch, r.CenterFreq)
}

// CheckBasicRateSquelch is the cheap energy test for classic channels. It
// looks at raw samples so it must run before any filtering.
func (r *Receiver) CheckBasicRateSquelch(in []complex64) bool {
	return r.BasicRateSquelch.Check(in)
}

// CheckLowEnergySquelch only passes for frequencies carrying an LE channel.
func (r *Receiver) CheckLowEnergySquelch(freq float64, in []complex64) bool {
	if _, ok := channel.LEChannel(freq); !ok {
		return false
	}
	return r.LowEnergySquelch.Check(in)
}

// ChannelSymbols and CheckSNR on the Receiver share one Pipeline and are not
// safe for concurrent use; concurrent callers take their own NewPipeline.
//
// in starts at the oldest history sample, so RequiredHistory samples of
// lookback come first and len(in) is the total input count.
func (r *Receiver) ChannelSymbols(freq float64, in []complex64) ([]byte, int) {
	return r.pipeline.ChannelSymbols(freq, in)
}

func (r *Receiver) CheckSNR(freq, thresholdDB float64, in []complex64) (bool, float64) {
	return r.pipeline.CheckSNR(freq, thresholdDB, in)
}

func (r *Receiver) NewClockRecovery() *ClockRecoveryMM {
	return NewClockRecoveryMM(
		r.ChannelSamplesPerSymbol,
		0.25*r.clockConf.Alpha*r.clockConf.Alpha,
		r.clockConf.Mu,
		r.clockConf.Alpha,
		r.clockConf.OmegaLimit,
	)
}

// Pipeline carries the mutable state of one decode attempt at a time: the
// stages and their scratch buffers. Buffers are reused across calls.
type Pipeline struct {
	rx     *Receiver
	ddc    *Channelizer
	quad   *QuadDemod
	clock  *ClockRecoveryMM
	slicer Slicer
	snr    *SNREstimator

	ddcOut   []complex64
	demodOut []float32
	crOut    []float32
	bits     []byte
}

func (r *Receiver) NewPipeline() *Pipeline {
	size := r.history / r.Decimation
	return &Pipeline{
		rx:       r,
		ddc:      NewChannelizer(r.ChannelFilter, r.Decimation, r.SampleRate),
		quad:     NewQuadDemod(r.DemodGain),
		clock:    r.NewClockRecovery(),
		snr:      NewSNREstimator(NewChannelizer(r.NoiseFilter, r.Decimation, r.SampleRate), r.CenterFreq, r.SamplesPerSlot),
		ddcOut:   make([]complex64, size),
		demodOut: make([]float32, size),
		crOut:    make([]float32, size),
		bits:     make([]byte, size),
	}
}

// ChannelSymbols runs channelizer, demodulator, timing recovery and slicer
// over in. in starts at the oldest history sample and len(in) is the total
// input count, history included. It returns one byte per bit and the
// number of symbols produced. The slice is reused by the next call.
func (p *Pipeline) ChannelSymbols(freq float64, in []complex64) ([]byte, int) {
	p.ddc.Tune(freq - p.rx.CenterFreq)
	ddcN := p.ddc.OutputSize(len(in))
	p.ddcOut = grow(p.ddcOut, ddcN)
	ddcN = p.ddc.Process(in, p.ddcOut)
	if ddcN < 2 {
		return p.bits[:0], 0
	}

	demodN := ddcN - 1
	p.demodOut = grow(p.demodOut, demodN)
	p.quad.Process(p.ddcOut[:ddcN], p.demodOut)
	// nothing precedes the first channel sample
	p.demodOut[0] = 0

	p.clock.Reset()
	p.crOut = grow(p.crOut, demodN)
	n := p.clock.Process(p.demodOut, p.crOut)

	p.bits = grow(p.bits, demodN)
	p.slicer.Process(p.crOut[:n], p.bits)

	log.Debugf("[demod] %.0f Hz: %d samples -> %d channel -> %d symbols (mu: %f, omega: %f)",
		freq, len(in), ddcN, n, p.clock.Mu(), p.clock.Omega())
	return p.bits[:n], n
}

// CheckSNR measures the channel at freq against its valley and passes when
// the SNR reaches thresholdDB.
func (p *Pipeline) CheckSNR(freq, thresholdDB float64, in []complex64) (bool, float64) {
	return p.snr.Check(freq, thresholdDB, in)
}
