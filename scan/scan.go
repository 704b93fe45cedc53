package scan

import (
	"context"
	"errors"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/bluetuner/config"
	"github.com/jrwynneiii/bluetuner/demod"
	"github.com/jrwynneiii/bluetuner/spectrum"
)

// BlockSource yields blocks that already carry the receiver's history.
type BlockSource interface {
	Next() ([]complex64, error)
}

// Burst is one successful decode attempt. BasicRate is set when the block
// passed the classic squelch and SNR gates, LowEnergy when it passed the LE
// squelch; both can be set. SNR is only measured for classic attempts and
// is NaN otherwise. Bits is only valid for the duration of Deliver.
type Burst struct {
	Block     int
	Channel   int
	Freq      float64
	BasicRate bool
	LowEnergy bool
	SNR       float64
	Bits      []byte
}

// Sink receives bursts from all workers concurrently.
type Sink interface {
	Deliver(b Burst)
}

type LogSink struct{}

func (LogSink) Deliver(b Burst) {
	switch {
	case b.BasicRate && b.LowEnergy:
		log.Infof("[scan] block %d: channel %d (%.0f MHz, BR+LE) %d symbols, SNR %.1f dB",
			b.Block, b.Channel, b.Freq/1e6, len(b.Bits), b.SNR)
	case b.BasicRate:
		log.Infof("[scan] block %d: channel %d (%.0f MHz, BR) %d symbols, SNR %.1f dB",
			b.Block, b.Channel, b.Freq/1e6, len(b.Bits), b.SNR)
	default:
		log.Infof("[scan] block %d: channel %d (%.0f MHz, LE) %d symbols",
			b.Block, b.Channel, b.Freq/1e6, len(b.Bits))
	}
}

type ChannelStats struct {
	Channel   int
	Freq      float64
	Squelched int
	LowSNR    int
	Bursts    int
	Symbols   int
	LastSNR   float64
}

type Summary struct {
	Blocks          int
	SquelchedBlocks int
	Bursts          int
	Channels        []ChannelStats
	Spectrum        []spectrum.ChannelPower
}

type Scanner struct {
	rx       *demod.Receiver
	conf     config.ScanConf
	sink     Sink
	analyzer *spectrum.Analyzer

	mu              sync.Mutex
	stats           map[int]*ChannelStats
	blocks          int
	squelchedBlocks int
	bursts          int
	spectrum        []spectrum.ChannelPower
}

type job struct {
	seq       int
	ch        int
	block     []complex64
	basicRate bool
	wg        *sync.WaitGroup
}

func New(rx *demod.Receiver, conf config.ScanConf, sink Sink) *Scanner {
	if sink == nil {
		sink = LogSink{}
	}
	s := Scanner{
		rx:    rx,
		conf:  conf,
		sink:  sink,
		stats: make(map[int]*ChannelStats),
	}
	for _, ch := range rx.Channels.Channels() {
		s.stats[ch] = &ChannelStats{Channel: ch, Freq: rx.ChannelAbsFreq(ch)}
	}
	if conf.SpectrumEvery > 0 {
		s.analyzer = spectrum.NewAnalyzer(spectrum.DefaultSize, rx.SampleRate, rx.CenterFreq, rx.Channels)
	}
	return &s
}

// Run processes blocks until the source is exhausted or ctx is cancelled.
// io.EOF from the source is a normal end and returns nil.
func (s *Scanner) Run(ctx context.Context, src BlockSource) error {
	workers := max(1, s.conf.Workers)
	jobs := make(chan job)
	var running sync.WaitGroup
	for i := 0; i < workers; i++ {
		running.Add(1)
		go func() {
			defer running.Done()
			s.worker(s.rx.NewPipeline(), jobs)
		}()
	}
	defer func() {
		close(jobs)
		running.Wait()
	}()

	log.Debugf("[scan] Scanning channels %d-%d with %d workers", s.rx.Channels.Low, s.rx.Channels.High, workers)
	for seq := 0; ; seq++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		block, err := src.Next()
		if errors.Is(err, io.EOF) {
			log.Debugf("[scan] End of stream after %d blocks", seq)
			return nil
		}
		if err != nil {
			return err
		}
		s.processBlock(seq, block, jobs)
	}
}

func (s *Scanner) processBlock(seq int, block []complex64, jobs chan<- job) {
	basicRate := s.rx.CheckBasicRateSquelch(block)
	if !basicRate && !s.conf.LowEnergy {
		s.mu.Lock()
		s.blocks++
		s.squelchedBlocks++
		for _, st := range s.stats {
			st.Squelched++
		}
		s.mu.Unlock()
		s.surveySpectrum(seq, block)
		return
	}

	// the block buffer belongs to the source until every channel is done
	var wg sync.WaitGroup
	for ch := s.rx.Channels.Low; ch <= s.rx.Channels.High; ch++ {
		wg.Add(1)
		jobs <- job{seq: seq, ch: ch, block: block, basicRate: basicRate, wg: &wg}
	}
	wg.Wait()

	s.mu.Lock()
	s.blocks++
	if !basicRate {
		s.squelchedBlocks++
	}
	s.mu.Unlock()
	s.surveySpectrum(seq, block)
}

func (s *Scanner) surveySpectrum(seq int, block []complex64) {
	if s.analyzer == nil || seq%s.conf.SpectrumEvery != 0 {
		return
	}
	powers := s.analyzer.Survey(block)
	if powers == nil {
		return
	}
	s.mu.Lock()
	s.spectrum = powers
	s.mu.Unlock()
}

func (s *Scanner) worker(p *demod.Pipeline, jobs <-chan job) {
	for j := range jobs {
		s.processChannel(p, j)
		j.wg.Done()
	}
}

// processChannel gates classic channels on squelch then SNR, and LE
// channels on their squelch alone.
func (s *Scanner) processChannel(p *demod.Pipeline, j job) {
	freq := s.rx.ChannelAbsFreq(j.ch)
	lowEnergy := s.conf.LowEnergy && s.rx.CheckLowEnergySquelch(freq, j.block)
	if !j.basicRate && !lowEnergy {
		s.update(j.ch, func(st *ChannelStats) { st.Squelched++ })
		return
	}

	basicRate := false
	snr := math.NaN()
	if j.basicRate {
		basicRate, snr = p.CheckSNR(freq, s.rx.SNRThreshold, j.block)
		s.update(j.ch, func(st *ChannelStats) {
			st.LastSNR = snr
			if !basicRate {
				st.LowSNR++
			}
		})
	}
	if !basicRate && !lowEnergy {
		return
	}

	bits, n := p.ChannelSymbols(freq, j.block)
	if n == 0 {
		return
	}
	s.update(j.ch, func(st *ChannelStats) {
		st.Bursts++
		st.Symbols += n
		s.bursts++
	})
	s.sink.Deliver(Burst{
		Block:     j.seq,
		Channel:   j.ch,
		Freq:      freq,
		BasicRate: basicRate,
		LowEnergy: lowEnergy,
		SNR:       snr,
		Bits:      bits,
	})
}

func (s *Scanner) update(ch int, fn func(st *ChannelStats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.stats[ch])
}

// Snapshot copies the current statistics, channels in ascending order.
func (s *Scanner) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Blocks:          s.blocks,
		SquelchedBlocks: s.squelchedBlocks,
		Bursts:          s.bursts,
		Channels:        make([]ChannelStats, 0, len(s.stats)),
		Spectrum:        append([]spectrum.ChannelPower(nil), s.spectrum...),
	}
	for _, st := range s.stats {
		sum.Channels = append(sum.Channels, *st)
	}
	sort.Slice(sum.Channels, func(i, j int) bool {
		return sum.Channels[i].Channel < sum.Channels[j].Channel
	})
	return sum
}
