package scan

import (
	"context"
	"errors"
	"io"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/jrwynneiii/bluetuner/config"
	"github.com/jrwynneiii/bluetuner/demod"
	"github.com/jrwynneiii/bluetuner/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockList struct {
	blocks [][]complex64
	err    error
}

func (b *blockList) Next() ([]complex64, error) {
	if len(b.blocks) == 0 {
		if b.err != nil {
			return nil, b.err
		}
		return nil, io.EOF
	}
	next := b.blocks[0]
	b.blocks = b.blocks[1:]
	return next, nil
}

type collectSink struct {
	mu     sync.Mutex
	bursts []Burst
}

func (c *collectSink) Deliver(b Burst) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b.Bits = append([]byte(nil), b.Bits...)
	c.bursts = append(c.bursts, b)
}

func newReceiver(t *testing.T) *demod.Receiver {
	rx, err := demod.New(config.ReceiverConf{
		SampleRate:   4e6,
		CenterFreq:   2441e6,
		Squelch:      -20,
		SNRThreshold: 6,
		Window:       "hann",
	}, config.ClockRecoveryConf{Mu: 0.32, Alpha: 0.175, OmegaLimit: 0.005})
	require.NoError(t, err)
	return rx
}

func toneBlock(n int, cyclesPerSample float64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex64(cmplx.Rect(1, 2*math.Pi*cyclesPerSample*float64(i)))
	}
	return out
}

func repeat(block []complex64, n int) [][]complex64 {
	out := make([][]complex64, n)
	for i := range out {
		out[i] = block
	}
	return out
}

func TestScanSilence(t *testing.T) {
	rx := newReceiver(t)
	for _, lowEnergy := range []bool{false, true} {
		sink := &collectSink{}
		s := New(rx, config.ScanConf{Workers: 2, LowEnergy: lowEnergy}, sink)

		src := &blockList{blocks: repeat(make([]complex64, rx.RequiredHistory()+4000), 3)}
		require.NoError(t, s.Run(context.Background(), src))

		sum := s.Snapshot()
		assert.Equal(t, 3, sum.Blocks)
		assert.Equal(t, 3, sum.SquelchedBlocks)
		assert.Zero(t, sum.Bursts)
		require.Len(t, sum.Channels, 3)
		for _, st := range sum.Channels {
			assert.Equal(t, 3, st.Squelched, "channel %d", st.Channel)
			assert.Zero(t, st.Bursts)
		}
		assert.Empty(t, sink.bursts)
	}
}

func TestScanTone(t *testing.T) {
	rx := newReceiver(t)
	sink := &collectSink{}
	s := New(rx, config.ScanConf{Workers: 3, LowEnergy: true, SpectrumEvery: 1}, sink)

	// 0.25 cycles per sample lands on channel 40, 1 MHz above center
	src := &blockList{blocks: repeat(toneBlock(rx.RequiredHistory()+4000, 0.25), 4)}
	require.NoError(t, s.Run(context.Background(), src))

	sum := s.Snapshot()
	assert.Equal(t, 4, sum.Blocks)
	assert.Zero(t, sum.SquelchedBlocks)
	assert.Equal(t, []int{38, 39, 40}, []int{sum.Channels[0].Channel, sum.Channels[1].Channel, sum.Channels[2].Channel})

	ch40 := sum.Channels[2]
	assert.Equal(t, 2442e6, ch40.Freq)
	assert.Equal(t, 4, ch40.Bursts)
	assert.Positive(t, ch40.Symbols)
	assert.Greater(t, ch40.LastSNR, 6.0)

	var delivered int
	for _, b := range sink.bursts {
		if b.Channel == 40 {
			delivered++
			assert.True(t, b.LowEnergy)
			assert.NotEmpty(t, b.Bits)
		}
	}
	assert.Equal(t, 4, delivered)
	assert.Equal(t, len(sink.bursts), sum.Bursts)

	best, ok := spectrum.Strongest(sum.Spectrum)
	require.True(t, ok)
	assert.Equal(t, 40, best.Channel)
}

func TestScanStopsOnCancel(t *testing.T) {
	rx := newReceiver(t)
	s := New(rx, config.ScanConf{Workers: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &blockList{blocks: repeat(make([]complex64, rx.RequiredHistory()), 2)}
	err := s.Run(ctx, src)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, s.Snapshot().Blocks)
}

func TestScanPropagatesSourceErrors(t *testing.T) {
	rx := newReceiver(t)
	s := New(rx, config.ScanConf{Workers: 1}, nil)

	src := &blockList{blocks: repeat(make([]complex64, rx.RequiredHistory()), 1), err: errors.New("overflow")}
	err := s.Run(context.Background(), src)
	assert.EqualError(t, err, "overflow")
	assert.Equal(t, 1, s.Snapshot().Blocks)
}

// twoTones puts equal tones on channel 40 and on its SNR valley, so the
// classic SNR check sees about 0 dB.
func twoTones(n int, amplitude float64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		x := cmplx.Rect(amplitude, 2*math.Pi*0.25*float64(i)) +
			cmplx.Rect(amplitude, 2*math.Pi*(1e6+demod.ValleyOffset)/4e6*float64(i))
		out[i] = complex64(x)
	}
	return out
}

func TestScanLowEnergySkipsSNR(t *testing.T) {
	for _, tc := range []struct {
		name      string
		amplitude float64
		basicRate bool
	}{
		{"le squelch only", 0.02, false},
		{"both squelches", 0.1, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rx := newReceiver(t)
			block := twoTones(rx.RequiredHistory()+4000, tc.amplitude)
			require.Equal(t, tc.basicRate, rx.CheckBasicRateSquelch(block))
			require.True(t, rx.CheckLowEnergySquelch(2442e6, block))
			ok, snr := rx.CheckSNR(2442e6, rx.SNRThreshold, block)
			require.False(t, ok)
			require.InDelta(t, 0, snr, 3)

			sink := &collectSink{}
			s := New(rx, config.ScanConf{Workers: 2, LowEnergy: true}, sink)
			require.NoError(t, s.Run(context.Background(), &blockList{blocks: repeat(block, 1)}))

			var got []Burst
			for _, b := range sink.bursts {
				if b.Channel == 40 {
					got = append(got, b)
				}
			}
			require.Len(t, got, 1)
			assert.True(t, got[0].LowEnergy)
			assert.False(t, got[0].BasicRate)
			assert.NotEmpty(t, got[0].Bits)
			if tc.basicRate {
				assert.InDelta(t, 0, got[0].SNR, 3)
			} else {
				assert.True(t, math.IsNaN(got[0].SNR))
			}

			ch40 := s.Snapshot().Channels[2]
			assert.Equal(t, 40, ch40.Channel)
			assert.Equal(t, 1, ch40.Bursts)
			if tc.basicRate {
				assert.Equal(t, 1, ch40.LowSNR)
			} else {
				assert.Zero(t, ch40.LowSNR)
			}
		})
	}
}

func TestScanLowEnergyDisabled(t *testing.T) {
	rx := newReceiver(t)
	sink := &collectSink{}
	s := New(rx, config.ScanConf{Workers: 1}, sink)

	block := twoTones(rx.RequiredHistory()+4000, 0.02)
	require.NoError(t, s.Run(context.Background(), &blockList{blocks: repeat(block, 1)}))
	assert.Empty(t, sink.bursts)
	assert.Equal(t, 1, s.Snapshot().SquelchedBlocks)
}
