package radio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource hands out at most step samples per Read.
type sliceSource struct {
	samples []complex64
	step    int
}

func (s *sliceSource) Read(buf []complex64) (int, error) {
	if len(s.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(buf[:min(len(buf), s.step)], s.samples)
	s.samples = s.samples[n:]
	return n, nil
}

func ramp(n int) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(float32(i), float32(-i))
	}
	return out
}

func TestFeederCarriesHistory(t *testing.T) {
	src := &sliceSource{samples: ramp(100), step: 7}
	f := NewFeeder(src, 10, 30)
	assert.Equal(t, 10, f.History())

	block, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, ramp(40), block)

	block, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, ramp(70)[30:], block)

	// the stream ends exactly on a block boundary
	block, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, ramp(100)[60:], block)

	_, err = f.Next()
	assert.True(t, errors.Is(err, io.EOF))
	_, err = f.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestFeederWithholdsShortStream(t *testing.T) {
	f := NewFeeder(&sliceSource{samples: ramp(10), step: 100}, 10, 30)
	_, err := f.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

type failingSource struct{}

func (failingSource) Read([]complex64) (int, error) {
	return 0, errors.New("device gone")
}

func TestFeederPropagatesErrors(t *testing.T) {
	f := NewFeeder(failingSource{}, 4, 4)
	_, err := f.Next()
	assert.EqualError(t, err, "device gone")
}

func TestCaptureRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cf32")
	meta := CaptureMeta{SampleRate: 4e6, CenterFreq: 2441e6, Driver: "test"}
	require.NoError(t, WriteCapture(path, meta, ramp(1000)))

	src, err := OpenFile(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 4e6, src.Meta.SampleRate)
	assert.Equal(t, 2441e6, src.Meta.CenterFreq)
	assert.Equal(t, DatatypeCF32, src.Meta.Datatype)
	assert.Equal(t, 1000, src.Meta.Samples)

	f := NewFeeder(src, 100, 400)
	var got []complex64
	first := true
	for {
		block, err := f.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		if first {
			got = append(got, block...)
			first = false
		} else {
			got = append(got, block[100:]...)
		}
	}
	assert.Equal(t, ramp(1000), got)
}

func TestOpenFileWithoutSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.cf32")
	require.NoError(t, WriteCapture(path, CaptureMeta{}, ramp(3)))
	require.NoError(t, os.Remove(MetaPath(path)))

	src, err := OpenFile(path)
	require.NoError(t, err)
	defer src.Close()
	assert.Zero(t, src.Meta.SampleRate)

	buf := make([]complex64, 8)
	n, err := src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, ramp(3), buf[:n])

	_, err = src.Read(buf)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReadMetaRejectsDatatype(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cu8.bin")
	require.NoError(t, WriteMeta(path, CaptureMeta{SampleRate: 2e6, Datatype: "cu8"}))
	_, err := ReadMeta(path)
	assert.Error(t, err)
}

func TestDeviceArgsSelectsIndex(t *testing.T) {
	found := []map[string]string{
		{"driver": "rtlsdr", "serial": "00000001"},
		{"driver": "rtlsdr", "serial": "00000002"},
	}
	args, err := deviceArgs("rtlsdr", "", 1, found)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"driver": "rtlsdr", "serial": "00000002"}, args)

	// the enumerated entry is not modified
	args["serial"] = "x"
	assert.Equal(t, "00000002", found[1]["serial"])

	_, err = deviceArgs("rtlsdr", "", 2, found)
	assert.Error(t, err)
	_, err = deviceArgs("hackrf", "", 0, nil)
	assert.Error(t, err)
}

func TestDeviceArgsRTLTCP(t *testing.T) {
	args, err := deviceArgs("rtltcp", "10.0.0.2:1234", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"driver": "rtltcp", "rtltcp": "10.0.0.2:1234"}, args)
}
