package radio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// CaptureMeta is stored next to a capture as <capture>.yaml.
type CaptureMeta struct {
	SampleRate float64 `yaml:"sample_rate"`
	CenterFreq float64 `yaml:"center_freq"`
	Datatype   string  `yaml:"datatype"`
	Samples    int     `yaml:"samples,omitempty"`
	Driver     string  `yaml:"driver,omitempty"`
}

const DatatypeCF32 = "cf32_le"

func MetaPath(capturePath string) string {
	return capturePath + ".yaml"
}

func ReadMeta(capturePath string) (CaptureMeta, error) {
	var meta CaptureMeta
	raw, err := os.ReadFile(MetaPath(capturePath))
	if err != nil {
		return meta, err
	}
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("could not parse %s: %w", MetaPath(capturePath), err)
	}
	if meta.Datatype != "" && meta.Datatype != DatatypeCF32 {
		return meta, fmt.Errorf("unsupported capture datatype %q", meta.Datatype)
	}
	return meta, nil
}

func WriteMeta(capturePath string, meta CaptureMeta) error {
	if meta.Datatype == "" {
		meta.Datatype = DatatypeCF32
	}
	raw, err := yaml.Marshal(&meta)
	if err != nil {
		return err
	}
	return os.WriteFile(MetaPath(capturePath), raw, 0o644)
}

// FileSource reads interleaved little endian float32 I/Q pairs.
type FileSource struct {
	Meta CaptureMeta
	file *os.File
	rd   *bufio.Reader
	raw  []byte
}

// OpenFile opens a capture. A missing sidecar leaves Meta zeroed so the
// caller's configuration applies.
func OpenFile(path string) (*FileSource, error) {
	meta, err := ReadMeta(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{Meta: meta, file: f, rd: bufio.NewReaderSize(f, 1<<20)}, nil
}

func (s *FileSource) Read(buf []complex64) (int, error) {
	// Whole samples only; a trailing partial sample is dropped.
	if cap(s.raw) < len(buf)*8 {
		s.raw = make([]byte, len(buf)*8)
	}
	raw := s.raw[:len(buf)*8]
	n, err := io.ReadFull(s.rd, raw)
	count := n / 8
	for i := 0; i < count; i++ {
		re := binary.LittleEndian.Uint32(raw[i*8:])
		im := binary.LittleEndian.Uint32(raw[i*8+4:])
		buf[i] = complex(math.Float32frombits(re), math.Float32frombits(im))
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
		if count == 0 {
			err = io.EOF
		}
	}
	return count, err
}

func (s *FileSource) Close() error {
	return s.file.Close()
}

// WriteCapture writes samples and their sidecar.
func WriteCapture(path string, meta CaptureMeta, samples []complex64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	meta.Samples = len(samples)
	return WriteMeta(path, meta)
}
