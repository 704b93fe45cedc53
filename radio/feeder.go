package radio

import (
	"errors"
	"io"
)

// Feeder cuts a sample stream into blocks that each begin with the last
// history samples of the previous block, followed by chunk new samples.
type Feeder struct {
	src     Source
	history int
	chunk   int
	buf     []complex64
	filled  int
	done    bool
}

func NewFeeder(src Source, history, chunk int) *Feeder {
	return &Feeder{
		src:     src,
		history: history,
		chunk:   chunk,
		buf:     make([]complex64, history+chunk),
	}
}

func (f *Feeder) History() int {
	return f.history
}

// Next returns the next block. The first block is only delivered once the
// history is full. The returned slice is overwritten by the following call.
// At the end of the stream a shorter final block may precede io.EOF.
func (f *Feeder) Next() ([]complex64, error) {
	if f.done {
		return nil, io.EOF
	}

	if f.filled == len(f.buf) {
		copy(f.buf, f.buf[len(f.buf)-f.history:])
		f.filled = f.history
	}
	start := f.filled

	for f.filled < len(f.buf) {
		n, err := f.src.Read(f.buf[f.filled:])
		f.filled += n
		if errors.Is(err, io.EOF) {
			f.done = true
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if f.filled <= f.history || f.filled == start {
		return nil, io.EOF
	}
	return f.buf[:f.filled], nil
}
