package demod

// Stage is one step of the per-channel pipeline. Process consumes in and
// writes at most len(out) items, returning how many it wrote. History is
// the number of input items a stage needs ahead of its first output.
type Stage[In, Out any] interface {
	Process(in []In, out []Out) int
	History() int
}

var (
	_ Stage[complex64, complex64] = (*Channelizer)(nil)
	_ Stage[complex64, float32]   = (*QuadDemod)(nil)
	_ Stage[float32, float32]     = (*ClockRecoveryMM)(nil)
	_ Stage[float32, byte]        = Slicer{}
)

func grow[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
