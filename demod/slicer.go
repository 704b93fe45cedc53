package demod

// Slicer makes a hard decision on each real sample: 1 for >= 0, else 0.
type Slicer struct{}

func (Slicer) Process(in []float32, out []byte) int {
	n := min(len(in), len(out))
	for i := 0; i < n; i++ {
		if in[i] < 0 {
			out[i] = 0
		} else {
			out[i] = 1
		}
	}
	return n
}

func (Slicer) History() int {
	return 0
}
