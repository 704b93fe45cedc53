package firdes

import (
	"fmt"
	"math"
	"strings"

	"github.com/racerxdl/segdsp/dsp"
)

type Window int

const (
	WindowHann Window = iota
	WindowHamming
)

func (w Window) String() string {
	switch w {
	case WindowHann:
		return "hann"
	case WindowHamming:
		return "hamming"
	}
	return fmt.Sprintf("window(%d)", int(w))
}

func ParseWindow(name string) (Window, error) {
	switch strings.ToLower(name) {
	case "", "hann":
		return WindowHann, nil
	case "hamming":
		return WindowHamming, nil
	}
	return WindowHann, fmt.Errorf("unknown filter window %q", name)
}

// Kernel is a linear phase FIR kernel, h[i] == h[len-1-i].
type Kernel []float32

// Delay is the group delay of the kernel in samples.
func (k Kernel) Delay() int {
	return (len(k) - 1) / 2
}

// Hann windows reach 44 dB of stopband attenuation.
const hannAttenuation = 44.0

// NumTaps returns the kernel length used for a transition width, always odd.
func NumTaps(sampleRate, transitionWidth float64) int {
	ntaps := int(hannAttenuation * sampleRate / (22.0 * transitionWidth))
	if ntaps&1 == 0 {
		ntaps++
	}
	return ntaps
}

// LowPass designs a windowed-sinc low pass kernel with the given passband
// gain. Identical arguments always give identical kernels.
func LowPass(gain, sampleRate, cutoff, transitionWidth float64, window Window) (Kernel, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %f", sampleRate)
	}
	if cutoff <= 0 || cutoff > sampleRate/2 {
		return nil, fmt.Errorf("cutoff %f outside (0, %f]", cutoff, sampleRate/2)
	}
	if transitionWidth <= 0 {
		return nil, fmt.Errorf("transition width must be positive, got %f", transitionWidth)
	}

	switch window {
	case WindowHann:
		return hannLowPass(gain, sampleRate, cutoff, transitionWidth), nil
	case WindowHamming:
		return symmetrize(dsp.MakeLowPass(gain, sampleRate, cutoff, transitionWidth)), nil
	}
	return nil, fmt.Errorf("unsupported window %v", window)
}

func hannLowPass(gain, sampleRate, cutoff, transitionWidth float64) Kernel {
	ntaps := NumTaps(sampleRate, transitionWidth)
	m := (ntaps - 1) / 2
	fwT0 := 2 * math.Pi * cutoff / sampleRate

	// Only one half is computed so both sides are bit-identical.
	half := make([]float64, m+1)
	half[0] = fwT0 / math.Pi
	for n := 1; n <= m; n++ {
		w := 0.5 + 0.5*math.Cos(math.Pi*float64(n)/float64(m))
		half[n] = math.Sin(float64(n)*fwT0) / (float64(n) * math.Pi) * w
	}

	// Normalize for the requested gain at DC
	fmax := half[0]
	for n := 1; n <= m; n++ {
		fmax += 2 * half[n]
	}
	scale := gain / fmax

	taps := make(Kernel, ntaps)
	for n := 0; n <= m; n++ {
		v := float32(half[n] * scale)
		taps[m+n] = v
		taps[m-n] = v
	}
	return taps
}

func symmetrize(taps []float32) Kernel {
	k := make(Kernel, len(taps))
	copy(k, taps)
	for i, j := 0, len(k)-1; i < j; i, j = i+1, j-1 {
		v := (k[i] + k[j]) / 2
		k[i] = v
		k[j] = v
	}
	return k
}
