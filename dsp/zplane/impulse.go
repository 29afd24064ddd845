package zplane

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/signal"
)

// ErrInvalidFFTSize is returned when an impulse-response length is not one
// of the supported grid sizes.
var ErrInvalidFFTSize = errors.New("zplane: unsupported impulse response length")

// DefaultFFTSize is the impulse-response grid size used by a fresh tool.
const DefaultFFTSize = 64

var fftSizes = []int{64, 128, 256, 512, 1024, 2048}

// FFTSizes returns the supported impulse-response grid sizes.
func FFTSizes() []int {
	out := make([]int, len(fftSizes))
	copy(out, fftSizes)
	return out
}

// ImpulseResponse recovers a length-n impulse response by evaluating the
// frequency response on a uniform n-point grid around the full unit circle
// and inverse-transforming it. Because the response is sampled on the unit
// circle instead of iterating the difference equation through time, the
// result stays bounded even for unstable and marginally stable filters.
//
// The returned index array is the symmetric range [-n/2, n/2), paired
// one-to-one with h; the causal sample sits at index 0 in the center. The
// imaginary residue of the inverse transform is discarded, so deliberately
// complex-valued impulse responses are not representable here.
//
// The result is a circular (aliased) approximation of the true infinite
// response: for non-FIR filters the tail wraps around the grid, so treat it
// as a visualization, not the exact infinite-length response. n must be one
// of [FFTSizes].
func (f *Filter) ImpulseResponse(n int) (idx, h []float64, err error) {
	valid := false
	for _, s := range fftSizes {
		if n == s {
			valid = true
			break
		}
	}
	if !valid {
		return nil, nil, fmt.Errorf("%w: %d (want one of %v)", ErrInvalidFFTSize, n, fftSizes)
	}

	resp := f.Response(ResponseGrid(n))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("zplane: failed to create FFT plan: %w", err)
	}

	timeSeq := make([]complex128, n)
	if err := plan.Inverse(timeSeq, resp); err != nil {
		return nil, nil, err
	}

	// fftshift: relocate the causal sample at transform index 0 to the
	// center of the output, then keep only the real part.
	h = make([]float64, n)
	half := n / 2
	for i := range h {
		h[i] = real(timeSeq[(i+half)%n])
	}

	return signal.IndexRange(-half, half), h, nil
}
