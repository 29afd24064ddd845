package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |H[k]| for each complex response sample.
//
// This function uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON). Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |H[k]|^2 for each complex response sample.
//
// This function uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON). Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(H[k]) for each complex response sample in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudeDB returns the peak-normalized magnitude of a complex response in
// dB. The response is divided by its largest magnitude (when that peak
// exceeds 1e-9) so the curve tops out at 0 dB, and a 1e-12 additive floor
// bounds the result near -240 dB instead of -Inf for exact nulls.
func MagnitudeDB(in []complex128) []float64 {
	mag := Magnitude(in)
	if len(mag) == 0 {
		return nil
	}

	peak := 0.0
	for _, v := range mag {
		if v > peak {
			peak = v
		}
	}

	scale := 1.0
	if peak > 1e-9 {
		scale = 1 / peak
	}

	out := make([]float64, len(mag))
	for i, v := range mag {
		out[i] = 20 * math.Log10(v*scale+1e-12)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelayFromPhase computes group delay in samples from unwrapped phase.
//
// The phase slice is expected over uniformly spaced frequency bins covering
// the full unit circle. fftSize is the grid size that produced those bins. A
// centered finite difference is used for interior bins, with one-sided
// differences at the endpoints.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("group delay requires at least 2 phase points: %d", len(unwrapped))
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("group delay fftSize must be > 0: %d", fftSize)
	}
	dw := 2 * math.Pi / float64(fftSize)
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}
