package zplane

import (
	"math"
	"math/cmplx"
)

// DenominatorFloor is the magnitude below which a pole's denominator term
// (1 - p/z) is clamped before division. When a pole sits exactly on an
// evaluation frequency the clamp trades exactness for a bounded, very large
// magnitude spike instead of Inf/NaN; this is defined behavior, not an error.
const DenominatorFloor = 1e-10

// Response evaluates the complex frequency response H(e^jw) at each angular
// frequency in w:
//
//	H = gain * z^-delay * Π(1 - zi/z) / Π(1 - pi/z),  z = e^jw
//
// Evaluation is element-wise and independent per frequency, so a batch call
// is identical to repeated [Filter.ResponseAt] calls over the same values.
func (f *Filter) Response(w []float64) []complex128 {
	out := make([]complex128, len(w))
	for i, wi := range w {
		out[i] = f.ResponseAt(wi)
	}
	return out
}

// ResponseAt evaluates the complex frequency response at a single angular
// frequency.
func (f *Filter) ResponseAt(w float64) complex128 {
	z := cmplx.Exp(complex(0, w))

	h := complex(f.Gain, 0)

	// Skipping the multiply at zero delay is an optimization only; z^0 = 1.
	if f.Delay != 0 {
		h *= powInt(z, -f.Delay)
	}

	for _, z0 := range f.Zeros {
		h *= 1 - z0/z
	}

	for _, p0 := range f.Poles {
		den := 1 - p0/z
		if cmplx.Abs(den) < DenominatorFloor {
			den = complex(DenominatorFloor, 0)
		}
		h /= den
	}

	return h
}

// ResponseGrid returns the uniform angular-frequency grid w_k = 2*pi*k/n for
// k = 0..n-1, covering the full unit circle.
func ResponseGrid(n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for k := range out {
		out[k] = step * float64(k)
	}
	return out
}

// powInt raises z to an integer exponent by repeated multiplication, which
// keeps small exponents exact in ways cmplx.Pow's exp/log path does not.
func powInt(z complex128, k int) complex128 {
	if k < 0 {
		return 1 / powInt(z, -k)
	}

	out := complex(1, 0)
	for range k {
		out *= z
	}
	return out
}
