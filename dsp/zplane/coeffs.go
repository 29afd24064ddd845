package zplane

import (
	"math"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/core"
)

// imagResidueTol is the magnitude below which an imaginary part is treated
// as floating-point residue of a conjugate-symmetric root set.
const imagResidueTol = 1e-12

// Coefficients expands the root description into full-precision polynomial
// coefficients (b, a), ordered in descending powers of z (equivalently,
// ascending powers of z^-1). The numerator is the monic polynomial with the
// zero roots scaled by the gain; the denominator is the monic polynomial with
// the pole roots. An empty root list yields the identity polynomial [1].
//
// These are the values to feed into computation. For display, use
// [Filter.DisplayCoefficients] instead; the two must never be mixed.
func (f *Filter) Coefficients() (b, a []complex128) {
	b = polyFromRoots(f.Zeros)
	for i := range b {
		b[i] *= complex(f.Gain, 0)
	}

	a = polyFromRoots(f.Poles)
	return b, a
}

// DisplayCoefficients returns the coefficients rounded to 3 decimal digits
// in both real and imaginary parts. This output exists purely for rendering;
// feeding it back into filtering or response evaluation loses precision.
func (f *Filter) DisplayCoefficients() (b, a []complex128) {
	b, a = f.Coefficients()
	for i := range b {
		b[i] = round3(b[i])
	}
	for i := range a {
		a[i] = round3(a[i])
	}
	return b, a
}

// RealCoefficients returns the full-precision coefficients with imaginary
// parts discarded, for use with the real-valued difference-equation filter.
// For conjugate-symmetric root sets the imaginary parts are pure
// floating-point residue; residue above 1e-12 is zeroed all the same, which
// is only meaningful for deliberately complex filters.
func (f *Filter) RealCoefficients() (b, a []float64) {
	cb, ca := f.Coefficients()

	b = make([]float64, len(cb))
	for i, c := range cb {
		b[i] = real(c)
	}

	a = make([]float64, len(ca))
	for i, c := range ca {
		a[i] = real(c)
	}

	return b, a
}

// polyFromRoots expands Π(z - r) into monic coefficients in descending power
// order by iterated convolution with (1, -r).
func polyFromRoots(roots []complex128) []complex128 {
	coeff := make([]complex128, 1, len(roots)+1)
	coeff[0] = 1

	for _, r := range roots {
		coeff = append(coeff, 0)
		for i := len(coeff) - 1; i >= 1; i-- {
			coeff[i] -= r * coeff[i-1]
		}
	}

	// Conjugate-symmetric roots leave tiny imaginary residue; flush it so
	// real filters display and filter as real.
	for i, c := range coeff {
		if core.NearlyEqual(imag(c), 0, imagResidueTol) {
			coeff[i] = complex(real(c), 0)
		}
	}

	return coeff
}

func round3(c complex128) complex128 {
	return complex(math.Round(real(c)*1000)/1000, math.Round(imag(c)*1000)/1000)
}
