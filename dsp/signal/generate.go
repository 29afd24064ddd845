// Package signal provides discrete test-signal generators over integer
// sample-index arrays.
//
// All generators are total, element-wise functions: given an index array they
// return a real-valued array of identical length, with no error conditions.
// Index arrays are []float64 so generated signals compose directly with
// arithmetic on the same array (e.g. n*UnitStep(n)).
package signal

import "math"

// IndexRange returns the integer index array [lo, hi) as float64 values.
func IndexRange(lo, hi int) []float64 {
	if hi <= lo {
		return []float64{}
	}

	out := make([]float64, hi-lo)
	for i := range out {
		out[i] = float64(lo + i)
	}

	return out
}

// UnitStep generates u[n] = 1 for n >= 0, else 0.
func UnitStep(n []float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if v >= 0 {
			out[i] = 1
		}
	}

	return out
}

// Impulse generates delta[n] = 1 for n == 0, else 0. The comparison uses a
// 1e-9 window so non-integer index arrays behave like their rounded values.
func Impulse(n []float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if math.Abs(v) < 1e-9 {
			out[i] = 1
		}
	}

	return out
}

// Ramp generates r[n] = n * u[n].
func Ramp(n []float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if v >= 0 {
			out[i] = v
		}
	}

	return out
}

// Rect generates a rectangular pulse: 1 for 0 <= n < width, else 0.
func Rect(n []float64, width float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if v >= 0 && v < width {
			out[i] = 1
		}
	}

	return out
}

// Sinc generates the normalized sinc function sin(pi*n)/(pi*n), with
// Sinc(0) = 1.
func Sinc(n []float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if math.Abs(v) < 1e-9 {
			out[i] = 1
			continue
		}

		x := math.Pi * v
		out[i] = math.Sin(x) / x
	}

	return out
}

// PulseTrain generates count unit pulses starting at index start, spaced
// spacing samples apart. A non-positive spacing or count yields all zeros.
func PulseTrain(n []float64, start float64, spacing float64, count int) []float64 {
	out := make([]float64, len(n))
	if spacing <= 0 || count <= 0 {
		return out
	}

	for i, v := range n {
		d := v - start
		if d < 0 {
			continue
		}

		k := math.Round(d / spacing)
		if k >= float64(count) {
			continue
		}

		if math.Abs(d-k*spacing) < 1e-9 {
			out[i] = 1
		}
	}

	return out
}
