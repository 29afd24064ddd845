// Package iir applies rational transfer functions to sample sequences via
// the direct-form difference equation.
package iir

import "errors"

// Filtering errors.
var (
	ErrEmptyCoefficients      = errors.New("iir: coefficient slices must not be empty")
	ErrZeroLeadingCoefficient = errors.New("iir: denominator a[0] must not be zero")
)

// Apply filters x through the transfer function described by numerator
// coefficients b and denominator coefficients a, returning an output of the
// same length as x:
//
//	y[n] = (1/a[0]) * ( sum_k b[k]*x[n-k] - sum_{m>=1} a[m]*y[n-m] )
//
// The recursion starts from all-zero initial conditions; references before
// n=0 read as zero. When a[0] is neither 0 nor 1, both coefficient sets are
// normalized by a[0] up front (the caller's slices are not modified). A zero
// a[0] is a contract violation and fails with ErrZeroLeadingCoefficient
// rather than propagating NaN into the output.
//
// The output is computed in strictly increasing n order, with the full
// feedforward sum accumulated in ascending k before the feedback sum is
// subtracted in ascending m. This fixed accumulation order keeps results
// bit-reproducible.
func Apply(b, a, x []float64) ([]float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}

	if a[0] == 0 {
		return nil, ErrZeroLeadingCoefficient
	}

	if a[0] != 1 {
		inv := 1 / a[0]

		bn := make([]float64, len(b))
		for i, v := range b {
			bn[i] = v * inv
		}

		an := make([]float64, len(a))
		for i, v := range a {
			an[i] = v * inv
		}

		b, a = bn, an
	}

	y := make([]float64, len(x))

	for n := range x {
		acc := 0.0

		for k, bk := range b {
			if n-k < 0 {
				break
			}

			acc += bk * x[n-k]
		}

		for m := 1; m < len(a); m++ {
			if n-m < 0 {
				break
			}

			acc -= a[m] * y[n-m]
		}

		y[n] = acc
	}

	return y, nil
}

// AlignDelay circularly shifts y by delay samples and zeroes the samples the
// shift wrapped around, so a pure z^-delay factor shows up as a plain time
// shift instead of wrapped content. Positive delay moves samples toward
// higher indices. The input slice is not modified.
func AlignDelay(y []float64, delay int) []float64 {
	out := make([]float64, len(y))
	if len(y) == 0 {
		return out
	}

	if delay <= -len(y) || delay >= len(y) {
		return out
	}

	n := len(y)
	for i := range y {
		out[(i+delay%n+n)%n] = y[i]
	}

	if delay > 0 {
		for i := range delay {
			out[i] = 0
		}
	} else if delay < 0 {
		for i := n + delay; i < n; i++ {
			out[i] = 0
		}
	}

	return out
}
