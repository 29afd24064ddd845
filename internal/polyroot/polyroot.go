// Package polyroot provides polynomial root-finding and conjugate-pair
// utilities shared by the z-plane filter packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all coefficients zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// leadingTol is the magnitude below which a leading coefficient is treated
// as zero and stripped before root finding.
const leadingTol = 1e-14

// Roots finds all roots of a polynomial with coefficients in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
// Leading near-zero coefficients are stripped, and trailing zero
// coefficients are factored out as explicit roots at the origin. A constant
// polynomial has no roots and returns an empty slice.
func Roots(coeff []complex128) ([]complex128, error) {
	start := 0
	for start < len(coeff) && cmplx.Abs(coeff[start]) < leadingTol {
		start++
	}

	trimmed := coeff[start:]
	if len(trimmed) == 0 {
		return nil, ErrDegeneratePolynomial
	}

	// Trailing zero coefficients each contribute one root at z=0.
	end := len(trimmed)
	originRoots := 0
	for end > 1 && trimmed[end-1] == 0 {
		end--
		originRoots++
	}

	trimmed = trimmed[:end]

	roots := make([]complex128, 0, len(trimmed)-1+originRoots)
	for range originRoots {
		roots = append(roots, 0)
	}

	switch len(trimmed) {
	case 1:
		return roots, nil
	case 2:
		return append(roots, -trimmed[1]/trimmed[0]), nil
	}

	found, err := DurandKerner(trimmed)
	if err != nil {
		return nil, err
	}

	return append(roots, found...), nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// ClosestConjugate returns the index of the entry in candidates closest to
// the conjugate of root, skipping the index self. Returns -1 when candidates
// has no other entries.
func ClosestConjugate(root complex128, candidates []complex128, self int) int {
	conj := cmplx.Conj(root)
	best := -1
	bestDist := math.MaxFloat64

	for i, c := range candidates {
		if i == self {
			continue
		}

		d := cmplx.Abs(c - conj)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}
