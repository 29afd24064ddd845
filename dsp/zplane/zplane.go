package zplane

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/CleverlyFoolish/PoZeDSP/internal/polyroot"
)

// RootKind distinguishes numerator from denominator roots.
type RootKind int

// Root kinds.
const (
	KindZero RootKind = iota
	KindPole
)

func (k RootKind) String() string {
	if k == KindZero {
		return "zero"
	}
	return "pole"
}

const (
	// DefaultMatchRadius is the hit-test distance used when correlating a
	// z-plane position with an existing root.
	DefaultMatchRadius = 0.2

	// conjImagMin is the minimum |imag| for a root to receive an automatic
	// conjugate partner; roots closer to the real axis are treated as real.
	conjImagMin = 0.05
)

// Filter describes a filter by its z-plane roots, a scalar gain, and an
// integer delay exponent. The zero-value Filter is not useful; use [New].
//
// Root order is stable under editing so callers can correlate per-root
// display state by index.
type Filter struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
	Delay int
}

// New returns an identity filter: no roots, unit gain, zero delay.
func New() Filter {
	return Filter{Gain: 1}
}

// Reset restores the identity filter, dropping all roots.
func (f *Filter) Reset() {
	f.Zeros = f.Zeros[:0]
	f.Poles = f.Poles[:0]
	f.Gain = 1
	f.Delay = 0
}

// Order returns the numerator and denominator polynomial degrees.
func (f *Filter) Order() (numerator, denominator int) {
	return len(f.Zeros), len(f.Poles)
}

// AddZero appends a zero. With conjugate set, a conjugate partner is also
// appended when the root sits far enough from the real axis to need one.
func (f *Filter) AddZero(z complex128, conjugate bool) {
	f.Zeros = addRoot(f.Zeros, z, conjugate)
}

// AddPole appends a pole. With conjugate set, a conjugate partner is also
// appended when the root sits far enough from the real axis to need one.
func (f *Filter) AddPole(p complex128, conjugate bool) {
	f.Poles = addRoot(f.Poles, p, conjugate)
}

func addRoot(roots []complex128, z complex128, conjugate bool) []complex128 {
	roots = append(roots, z)
	if conjugate && math.Abs(imag(z)) > conjImagMin {
		roots = append(roots, cmplx.Conj(z))
	}
	return roots
}

// MoveZero relocates the zero at index i. With conjugate set, the partner
// root closest to the old value's conjugate (within [DefaultMatchRadius]) is
// moved to mirror the new position.
func (f *Filter) MoveZero(i int, z complex128, conjugate bool) error {
	return moveRoot(f.Zeros, KindZero, i, z, conjugate)
}

// MovePole relocates the pole at index i. With conjugate set, the partner
// root closest to the old value's conjugate (within [DefaultMatchRadius]) is
// moved to mirror the new position.
func (f *Filter) MovePole(i int, p complex128, conjugate bool) error {
	return moveRoot(f.Poles, KindPole, i, p, conjugate)
}

func moveRoot(roots []complex128, kind RootKind, i int, z complex128, conjugate bool) error {
	if i < 0 || i >= len(roots) {
		return fmt.Errorf("zplane: %s index %d out of range [0,%d)", kind, i, len(roots))
	}

	old := roots[i]
	roots[i] = z

	if !conjugate {
		return nil
	}

	pair := polyroot.ClosestConjugate(old, roots, i)
	if pair < 0 {
		return nil
	}

	if cmplx.Abs(roots[pair]-cmplx.Conj(old)) < DefaultMatchRadius {
		roots[pair] = cmplx.Conj(z)
	}

	return nil
}

// RemoveZero deletes the zero at index i, preserving the order of the rest.
func (f *Filter) RemoveZero(i int) error {
	roots, err := removeRoot(f.Zeros, KindZero, i)
	if err != nil {
		return err
	}
	f.Zeros = roots
	return nil
}

// RemovePole deletes the pole at index i, preserving the order of the rest.
func (f *Filter) RemovePole(i int) error {
	roots, err := removeRoot(f.Poles, KindPole, i)
	if err != nil {
		return err
	}
	f.Poles = roots
	return nil
}

func removeRoot(roots []complex128, kind RootKind, i int) ([]complex128, error) {
	if i < 0 || i >= len(roots) {
		return nil, fmt.Errorf("zplane: %s index %d out of range [0,%d)", kind, i, len(roots))
	}
	return append(roots[:i], roots[i+1:]...), nil
}

// FindRoot correlates a z-plane position with an existing root. Zeros are
// scanned before poles, in list order, and the first root within tol wins;
// this matches how an interactive layer resolves clicks near stacked roots.
// The boolean result reports whether any root matched.
func (f *Filter) FindRoot(z complex128, tol float64) (RootKind, int, bool) {
	if tol <= 0 {
		tol = DefaultMatchRadius
	}

	for i, r := range f.Zeros {
		if cmplx.Abs(z-r) < tol {
			return KindZero, i, true
		}
	}

	for i, r := range f.Poles {
		if cmplx.Abs(z-r) < tol {
			return KindPole, i, true
		}
	}

	return KindZero, 0, false
}

// IsStable reports whether every pole lies strictly inside the unit circle.
// A positive delay only adds poles at the origin and never affects stability.
func (f *Filter) IsStable() bool {
	for _, p := range f.Poles {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}
	return true
}
