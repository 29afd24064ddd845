package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/signal"
	"github.com/CleverlyFoolish/PoZeDSP/internal/testutil"
)

func TestApplyFirstOrderStepResponse(t *testing.T) {
	// Pole at 0.5: y[n] = x[n] + 0.5*y[n-1], geometric accumulation toward 2.
	x := signal.UnitStep(signal.IndexRange(0, 5))

	y, err := Apply([]float64{1}, []float64{1, -0.5}, x)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []float64{1.0, 1.5, 1.75, 1.875, 1.9375}
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}

func TestApplyFIRMovingAverage(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	y, err := Apply([]float64{0.5, 0.5}, []float64{1}, x)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []float64{0.5, 1.5, 2.5, 3.5}
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}

func TestApplyNormalizesLeadingCoefficient(t *testing.T) {
	x := signal.UnitStep(signal.IndexRange(0, 5))

	// Same filter as the first-order test, scaled by 2 on both sides.
	y, err := Apply([]float64{2}, []float64{2, -1}, x)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []float64{1.0, 1.5, 1.75, 1.875, 1.9375}
	testutil.RequireSliceNearlyEqual(t, y, want, 1e-12)
}

func TestApplyDoesNotMutateCoefficients(t *testing.T) {
	b := []float64{2}
	a := []float64{2, -1}

	if _, err := Apply(b, a, []float64{1, 1}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if b[0] != 2 || a[0] != 2 || a[1] != -1 {
		t.Fatalf("coefficients mutated: b=%v a=%v", b, a)
	}
}

func TestApplyZeroLeadingCoefficient(t *testing.T) {
	_, err := Apply([]float64{1}, []float64{0, 1}, []float64{1})
	if !errors.Is(err, ErrZeroLeadingCoefficient) {
		t.Fatalf("err = %v, want ErrZeroLeadingCoefficient", err)
	}
}

func TestApplyEmptyCoefficients(t *testing.T) {
	if _, err := Apply(nil, []float64{1}, []float64{1}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Fatalf("err = %v, want ErrEmptyCoefficients", err)
	}

	if _, err := Apply([]float64{1}, nil, []float64{1}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Fatalf("err = %v, want ErrEmptyCoefficients", err)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	y, err := Apply([]float64{1}, []float64{1}, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(y) != 0 {
		t.Fatalf("len = %d, want 0", len(y))
	}
}

func TestApplyUnstableFilterDiverges(t *testing.T) {
	// Pole at 2: direct simulation grows as 2^n. This is the behavior the
	// frequency-domain impulse recovery exists to avoid.
	x := signal.Impulse(signal.IndexRange(0, 10))

	y, err := Apply([]float64{1}, []float64{1, -2}, x)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if math.Abs(y[9]-512) > 1e-9 {
		t.Fatalf("y[9] = %v, want 512", y[9])
	}
}

func TestAlignDelayPositive(t *testing.T) {
	y := []float64{1, 2, 3, 4}

	got := AlignDelay(y, 1)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2, 3}, 0)
}

func TestAlignDelayNegative(t *testing.T) {
	y := []float64{1, 2, 3, 4}

	got := AlignDelay(y, -2)
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 4, 0, 0}, 0)
}

func TestAlignDelayZero(t *testing.T) {
	y := []float64{1, 2, 3}

	got := AlignDelay(y, 0)
	testutil.RequireSliceNearlyEqual(t, got, y, 0)
}

func TestAlignDelayExceedsLength(t *testing.T) {
	got := AlignDelay([]float64{1, 2}, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0}, 0)
}
