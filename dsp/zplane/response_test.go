package zplane

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponseAtDC(t *testing.T) {
	f := New()
	f.AddZero(0.3+0.2i, false)
	f.AddPole(0.5, false)
	f.Gain = 1.7

	// At w=0, z=1: H = gain * (1-z0) / (1-p0).
	want := complex(1.7, 0) * (1 - (0.3 + 0.2i)) / complex(0.5, 0)

	got := f.ResponseAt(0)
	if cmplx.Abs(got-want) > 1e-12 {
		t.Fatalf("H(0) = %v, want %v", got, want)
	}
}

func TestResponsePureGainAndDelay(t *testing.T) {
	f := New()
	f.Gain = 2
	f.Delay = 1

	// H(w) = 2*e^{-jw}; at w=pi/2 this is -2j.
	got := f.ResponseAt(math.Pi / 2)
	if cmplx.Abs(got-(-2i)) > 1e-12 {
		t.Fatalf("H(pi/2) = %v, want -2j", got)
	}
}

func TestResponseNegativeDelayAdvances(t *testing.T) {
	f := New()
	f.Delay = -1

	// H(w) = e^{+jw}; at w=pi/2 this is +j.
	got := f.ResponseAt(math.Pi / 2)
	if cmplx.Abs(got-1i) > 1e-12 {
		t.Fatalf("H(pi/2) = %v, want j", got)
	}
}

func TestResponseZeroDelaySkipsNothing(t *testing.T) {
	f := New()
	f.Gain = 3

	for _, w := range []float64{-math.Pi, -1, 0, 1, math.Pi} {
		if got := f.ResponseAt(w); cmplx.Abs(got-3) > 1e-12 {
			t.Fatalf("H(%v) = %v, want 3", w, got)
		}
	}
}

func TestResponseBatchMatchesScalar(t *testing.T) {
	f := New()
	f.AddZero(0.5+0.5i, true)
	f.AddPole(0.9, false)
	f.Gain = 0.7
	f.Delay = 2

	w := make([]float64, 33)
	for i := range w {
		w[i] = -math.Pi + 2*math.Pi*float64(i)/32
	}

	batch := f.Response(w)
	for i, wi := range w {
		if batch[i] != f.ResponseAt(wi) {
			t.Fatalf("batch[%d] != scalar at w=%v", i, wi)
		}
	}
}

func TestResponsePoleOnGridClamped(t *testing.T) {
	f := New()
	f.AddPole(1, false)

	// Pole exactly at z=1: the denominator term is clamped to the floor, so
	// the response is a huge but finite spike, not Inf/NaN.
	got := f.ResponseAt(0)

	mag := cmplx.Abs(got)
	if math.IsInf(mag, 0) || math.IsNaN(mag) {
		t.Fatalf("clamp failed, got %v", got)
	}

	if math.Abs(mag-1/DenominatorFloor) > 1e-3/DenominatorFloor {
		t.Fatalf("magnitude = %v, want about %v", mag, 1/DenominatorFloor)
	}
}

func TestResponseNearPoleUnclamped(t *testing.T) {
	f := New()
	f.AddPole(0.999, false)

	// Near but not on the pole: no clamping, just a large finite value.
	got := cmplx.Abs(f.ResponseAt(0))
	want := 1 / (1 - 0.999)

	if math.Abs(got-want) > 1e-6*want {
		t.Fatalf("magnitude = %v, want %v", got, want)
	}
}

func TestResponseGrid(t *testing.T) {
	w := ResponseGrid(4)

	want := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-15 {
			t.Fatalf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}
