package zplane

import (
	"errors"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/CleverlyFoolish/PoZeDSP/internal/testutil"
)

func TestParseComplexList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []complex128
	}{
		{"empty", "", []complex128{}},
		{"whitespace only", "  \t ", []complex128{}},
		{"reals", "1, -0.5", []complex128{1, -0.5}},
		{"complex j suffix", "1+2j, 3", []complex128{1 + 2i, 3}},
		{"complex i suffix", "1+2i", []complex128{1 + 2i}},
		{"parenthesized", "(0.5-0.5j), 1", []complex128{0.5 - 0.5i, 1}},
		{"embedded spaces", " 1 , 2 ", []complex128{1, 2}},
		{"empty items skipped", "1,,2,", []complex128{1, 2}},
		{"exponent form", "1e-3, 2.5e2", []complex128{0.001, 250}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseComplexList(tc.in)
			if err != nil {
				t.Fatalf("ParseComplexList(%q) error = %v", tc.in, err)
			}
			testutil.RequireComplexSliceNearlyEqual(t, got, tc.want, 0)
		})
	}
}

func TestParseComplexListStrict(t *testing.T) {
	// One bad token fails the whole list, and every bad token is reported.
	_, err := ParseComplexList("1, bogus, 2, also bad")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}

	if len(perr.Bad) != 2 || perr.Bad[0] != "bogus" || perr.Bad[1] != "also bad" {
		t.Fatalf("Bad = %v, want [bogus, also bad]", perr.Bad)
	}

	msg := perr.Error()
	if !strings.Contains(msg, "bogus") || !strings.Contains(msg, "also bad") {
		t.Fatalf("error message does not list bad tokens: %q", msg)
	}
}

func TestFromCoefficients(t *testing.T) {
	f, err := FromCoefficients([]complex128{2}, []complex128{1, -0.5}, 1)
	if err != nil {
		t.Fatalf("FromCoefficients() error = %v", err)
	}

	if len(f.Zeros) != 0 {
		t.Fatalf("zeros = %v, want none", f.Zeros)
	}

	if len(f.Poles) != 1 || cmplx.Abs(f.Poles[0]-0.5) > 1e-12 {
		t.Fatalf("poles = %v, want [0.5]", f.Poles)
	}

	if f.Gain != 2 || f.Delay != 1 {
		t.Fatalf("gain=%v delay=%d, want gain=2 delay=1", f.Gain, f.Delay)
	}
}

func TestFromCoefficientsQuadraticDenominator(t *testing.T) {
	// a = z^2 - z + 0.5 has roots 0.5 ± 0.5i.
	f, err := FromCoefficients(nil, []complex128{1, -1, 0.5}, 0)
	if err != nil {
		t.Fatalf("FromCoefficients() error = %v", err)
	}

	if len(f.Poles) != 2 {
		t.Fatalf("poles = %v, want two", f.Poles)
	}

	for _, p := range f.Poles {
		if res := cmplx.Abs(p*p - p + 0.5); res > 1e-9 {
			t.Fatalf("pole %v does not satisfy the polynomial: residual %v", p, res)
		}
	}
}

func TestFromCoefficientsEmptyListsAreIdentity(t *testing.T) {
	f, err := FromCoefficients(nil, nil, 0)
	if err != nil {
		t.Fatalf("FromCoefficients() error = %v", err)
	}

	if len(f.Zeros) != 0 || len(f.Poles) != 0 || f.Gain != 1 || f.Delay != 0 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestFromCoefficientsDegenerate(t *testing.T) {
	if _, err := FromCoefficients([]complex128{0}, nil, 0); err == nil {
		t.Fatal("expected error for all-zero numerator")
	}
}

func TestParseRoundTripThroughResponse(t *testing.T) {
	// Coefficient form and root form are the same filter: their frequency
	// responses must agree in magnitude.
	orig := New()
	orig.AddPole(0.5+0.5i, true)
	orig.Gain = 2

	b, a := orig.Coefficients()

	back, err := FromCoefficients(b, a, 0)
	if err != nil {
		t.Fatalf("FromCoefficients() error = %v", err)
	}

	for _, w := range []float64{0, 0.5, 1.5, 3} {
		want := cmplx.Abs(orig.ResponseAt(w))
		got := cmplx.Abs(back.ResponseAt(w))

		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("|H(%v)| = %v, want %v", w, got, want)
		}
	}
}
