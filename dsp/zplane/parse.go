package zplane

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/CleverlyFoolish/PoZeDSP/internal/polyroot"
)

// ParseError reports the tokens of a coefficient list that failed to parse.
// The parse is strict: one bad token fails the whole input, and every bad
// token is enumerated so the caller can point at all of them at once.
type ParseError struct {
	Bad []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zplane: unparseable coefficient tokens: %s", strings.Join(e.Bad, ", "))
}

// ParseComplexList parses a comma-separated list of real or complex
// coefficients, e.g. "1, -0.5" or "1+2j, (0.5-0.5j), 3". Parentheses and
// spaces are ignored and both j and i imaginary suffixes are accepted. Empty
// input and empty items yield no values; any unparseable token fails the
// whole parse with a [*ParseError].
func ParseComplexList(text string) ([]complex128, error) {
	if strings.TrimSpace(text) == "" {
		return []complex128{}, nil
	}

	var (
		values []complex128
		bad    []string
	)

	for _, part := range strings.Split(text, ",") {
		clean := strings.NewReplacer("(", "", ")", "", " ", "", "\t", "").Replace(part)
		if clean == "" {
			continue
		}

		v, err := strconv.ParseComplex(strings.ReplaceAll(clean, "j", "i"), 128)
		if err != nil {
			bad = append(bad, strings.TrimSpace(part))
			continue
		}

		values = append(values, v)
	}

	if len(bad) > 0 {
		return nil, &ParseError{Bad: bad}
	}

	if values == nil {
		values = []complex128{}
	}

	return values, nil
}

// FromCoefficients builds a root-form Filter from raw numerator and
// denominator polynomial coefficients (descending powers of z) plus a delay.
//
// This is a one-way, lossy conversion: roots come out of the polynomial
// solver in solver order, so any previous root ordering or conjugate pairing
// is discarded. The gain is recovered as |b[0]/a[0]|, with a missing or zero
// leading coefficient treated as 1.
func FromCoefficients(b, a []complex128, delay int) (Filter, error) {
	f := New()
	f.Delay = delay

	if len(b) > 0 {
		zeros, err := polyroot.Roots(b)
		if err != nil {
			return Filter{}, fmt.Errorf("zplane: numerator roots: %w", err)
		}
		f.Zeros = zeros
	}

	if len(a) > 0 {
		poles, err := polyroot.Roots(a)
		if err != nil {
			return Filter{}, fmt.Errorf("zplane: denominator roots: %w", err)
		}
		f.Poles = poles
	}

	gainNum := complex(1, 0)
	if len(b) > 0 {
		gainNum = b[0]
	}

	gainDen := complex(1, 0)
	if len(a) > 0 && a[0] != 0 {
		gainDen = a[0]
	}

	f.Gain = cmplx.Abs(gainNum / gainDen)

	return f, nil
}
