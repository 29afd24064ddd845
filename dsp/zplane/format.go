package zplane

import (
	"fmt"
	"math"
	"strings"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/core"
)

// FormatCoefficient renders a coefficient for display: plain "%.2f" when the
// imaginary part is residue, "(re + imj)" form otherwise.
func FormatCoefficient(c complex128) string {
	if core.NearlyEqual(imag(c), 0, imagResidueTol) {
		return fmt.Sprintf("%.2f", real(c))
	}

	op := "+"
	if imag(c) < 0 {
		op = "-"
	}

	return fmt.Sprintf("(%.2f %s %.2fj)", real(c), op, math.Abs(imag(c)))
}

// PolyString renders polynomial coefficients as a sum of z^-k terms, e.g.
// "1.00 + -0.50z^-1". Coefficients with magnitude below 1e-12 are omitted;
// an all-zero polynomial renders as "0".
func PolyString(coeff []complex128) string {
	var terms []string

	for k, c := range coeff {
		if math.Hypot(real(c), imag(c)) < 1e-12 {
			continue
		}

		s := FormatCoefficient(c)
		if k > 0 {
			s = fmt.Sprintf("%sz^-%d", s, k)
		}

		terms = append(terms, s)
	}

	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}

// DelayString renders the z^±k prefix of the transfer function, or "" when
// the delay is zero.
func DelayString(delay int) string {
	switch {
	case delay == 0:
		return ""
	case delay == 1:
		return "z^-1"
	case delay == -1:
		return "z"
	default:
		return fmt.Sprintf("z^%d", -delay)
	}
}

// TransferString renders the full transfer function from the display-rounded
// coefficients, e.g. "H(z) = z^-1 · (1.00) / (1.00 + -0.50z^-1)".
func (f *Filter) TransferString() string {
	b, a := f.DisplayCoefficients()

	prefix := ""
	if d := DelayString(f.Delay); d != "" {
		prefix = d + " · "
	}

	return fmt.Sprintf("H(z) = %s(%s) / (%s)", prefix, PolyString(b), PolyString(a))
}
