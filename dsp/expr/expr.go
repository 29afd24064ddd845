// Package expr evaluates user-typed test-signal expressions over a sample
// index array.
//
// The grammar is deliberately closed: numeric literals, the bound index
// array n, the constants pi and e, the operators + - * / ^ (with ** as an
// alias for ^), parentheses, and a fixed table of named functions. There is
// no assignment, no name lookup beyond the fixed table, and no way to reach
// outside the evaluator, which is the point: a failed or hostile expression
// can only ever produce an error, never touch filter state.
//
// Functions mirror the short names an interactive tool exposes:
//
//	sin cos tan exp sqrt abs sign ln     element-wise math (log is log10)
//	u step                               unit step
//	d delta impulse                      unit impulse
//	r                                    ramp
//	sinc                                 normalized sinc
//	rect(x, width)                       rectangular pulse
//	pulse_train(start, spacing, count)   pulse train over the index array
//	pt(start, spacing, count)            alias for pulse_train
package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/signal"
)

// ErrInvalidExpression is returned for any lex, parse, or evaluation
// failure. All failures wrap it, so callers can collapse every bad input
// into a single user-facing condition.
var ErrInvalidExpression = errors.New("expr: invalid expression")

// Eval evaluates expression element-wise over the index array n and returns
// a signal of the same length. A purely scalar expression (e.g. "0.5")
// broadcasts to the full length.
func Eval(expression string, n []float64) ([]float64, error) {
	toks, err := lex(expression)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, n: n}

	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, p.peek().text)
	}

	return v.materialize(len(n)), nil
}

// value is either a scalar or a vector the length of the index array.
type value struct {
	vec    []float64
	scalar float64
}

func scalarValue(x float64) value { return value{scalar: x} }

func vecValue(v []float64) value { return value{vec: v} }

func (v value) materialize(n int) []float64 {
	if v.vec != nil {
		return v.vec
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = v.scalar
	}
	return out
}

func (v value) asScalar() (float64, error) {
	if v.vec != nil {
		return 0, fmt.Errorf("%w: expected a scalar argument", ErrInvalidExpression)
	}
	return v.scalar, nil
}

func mapValue(v value, f func(float64) float64) value {
	if v.vec == nil {
		return scalarValue(f(v.scalar))
	}

	out := make([]float64, len(v.vec))
	for i, x := range v.vec {
		out[i] = f(x)
	}
	return vecValue(out)
}

// mapSignal applies a []float64 generator to a value, wrapping scalars in a
// one-sample array.
func mapSignal(v value, f func([]float64) []float64) value {
	if v.vec == nil {
		return scalarValue(f([]float64{v.scalar})[0])
	}
	return vecValue(f(v.vec))
}

func combine(a, b value, f func(x, y float64) float64) (value, error) {
	switch {
	case a.vec == nil && b.vec == nil:
		return scalarValue(f(a.scalar, b.scalar)), nil
	case a.vec == nil:
		return mapValue(b, func(y float64) float64 { return f(a.scalar, y) }), nil
	case b.vec == nil:
		return mapValue(a, func(x float64) float64 { return f(x, b.scalar) }), nil
	}

	if len(a.vec) != len(b.vec) {
		return value{}, fmt.Errorf("%w: operand length mismatch %d vs %d",
			ErrInvalidExpression, len(a.vec), len(b.vec))
	}

	out := make([]float64, len(a.vec))
	for i := range out {
		out[i] = f(a.vec[i], b.vec[i])
	}
	return vecValue(out), nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// unaryFuncs is the closed table of single-argument functions.
var unaryFuncs = map[string]func(value) value{
	"sin":  func(v value) value { return mapValue(v, math.Sin) },
	"cos":  func(v value) value { return mapValue(v, math.Cos) },
	"tan":  func(v value) value { return mapValue(v, math.Tan) },
	"exp":  func(v value) value { return mapValue(v, math.Exp) },
	"sqrt": func(v value) value { return mapValue(v, math.Sqrt) },
	"abs":  func(v value) value { return mapValue(v, math.Abs) },
	"sign": func(v value) value { return mapValue(v, sign) },
	"log":  func(v value) value { return mapValue(v, math.Log10) },
	"ln":   func(v value) value { return mapValue(v, math.Log) },
	"u":    func(v value) value { return mapSignal(v, signal.UnitStep) },
	"step": func(v value) value { return mapSignal(v, signal.UnitStep) },
	"d":    func(v value) value { return mapSignal(v, signal.Impulse) },
	"delta": func(v value) value {
		return mapSignal(v, signal.Impulse)
	},
	"impulse": func(v value) value { return mapSignal(v, signal.Impulse) },
	"r":       func(v value) value { return mapSignal(v, signal.Ramp) },
	"sinc":    func(v value) value { return mapSignal(v, signal.Sinc) },
}
