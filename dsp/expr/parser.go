package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/CleverlyFoolish/PoZeDSP/dsp/signal"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func lex(input string) ([]token, error) {
	var toks []token

	runes := []rune(input)
	i := 0

	for i < len(runes) {
		c := runes[i]

		switch {
		case unicode.IsSpace(c):
			i++

		case unicode.IsDigit(c) || c == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			// Exponent suffix: 1e-3, 2.5E+4.
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				j := i + 1
				if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
					j++
				}
				if j < len(runes) && unicode.IsDigit(runes[j]) {
					i = j
					for i < len(runes) && unicode.IsDigit(runes[i]) {
						i++
					}
				}
			}

			text := string(runes[start:i])
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: num})

		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i])})

		case c == '+':
			toks = append(toks, token{kind: tokPlus, text: "+"})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-"})
			i++
		case c == '*':
			// ** is an alias for ^.
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokCaret, text: "**"})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*"})
				i++
			}
		case c == '/':
			toks = append(toks, token{kind: tokSlash, text: "/"})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret, text: "^"})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			i++

		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidExpression, string(c))
		}
	}

	return append(toks, token{kind: tokEOF, text: "end of expression"}), nil
}

// parser is a recursive-descent parser with standard precedence:
// additive < multiplicative < unary minus < power (right-associative).
type parser struct {
	toks []token
	pos  int
	n    []float64
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.peek().kind != kind {
		return fmt.Errorf("%w: expected %s, found %q", ErrInvalidExpression, what, p.peek().text)
	}
	p.next()
	return nil
}

func (p *parser) parseExpr() (value, error) {
	left, err := p.parseTerm()
	if err != nil {
		return value{}, err
	}

	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return value{}, err
			}
			left, err = combine(left, right, func(x, y float64) float64 { return x + y })
			if err != nil {
				return value{}, err
			}
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return value{}, err
			}
			left, err = combine(left, right, func(x, y float64) float64 { return x - y })
			if err != nil {
				return value{}, err
			}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return value{}, err
	}

	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return value{}, err
			}
			left, err = combine(left, right, func(x, y float64) float64 { return x * y })
			if err != nil {
				return value{}, err
			}
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return value{}, err
			}
			left, err = combine(left, right, func(x, y float64) float64 { return x / y })
			if err != nil {
				return value{}, err
			}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (value, error) {
	if p.peek().kind == tokMinus {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return value{}, err
		}
		return mapValue(v, func(x float64) float64 { return -x }), nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (value, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return value{}, err
	}

	if p.peek().kind != tokCaret {
		return base, nil
	}

	p.next()

	// Right-associative, and unary minus binds tighter on the exponent side
	// so 2^-1 parses.
	exp, err := p.parseUnary()
	if err != nil {
		return value{}, err
	}

	return combine(base, exp, math.Pow)
}

func (p *parser) parsePrimary() (value, error) {
	t := p.next()

	switch t.kind {
	case tokNumber:
		return scalarValue(t.num), nil

	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return value{}, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return value{}, err
		}
		return v, nil

	case tokIdent:
		return p.parseIdent(t.text)
	}

	return value{}, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, t.text)
}

func (p *parser) parseIdent(name string) (value, error) {
	lower := strings.ToLower(name)

	if p.peek().kind != tokLParen {
		switch lower {
		case "n":
			// Copy so arithmetic on the result can never alias the
			// caller's index array.
			return vecValue(append([]float64(nil), p.n...)), nil
		case "pi":
			return scalarValue(math.Pi), nil
		case "e":
			return scalarValue(math.E), nil
		}
		return value{}, fmt.Errorf("%w: unknown name %q", ErrInvalidExpression, name)
	}

	p.next() // consume "("

	args, err := p.parseArgs()
	if err != nil {
		return value{}, err
	}

	if fn, ok := unaryFuncs[lower]; ok {
		if len(args) != 1 {
			return value{}, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrInvalidExpression, name, len(args))
		}
		return fn(args[0]), nil
	}

	switch lower {
	case "rect":
		if len(args) != 2 {
			return value{}, fmt.Errorf("%w: rect takes 2 arguments, got %d", ErrInvalidExpression, len(args))
		}
		width, err := args[1].asScalar()
		if err != nil {
			return value{}, err
		}
		return mapSignal(args[0], func(x []float64) []float64 {
			return signal.Rect(x, width)
		}), nil

	case "pulse_train", "pt":
		if len(args) != 3 {
			return value{}, fmt.Errorf("%w: %s takes 3 arguments, got %d", ErrInvalidExpression, name, len(args))
		}
		start, err := args[0].asScalar()
		if err != nil {
			return value{}, err
		}
		spacing, err := args[1].asScalar()
		if err != nil {
			return value{}, err
		}
		count, err := args[2].asScalar()
		if err != nil {
			return value{}, err
		}
		return vecValue(signal.PulseTrain(p.n, start, spacing, int(count))), nil
	}

	return value{}, fmt.Errorf("%w: unknown function %q", ErrInvalidExpression, name)
}

func (p *parser) parseArgs() ([]value, error) {
	var args []value

	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}

	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		switch p.peek().kind {
		case tokComma:
			p.next()
		case tokRParen:
			p.next()
			return args, nil
		default:
			return nil, fmt.Errorf("%w: expected \",\" or \")\", found %q", ErrInvalidExpression, p.peek().text)
		}
	}
}
