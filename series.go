package padic

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is one addend of the series notation: the digit Coef at the
// exponent Exp, contributing Coef * p^Exp to the number.
type Term struct {
	Exp  int
	Coef int64
}

// Terms enumerates the nonzero terms among the first n stored digit
// positions, in order of increasing exponent. Zero has no terms.
func (d PAdic) Terms(n int) []Term {
	if n > len(d.digits) {
		n = len(d.digits)
	}
	terms := make([]Term, 0, n)
	for i := 0; i < n; i++ {
		if d.digits[i] != 0 {
			terms = append(terms, Term{Exp: int(d.val) + i, Coef: d.digits[i]})
		}
	}
	return terms
}

// SeriesString renders up to showDigits digit positions of d in series
// notation, followed by an order term marking where the rendering was cut:
//
//	2 + 1*5 + 3*5^2 + O(5^20)
//	1/5 + 2 + 3*5 + O(5^19)
//	0 + O(5^20)
//
// Digits at negative exponents render as fractions and zero digits are
// omitted. The O-term exponent is the first position not shown.
func (d PAdic) SeriesString(showDigits int) string {
	// Special case: the zero value of PAdic carries no prime.
	if d.prime == 0 {
		return "0"
	}

	if showDigits < 0 {
		showDigits = 0
	}
	shown := min(showDigits, int(d.prec))

	var b strings.Builder

	// Terms
	terms := d.Terms(shown)
	if len(terms) == 0 {
		b.WriteString("0")
	}
	for i, t := range terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		writeTerm(&b, t, d.prime)
	}

	// Order term
	b.WriteString(" + O(")
	writePow(&b, d.prime, int(d.val)+shown)
	b.WriteString(")")

	return b.String()
}

func writeTerm(b *strings.Builder, t Term, p int64) {
	b.WriteString(strconv.FormatInt(t.Coef, 10))
	switch {
	case t.Exp > 0:
		b.WriteString("*")
		writePow(b, p, t.Exp)
	case t.Exp < 0:
		b.WriteString("/")
		writePow(b, p, -t.Exp)
	}
}

func writePow(b *strings.Builder, p int64, exp int) {
	if exp == 0 {
		b.WriteString("1")
		return
	}
	b.WriteString(strconv.FormatInt(p, 10))
	if exp != 1 {
		b.WriteString("^")
		b.WriteString(strconv.Itoa(exp))
	}
}

// String method implements the [fmt.Stringer] interface and renders all
// stored digits of d. Because the O-term carries both the prime and the
// position of the precision cut, the result parses back to a number with
// the same digits, valuation, and precision. See [Parse] for how the
// order term position decides between the terminating and the truncated
// reading of the digits on the way back.
// Also see method [PAdic.SeriesString].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d PAdic) String() string {
	return d.SeriesString(int(d.prec))
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 2 + 1*5 + O(5^20)
//	%q:    "2 + 1*5 + O(5^20)"
//
// The '-' format flag can be used with all verbs to pad to a width.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d PAdic) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		s := d.String()
		if verb == 'q' || verb == 'Q' {
			s = strconv.Quote(s)
		}
		if w, ok := state.Width(); ok && w > len(s) {
			pad := strings.Repeat(" ", w-len(s))
			if state.Flag('-') {
				s += pad
			} else {
				s = pad + s
			}
		}
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(padic.PAdic="))
		state.Write([]byte(d.String()))
		state.Write([]byte(")"))
	}
}

// Parse converts a string in series notation to a p-adic number with the
// given prime. The input must be in one of the following formats:
//
//	0
//	4
//	2 + 1*5 + 3*5^2
//	1/5 + 2 + 3*5 + O(5^4)
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits        ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	power         ::= digits [ '^' ['-'] digits ]
//	term          ::= digits | digits '*' power | digits '/' power
//	order         ::= 'O' '(' power ')'
//	series-string ::= term { ' + ' term } [ ' + ' order ] | order
//
// Terms must appear in strictly increasing exponent order; omitted
// exponents between the first and last term are zero digits. The power
// base must equal prime wherever it appears. When an order term is
// present it pins the precision to its exponent minus the valuation;
// otherwise the precision is [DefaultPrec], or the digit count if larger.
//
// An order term placed directly after the last digit marks the number as
// the truncation of an infinite series, which reconstructs through the
// balanced representative (see [PAdic.Rat]); an order term beyond the
// last digit, or none at all, means the series terminates. Zero digits
// directly below the order term are not rendered by [PAdic.String], so
// reparsing such a truncation reads it as terminating; the reconstructed
// value is unaffected.
//
// Parse returns error:
//   - if prime is not a prime number;
//   - if the string does not match the grammar, a digit is outside
//     [0, prime), or the lowest-order digit is zero;
//   - if a power base disagrees with prime.
func Parse(s string, prime int64) (PAdic, error) {
	return parseAt(s, prime, 0)
}

// ParseExact is similar to [Parse], but it allows you to specify how many
// base-p digits should be retained, overriding both the default and any
// order term in the input.
func ParseExact(s string, prime int64, prec int) (PAdic, error) {
	if prec <= 0 {
		return PAdic{}, fmt.Errorf("precision %v is not positive: %w", prec, errInvalidPrecision)
	}
	return parseAt(s, prime, prec)
}

// parseAt assembles a number from parsed series tokens. prime 0 means
// infer the prime from the power bases; prec 0 means derive the precision
// from the order term or the default.
func parseAt(s string, prime int64, prec int) (PAdic, error) {
	terms, base, oExp, hasO, err := parseSeries(s)
	if err != nil {
		return PAdic{}, err
	}
	if prime == 0 {
		if base == 0 {
			return PAdic{}, fmt.Errorf("no power base to determine the prime: %w", errInvalidInput)
		}
		prime = base
	} else if base != 0 && base != prime {
		return PAdic{}, fmt.Errorf("series base %v, want %v: %w", base, prime, errPrimeMismatch)
	}
	if !IsPrime(prime) {
		return PAdic{}, fmt.Errorf("%v is not prime: %w", prime, errInvalidPrime)
	}

	// Zero
	if len(terms) == 0 {
		if prec == 0 {
			prec = DefaultPrec
			if hasO && oExp > 0 {
				prec = oExp
			}
		}
		return NewFromDigits(nil, 0, prime, prec)
	}

	// Digits
	val := terms[0].Exp
	for i := 1; i < len(terms); i++ {
		if terms[i].Exp <= terms[i-1].Exp {
			return PAdic{}, fmt.Errorf("exponent %v after %v: %w", terms[i].Exp, terms[i-1].Exp, errInvalidInput)
		}
	}
	digits := make([]int64, terms[len(terms)-1].Exp-val+1)
	for _, t := range terms {
		digits[t.Exp-val] = t.Coef
	}

	// Precision
	if prec == 0 {
		switch {
		case hasO:
			prec = oExp - val
			if prec < len(digits) {
				return PAdic{}, fmt.Errorf("order term at %v inside stored digits: %w", oExp, errInvalidInput)
			}
		case len(digits) > DefaultPrec:
			prec = len(digits)
		default:
			prec = DefaultPrec
		}
	}

	f, err := NewFromDigits(digits, val, prime, prec)
	if err != nil {
		return PAdic{}, err
	}
	// An order term directly after the last digit marks the series as the
	// truncation of an infinite expansion.
	f.trunc = hasO && oExp == val+len(digits)
	return f, nil
}

// parseSeries tokenizes a series string into terms, the power base seen
// (0 if no power appears), and the order term exponent.
func parseSeries(s string) (terms []Term, base int64, oExp int, hasO bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, 0, 0, false, fmt.Errorf("empty string: %w", errInvalidInput)
	}

	setBase := func(b int64) error {
		if base != 0 && base != b {
			return fmt.Errorf("mixed power bases %v and %v: %w", base, b, errInvalidInput)
		}
		base = b
		return nil
	}

	// parsePow splits "p" or "p^e" and records the base.
	parsePow := func(pow string) (int, error) {
		b, e := pow, 1
		if i := strings.Index(pow, "^"); i >= 0 {
			b = pow[:i]
			var err error
			e, err = strconv.Atoi(pow[i+1:])
			if err != nil || e == 0 || e == 1 {
				return 0, fmt.Errorf("malformed exponent %q: %w", pow, errInvalidInput)
			}
		}
		n, err := strconv.ParseInt(b, 10, 64)
		if err != nil || n < 2 {
			return 0, fmt.Errorf("malformed power base %q: %w", pow, errInvalidInput)
		}
		if err := setBase(n); err != nil {
			return 0, err
		}
		return e, nil
	}

	zero := false
	for _, chunk := range strings.Split(s, " + ") {
		switch {
		case strings.HasPrefix(chunk, "O(") && strings.HasSuffix(chunk, ")"):
			if hasO {
				return nil, 0, 0, false, fmt.Errorf("duplicate order term: %w", errInvalidInput)
			}
			hasO = true
			inner := chunk[2 : len(chunk)-1]
			if inner == "1" {
				oExp = 0
				continue
			}
			oExp, err = parsePow(inner)
			if err != nil {
				return nil, 0, 0, false, err
			}

		case chunk == "0":
			zero = true

		default:
			t := Term{}
			coef := chunk
			if i := strings.IndexAny(chunk, "*/"); i >= 0 {
				coef = chunk[:i]
				t.Exp, err = parsePow(chunk[i+1:])
				if err != nil {
					return nil, 0, 0, false, err
				}
				if chunk[i] == '/' {
					if t.Exp < 0 {
						return nil, 0, 0, false, fmt.Errorf("negative exponent in fraction %q: %w", chunk, errInvalidInput)
					}
					t.Exp = -t.Exp
				}
			}
			t.Coef, err = strconv.ParseInt(coef, 10, 64)
			if err != nil || t.Coef < 0 {
				return nil, 0, 0, false, fmt.Errorf("malformed digit %q: %w", chunk, errInvalidInput)
			}
			terms = append(terms, t)
		}
	}

	if zero && (len(terms) > 0 || len(s) > 1 && !hasO) {
		return nil, 0, 0, false, fmt.Errorf("zero mixed with terms: %w", errInvalidInput)
	}

	return terms, base, oExp, hasO, nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [PAdic.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d PAdic) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The prime is inferred from the power bases of the input, so a string
// with no power (a bare constant term) cannot be unmarshaled.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *PAdic) UnmarshalText(text []byte) error {
	f, err := parseAt(string(text), 0, 0)
	if err != nil {
		return err
	}
	*d = f
	return nil
}
