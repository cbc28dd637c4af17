package padic

import "fmt"

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding p-adic numbers.
func MustNew(value, prime int64) PAdic {
	d, err := New(value, prime)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, prime, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding p-adic numbers.
func MustParse(s string, prime int64) PAdic {
	d, err := Parse(s, prime)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, prime, err))
	}
	return d
}

// MustAdd is like [PAdic.Add] but panics if computing error.
func (d PAdic) MustAdd(e PAdic) PAdic {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [PAdic.Sub] but panics if computing error.
func (d PAdic) MustSub(e PAdic) PAdic {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [PAdic.Mul] but panics if computing error.
func (d PAdic) MustMul(e PAdic) PAdic {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [PAdic.Quo] but panics if computing error.
func (d PAdic) MustQuo(e PAdic) PAdic {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}
