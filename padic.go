package padic

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

// PAdic type is a representation of a p-adic number, truncated to a fixed
// number of base-p digits.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// A p-adic number is a struct with four parameters:
//
//   - Prime: the base p of the representation.
//   - Precision: the maximum number of digits retained after the valuation.
//   - Valuation: the lowest exponent of p with a nonzero coefficient.
//   - Digits: little-endian base-p coefficients, each in [0, p), starting
//     at the valuation. The first digit of a non-zero number is never zero,
//     and trailing zeros of a terminating expansion are not materialized.
//
// The represented value is Σ Digits[i] * p^(Valuation+i). A number whose
// expansion does not terminate within the precision is the truncation of
// an infinite, eventually periodic series, accurate to p^(Valuation+Precision).
//
// The zero value of PAdic is the number zero. It carries no prime, so it
// supports predicates and conversions but not arithmetic; every other
// value must be obtained from a constructor.
type PAdic struct {
	prime  int64   // the base of the representation
	prec   int32   // maximum digits after the valuation
	val    int32   // exponent of the lowest-order digit; 0 when zero
	trunc  bool    // the digits are a truncation of an infinite expansion
	digits []int64 // base-p coefficients, lowest power first; empty when zero
}

// DefaultPrec is the number of digits retained by constructors that do not
// take an explicit precision.
const DefaultPrec = 20

var (
	errInvalidPrime      = errors.New("invalid prime")
	errInvalidPrecision  = errors.New("invalid precision")
	errInvalidInput      = errors.New("invalid input")
	errPrimeMismatch     = errors.New("prime mismatch")
	errNotAnInteger      = errors.New("not an integer")
	errPrecisionExceeded = errors.New("precision exceeded")
	errDivisionByZero    = errors.New("division by zero")
)

func check(prime int64, prec int) error {
	if !IsPrime(prime) {
		return fmt.Errorf("%v is not prime: %w", prime, errInvalidPrime)
	}
	if prec <= 0 {
		return fmt.Errorf("precision %v is not positive: %w", prec, errInvalidPrecision)
	}
	return nil
}

// newFromRat converts an exact rational to its p-adic expansion.
// It assumes prime and prec have already been validated.
func newFromRat(r *big.Rat, prime int64, prec int) (PAdic, error) {
	if r.Sign() == 0 {
		return PAdic{prime: prime, prec: int32(prec)}, nil
	}
	val, num, den, err := splitValuation(r.Num(), r.Denom(), prime)
	if err != nil {
		return PAdic{}, err
	}
	digits, exact, err := expand(num, den, prime, prec)
	if err != nil {
		return PAdic{}, err
	}
	return PAdic{prime: prime, prec: int32(prec), val: int32(val), trunc: !exact, digits: digits}, nil
}

// New returns the p-adic expansion of an integer, retaining [DefaultPrec] digits.
//
// New returns an error if prime is not a prime number.
func New(value, prime int64) (PAdic, error) {
	return NewExact(value, prime, DefaultPrec)
}

// NewExact is similar to [New], but it allows you to specify how many
// base-p digits should be retained.
//
// NewExact returns an error:
//   - if prime is not a prime number;
//   - if prec is not positive.
func NewExact(value, prime int64, prec int) (PAdic, error) {
	if err := check(prime, prec); err != nil {
		return PAdic{}, err
	}
	return newFromRat(new(big.Rat).SetInt64(value), prime, prec)
}

// NewFromRat returns the p-adic expansion of a rational number, retaining
// [DefaultPrec] digits. The rational boundary type is [big.Rat], which is
// always stored in lowest terms with a positive denominator.
//
// NewFromRat returns an error if prime is not a prime number or r is nil.
//
// [big.Rat]: https://pkg.go.dev/math/big#Rat
func NewFromRat(r *big.Rat, prime int64) (PAdic, error) {
	return NewFromRatExact(r, prime, DefaultPrec)
}

// NewFromRatExact is similar to [NewFromRat], but it allows you to specify
// how many base-p digits should be retained.
//
// NewFromRatExact returns an error:
//   - if prime is not a prime number;
//   - if prec is not positive;
//   - if r is nil.
func NewFromRatExact(r *big.Rat, prime int64, prec int) (PAdic, error) {
	if err := check(prime, prec); err != nil {
		return PAdic{}, err
	}
	if r == nil {
		return PAdic{}, fmt.Errorf("nil rational: %w", errInvalidInput)
	}
	return newFromRat(r, prime, prec)
}

// NewFromDigits constructs a p-adic number directly from a digit sequence
// starting at the given valuation. An empty sequence is the number zero,
// in which case the valuation is ignored.
//
// The sequence is read as a terminating expansion: [PAdic.Rat] reconstructs
// it by plain Horner evaluation, even when it fills the precision. To mark
// a sequence as the truncation of an infinite series instead, parse it with
// an order term placed right after the last digit (see [Parse]).
//
// NewFromDigits returns an error:
//   - if prime is not a prime number;
//   - if prec is not positive or smaller than the number of digits;
//   - if any digit is outside [0, prime);
//   - if the first digit is zero (the sequence is not in canonical form).
func NewFromDigits(digits []int64, valuation int, prime int64, prec int) (PAdic, error) {
	if err := check(prime, prec); err != nil {
		return PAdic{}, err
	}
	if len(digits) == 0 {
		return PAdic{prime: prime, prec: int32(prec)}, nil
	}
	if len(digits) > prec {
		return PAdic{}, fmt.Errorf("%v digits exceed precision %v: %w", len(digits), prec, errInvalidPrecision)
	}
	if digits[0] == 0 {
		return PAdic{}, fmt.Errorf("leading zero digit: %w", errInvalidInput)
	}
	for i, a := range digits {
		if a < 0 || a >= prime {
			return PAdic{}, fmt.Errorf("digit %v at position %v is outside [0, %v): %w", a, i, prime, errInvalidInput)
		}
	}
	return PAdic{prime: prime, prec: int32(prec), val: int32(valuation), digits: slices.Clone(digits)}, nil
}

// Rescale returns d truncated or extended to the given precision.
// Truncation drops high-order digits; extension only raises the digit
// budget, since digits beyond the stored truncation are not recoverable.
//
// Rescale returns an error if prec is not positive.
func (d PAdic) Rescale(prec int) (PAdic, error) {
	if prec <= 0 {
		return PAdic{}, fmt.Errorf("precision %v is not positive: %w", prec, errInvalidPrecision)
	}
	f := d
	f.prec = int32(prec)
	if len(f.digits) > prec {
		f.digits = f.digits[:prec]
		f.trunc = true
	}
	return f, nil
}

// Convert returns d re-expanded in the base of a different prime at the
// given precision, by round-tripping through the rational reconstruction.
// If the prime is unchanged, Convert is equivalent to [PAdic.Rescale].
//
// Convert returns an error if prime is not a prime number or prec is not
// positive.
func (d PAdic) Convert(prime int64, prec int) (PAdic, error) {
	if err := check(prime, prec); err != nil {
		return PAdic{}, err
	}
	if prime == d.prime {
		return d.Rescale(prec)
	}
	return newFromRat(d.Rat(), prime, prec)
}

// Prime returns the base of the representation.
func (d PAdic) Prime() int64 {
	return d.prime
}

// Precision returns the maximum number of digits retained after the valuation.
// Also see method [PAdic.Digits].
func (d PAdic) Precision() int {
	return int(d.prec)
}

// Valuation returns the exponent of the lowest-order nonzero coefficient.
// The valuation of zero is conventionally 0 and carries no meaning.
func (d PAdic) Valuation() int {
	return int(d.val)
}

// Digits returns a copy of the stored base-p digits, lowest power first.
// A terminating expansion may store fewer digits than [PAdic.Precision].
func (d PAdic) Digits() []int64 {
	return slices.Clone(d.digits)
}

// IsZero returns true if d == 0.
func (d PAdic) IsZero() bool {
	return len(d.digits) == 0
}

// IsInt returns true if d reconstructs to an integer, that is if d is zero
// or its valuation is non-negative.
func (d PAdic) IsInt() bool {
	return d.IsZero() || d.val >= 0
}

// IsUnit returns true if d is a p-adic unit, a non-zero number with
// valuation exactly 0.
func (d PAdic) IsUnit() bool {
	return !d.IsZero() && d.val == 0
}

// Norm returns the p-adic absolute value of d, which is p^-Valuation,
// or 0 if d is zero.
func (d PAdic) Norm() *big.Rat {
	if d.IsZero() {
		return new(big.Rat)
	}
	return scalePow(big.NewInt(1), -int(d.val), d.prime)
}

// ratAt reconstructs the first n stored digits as an exact rational.
// A truncated view has its integer part reduced to the balanced
// representative mod p^n; that keeps the residue intact while recovering
// small negative values, whose expansions never terminate.
func (d PAdic) ratAt(n int) *big.Rat {
	if d.IsZero() || n <= 0 {
		return new(big.Rat)
	}
	if n > len(d.digits) {
		n = len(d.digits)
	}
	// A partial view of the stored digits is itself a truncation, even
	// when the full sequence terminated exactly.
	truncated := d.trunc || n < len(d.digits)
	acc := hornerInt(d.digits[:n], d.prime)
	if truncated {
		acc = balance(acc, d.prime, n)
	}
	return scalePow(acc, int(d.val), d.prime)
}

// Rat reconstructs d as an exact rational using Horner evaluation of the
// stored digits. The result equals the represented number when the
// expansion terminated within the precision; otherwise it is the value of
// the truncation, congruent to the true number mod p^(Valuation+Precision).
func (d PAdic) Rat() *big.Rat {
	return d.ratAt(len(d.digits))
}

// RatBounded is similar to [PAdic.Rat], but it allows you to bound the
// power of p permitted in the denominator of the result.
//
// RatBounded returns an error if the valuation of d is negative and
// -Valuation exceeds maxDenomPower.
func (d PAdic) RatBounded(maxDenomPower int) (*big.Rat, error) {
	if !d.IsZero() && -int(d.val) > maxDenomPower {
		return nil, fmt.Errorf("denominator %v^%v exceeds %v^%v: %w", d.prime, -d.val, d.prime, maxDenomPower, errPrecisionExceeded)
	}
	return d.Rat(), nil
}

// Int reconstructs d as an integer.
//
// Int returns an error if the valuation of d is negative, in which case
// the reconstruction has a power of p in the denominator.
func (d PAdic) Int() (*big.Int, error) {
	if d.IsZero() {
		return new(big.Int), nil
	}
	if d.val < 0 {
		return nil, fmt.Errorf("valuation %v is negative: %w", d.val, errNotAnInteger)
	}
	return d.Rat().Num(), nil
}

// Int64 is similar to [PAdic.Int], but returns false if d is not an
// integer or does not fit in an int64.
func (d PAdic) Int64() (int64, bool) {
	n, err := d.Int()
	if err != nil || !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// combine reconstructs both operands at the smaller of the two precisions,
// applies an exact rational operation, and re-expands the result.
func (d PAdic) combine(e PAdic, op func(z, x, y *big.Rat) *big.Rat) (PAdic, error) {
	if d.prime != e.prime {
		return PAdic{}, fmt.Errorf("%v-adic and %v-adic operands: %w", d.prime, e.prime, errPrimeMismatch)
	}
	prec := min(int(d.prec), int(e.prec))
	z := op(new(big.Rat), d.ratAt(prec), e.ratAt(prec))
	return newFromRat(z, d.prime, prec)
}

// Add returns the sum of d and e, expanded at the smaller of the two
// precisions.
//
// Add returns an error if d and e have different primes.
func (d PAdic) Add(e PAdic) (PAdic, error) {
	return d.combine(e, (*big.Rat).Add)
}

// Sub returns the difference of d and e, expanded at the smaller of the
// two precisions.
//
// Sub returns an error if d and e have different primes.
func (d PAdic) Sub(e PAdic) (PAdic, error) {
	return d.combine(e, (*big.Rat).Sub)
}

// Mul returns the product of d and e, expanded at the smaller of the two
// precisions.
//
// Mul returns an error if d and e have different primes.
func (d PAdic) Mul(e PAdic) (PAdic, error) {
	return d.combine(e, (*big.Rat).Mul)
}

// Quo returns the quotient of d and e, expanded at the smaller of the two
// precisions. Every non-zero p-adic number is invertible, so the quotient
// exists whenever e is non-zero.
//
// Quo returns an error:
//   - if d and e have different primes;
//   - if e is zero.
func (d PAdic) Quo(e PAdic) (PAdic, error) {
	if e.IsZero() {
		return PAdic{}, errDivisionByZero
	}
	return d.combine(e, (*big.Rat).Quo)
}

// Neg returns d with the opposite sign, that is the expansion of the
// negated reconstruction at the same precision.
func (d PAdic) Neg() PAdic {
	if d.IsZero() {
		return d
	}
	f, err := newFromRat(new(big.Rat).Neg(d.Rat()), d.prime, int(d.prec))
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Pow returns d raised to the exp, expanded at the precision of d.
//
// Pow returns an error:
//   - if d is the zero value of PAdic, which carries no prime;
//   - if d is zero and exp is negative.
func (d PAdic) Pow(exp int) (PAdic, error) {
	if d.prime == 0 {
		return PAdic{}, fmt.Errorf("zero value has no prime: %w", errInvalidPrime)
	}
	// Special case
	if exp == 0 {
		return newFromRat(new(big.Rat).SetInt64(1), d.prime, int(d.prec))
	}
	// General case
	f, err := d.Pow(exp / 2)
	if err != nil {
		return PAdic{}, err
	}
	f, err = f.Mul(f)
	if err != nil {
		return PAdic{}, err
	}
	if exp%2 == 0 {
		return f, nil
	}
	if exp > 0 {
		return f.Mul(d)
	}
	return f.Quo(d)
}

// Equal reports whether d and e represent the same number up to the
// smaller of the two stored digit counts. This is a precision-bounded
// approximate relation, not equality in the infinite p-adic field: two
// truncations that agree on their common digits are indistinguishable.
// Zero is equal only to zero. Numbers with different primes are never
// equal.
func (d PAdic) Equal(e PAdic) bool {
	return d.EqualWithin(e, max(len(d.digits), len(e.digits)))
}

// EqualWithin is similar to [PAdic.Equal], but additionally caps the
// number of compared digits at n. With n <= 0 no digits are compared and
// two non-zero numbers are equal whenever their primes and valuations
// match.
func (d PAdic) EqualWithin(e PAdic, n int) bool {
	if d.IsZero() || e.IsZero() {
		return d.IsZero() && e.IsZero()
	}
	if d.prime != e.prime || d.val != e.val {
		return false
	}
	m := min(len(d.digits), len(e.digits), n)
	for i := 0; i < m; i++ {
		if d.digits[i] != e.digits[i] {
			return false
		}
	}
	return true
}
