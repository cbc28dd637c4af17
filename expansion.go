package padic

import (
	"fmt"
	"math/big"
)

// splitValuation factors the exact power of p out of num/den, so that
//
//	num/den = p^val * rnum/rden
//
// with neither rnum nor rden divisible by p. The inputs are not modified.
//
// A zero denominator is rejected. A zero numerator is a caller contract
// violation: the zero value has no valuation and must be special-cased
// before expansion.
func splitValuation(num, den *big.Int, p int64) (val int, rnum, rden *big.Int, err error) {
	if den.Sign() == 0 {
		return 0, nil, nil, fmt.Errorf("zero denominator: %w", errInvalidInput)
	}
	if num.Sign() == 0 {
		return 0, nil, nil, fmt.Errorf("zero numerator has no valuation: %w", errInvalidInput)
	}

	var (
		pb  = big.NewInt(p)
		rem = new(big.Int)
		q   = new(big.Int)
	)

	// Numerator
	rnum = new(big.Int).Set(num)
	for {
		q.QuoRem(rnum, pb, rem)
		if rem.Sign() != 0 {
			break
		}
		rnum.Set(q)
		val++
	}

	// Denominator
	rden = new(big.Int).Set(den)
	for {
		q.QuoRem(rden, pb, rem)
		if rem.Sign() != 0 {
			break
		}
		rden.Set(q)
		val--
	}

	return val, rnum, rden, nil
}

// expand performs base-p long division of num/den, emitting up to n digits
// in [0, p). It requires den to be coprime to p, which callers guarantee by
// running [splitValuation] first.
//
// Each step computes the current digit as num * den^-1 mod p, subtracts it,
// and divides the remainder by p exactly. The state num reaching zero means
// the expansion terminates: the remaining digits are all zero and are not
// materialized, and exact is true. Otherwise the result is an n-digit
// truncation of an infinite, eventually periodic series.
func expand(num, den *big.Int, p int64, n int) (digits []int64, exact bool, err error) {
	pb := big.NewInt(p)

	inv := new(big.Int).ModInverse(den, pb)
	if inv == nil {
		return nil, false, fmt.Errorf("denominator %v shares a factor with %v: %w", den, p, errInvalidInput)
	}

	var (
		state = new(big.Int).Set(num)
		t     = new(big.Int)
	)

	digits = make([]int64, 0, n)
	for i := 0; i < n; i++ {
		if state.Sign() == 0 {
			return digits, true, nil
		}
		// Digit: (state / den) mod p, computed with the modular inverse.
		t.Mod(state, pb)
		t.Mul(t, inv)
		t.Mod(t, pb)
		a := t.Int64()
		digits = append(digits, a)
		// State: (state - a*den) / p, exact because a is the residue of
		// state/den mod p.
		state.Sub(state, t.Mul(t.SetInt64(a), den))
		state.Quo(state, pb)
	}

	return digits, state.Sign() == 0, nil
}

// horner evaluates the digit series at p, accumulating from the
// highest-order coefficient down:
//
//	Σ digits[i] * p^(val+i)  for i in 0..len(digits)-1
//
// The result is an exact rational. It equals the represented number only
// for a terminating expansion; for a truncation it differs from the true
// value by a multiple of p^(val+len(digits)).
func horner(digits []int64, val int, p int64) *big.Rat {
	if len(digits) == 0 {
		return new(big.Rat)
	}
	return scalePow(hornerInt(digits, p), val, p)
}

// hornerInt evaluates Σ digits[i] * p^i as an integer.
func hornerInt(digits []int64, p int64) *big.Int {
	pb := big.NewInt(p)

	acc := big.NewInt(digits[len(digits)-1])
	for i := len(digits) - 2; i >= 0; i-- {
		acc.Mul(acc, pb)
		acc.Add(acc, big.NewInt(digits[i]))
	}
	return acc
}

// scalePow returns n * p^val as a rational, with p^-val becoming the
// denominator for negative valuations.
func scalePow(n *big.Int, val int, p int64) *big.Rat {
	pb := big.NewInt(p)
	if val >= 0 {
		e := new(big.Int).Exp(pb, big.NewInt(int64(val)), nil)
		return new(big.Rat).SetFrac(new(big.Int).Mul(n, e), big.NewInt(1))
	}
	e := new(big.Int).Exp(pb, big.NewInt(int64(-val)), nil)
	return new(big.Rat).SetFrac(n, e)
}

// balance reduces the integer part of a truncated reconstruction to its
// balanced representative mod p^digits, mapping residues above p^digits/2
// to negative values. Truncations of negative rationals reconstruct to
// huge positive integers congruent to the true value; the balanced
// representative recovers the small value without changing the residue.
func balance(n *big.Int, p int64, digits int) *big.Int {
	m := new(big.Int).Exp(big.NewInt(p), big.NewInt(int64(digits)), nil)
	r := new(big.Int).Mod(n, m)
	half := new(big.Int).Rsh(m, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, m)
	}
	return r
}
