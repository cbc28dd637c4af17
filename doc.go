/*
Package padic implements immutable p-adic numbers: elements of the p-adic
completion of the rationals for a fixed prime p, truncated to a fixed
number of base-p digits.

# Representation

[PAdic] is a struct with four fields:

  - Prime: the base p of the representation, validated to be prime.
  - Precision: the maximum number of digits retained after the valuation.
    The default is [DefaultPrec].
  - Valuation: the lowest exponent of p carrying a nonzero coefficient.
    It may be negative, in which case the number has a power of p in its
    denominator.
  - Digits: little-endian base-p coefficients, each in [0, p), starting at
    the valuation.

The represented value is the series

	Digits[0]*p^Valuation + Digits[1]*p^(Valuation+1) + ...

A digit sequence is always canonical: the first digit of a non-zero number
is nonzero, and a terminating expansion does not materialize trailing
zeros. Zero is encoded as an empty digit sequence with no meaningful
valuation.

# Conversions

Any rational whose denominator is coprime to p has an infinite, eventually
periodic base-p expansion; rationals with only p in the denominator have a
negative valuation. Constructors ([New], [NewFromRat], [NewFromDigits] and
their Exact variants) extract the valuation and run base-p long division
for up to Precision digits. [PAdic.Rat] reconstructs the stored digits by
Horner evaluation.

The round trip is exact when the expansion terminates within the
precision. A truncated expansion reconstructs to a rational congruent to
the true value mod p^(Valuation+Precision); its integer part is reduced to
the balanced representative of that congruence class, so small negative
numbers, whose expansions never terminate, survive the round trip
unchanged.

# Operations

[PAdic.Add], [PAdic.Sub], [PAdic.Mul], [PAdic.Quo], [PAdic.Neg] and
[PAdic.Pow] combine numbers sharing a prime by reconstructing both
operands at the smaller of the two precisions, applying exact rational
arithmetic, and re-expanding the result.

[PAdic.Equal] is a precision-bounded relation: two numbers are equal when
their primes, valuations, and common stored digits agree. There is no
ordering; the p-adic field is not ordered, and [PAdic.Norm] provides the
p-adic absolute value instead.

# Formatting

[PAdic.String] and [PAdic.SeriesString] render series notation such as

	2 + 1*5 + 3*5^2 + O(5^20)

and [Parse] reads it back. The O-term records the prime and where the
precision cuts the series, so a number survives the round trip through
[PAdic.MarshalText] and [PAdic.UnmarshalText] with its digits, valuation,
and precision intact.

# Errors

All errors are reported synchronously at the point of violation:
constructors reject invalid primes and precisions, arithmetic rejects
mismatched primes, and integer conversion rejects negative valuations.
The package performs no I/O and has no transient failure modes, and it
never repairs invalid input: an invalid prime is rejected, not replaced.
*/
package padic
