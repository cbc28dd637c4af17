package padic

import "math/big"

// IsPrime reports whether n is a prime number.
// It is fully deterministic: [big.Int.ProbablyPrime] applies the
// Baillie-PSW test, which has no known composite below 2^64 that passes,
// so the result is exact for every int64.
//
// [big.Int.ProbablyPrime]: https://pkg.go.dev/math/big#Int.ProbablyPrime
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(n).ProbablyPrime(0)
}
