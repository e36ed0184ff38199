// Package factor implements prime factorization of unsigned integers using
// trial division over a Sieve of Eratosthenes up to the square root of the
// input, followed by Pollard's rho for any cofactor the sieve cannot reach.
//
// Factorize accepts only numbers that decompose into exactly two prime
// factors (counted with multiplicity); anything else is reported through
// ErrNoUniqueFactorization. The rho stage runs a single deterministic
// attempt with fixed starting values and no iteration cap, so adversarial
// inputs near the top of the uint64 range can take impractically long.
package factor

import (
	"errors"
	"math"
)

var (
	// ErrInvalidNumber is returned when the input is not greater than 1.
	ErrInvalidNumber = errors.New("number must be greater than 1")

	// ErrNoUniqueFactorization is returned when the input does not
	// decompose into exactly two prime factors.
	ErrNoUniqueFactorization = errors.New("Fehler: Die Zahl hat keine eindeutige Faktorisierung in 2 Primzahlen.")
)

// Factorize decomposes n into its two prime factors, in non-decreasing
// order. Small factors are stripped by trial division against every prime
// up to the square root of n; a cofactor left over after that is handed to
// Pollard's rho. On success the product of the returned pair is exactly n.
//
// Numbers with any other factor count (primes themselves, products of
// three or more primes) yield ErrNoUniqueFactorization.
func Factorize(n uint64) ([]uint64, error) {
	if n <= 1 {
		return nil, ErrInvalidNumber
	}

	// The trial bound derives from the initial n only; it is not
	// recomputed as the working value shrinks.
	limit := isqrt(n)

	var factors []uint64
	rest := n
	for _, p := range Primes(limit) {
		for rest%p == 0 {
			factors = append(factors, p)
			rest /= p
		}
		if rest == 1 {
			break
		}
	}

	if rest > 1 {
		factors = append(factors, rho(rest)...)
	}

	if len(factors) != 2 {
		return nil, ErrNoUniqueFactorization
	}
	return factors, nil
}

// isqrt returns the largest r with r*r <= n. math.Sqrt can be off by one
// for n beyond 2^52, so the float seed is corrected with quotient
// comparisons, which cannot overflow.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
