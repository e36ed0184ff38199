package factor

import "math"

// Primes returns all primes p with 2 <= p <= limit in increasing order,
// computed with a Sieve of Eratosthenes. Limits below 2 yield an empty
// result. The sieve allocates limit+1 flags, so the practical domain is
// bounded by available memory.
func Primes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}

	// limit+1 must not wrap the flag array to length zero. 2^64-1 is
	// composite, so dropping it changes nothing.
	if limit == math.MaxUint64 {
		limit--
	}

	composite := make([]bool, limit+1)
	for i := uint64(2); i <= limit/i; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	var primes []uint64
	for i := uint64(2); i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
