package factor

import "math/bits"

// rho factors n >= 2 with Pollard's rho, using Floyd cycle detection and
// the fixed polynomial f(x) = (x*x + 1) mod n. Both walkers start at 2 and
// the attempt is never randomized or retried: when the walkers collide
// without exposing a proper divisor (d == n, the expected outcome for prime
// n), n is returned as-is. A proper divisor d splits the problem into
// rho(d) and rho(n/d), whose results are concatenated.
func rho(n uint64) []uint64 {
	x, y := uint64(2), uint64(2)
	d := uint64(1)
	for d == 1 {
		x = step(x, n)
		y = step(step(y, n), n)
		d = gcd(absDiff(x, y), n)
	}
	if d != n {
		return append(rho(d), rho(n/d)...)
	}
	return []uint64{n}
}

// step advances a walker one iteration: (x*x + 1) mod n.
func step(x, n uint64) uint64 {
	return (mulmod(x, x, n) + 1) % n
}

// mulmod returns (a * b) mod m through a 128-bit intermediate product,
// exact for every uint64 modulus.
func mulmod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// gcd returns the greatest common divisor of a and b; gcd(0, b) is b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
