package factor

import (
	"errors"
	"reflect"
	"testing"
)

// naiveFactors is an independent reference factorization by plain trial
// division, used to cross-check Factorize.
func naiveFactors(n uint64) []uint64 {
	var fs []uint64
	for d := uint64(2); d <= n/d; d++ {
		for n%d == 0 {
			fs = append(fs, d)
			n /= d
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}
	return fs
}

// isPrimeSlow is an independent primality check by trial division.
func isPrimeSlow(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestFactorize_Semiprimes(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{4, []uint64{2, 2}},
		{6, []uint64{2, 3}},
		{9, []uint64{3, 3}},
		{10, []uint64{2, 5}},
		{15, []uint64{3, 5}},
		{21, []uint64{3, 7}},
		{35, []uint64{5, 7}},
		{49, []uint64{7, 7}},
		{77, []uint64{7, 11}},
		{221, []uint64{13, 17}},
		{8051, []uint64{83, 97}},
		{10403, []uint64{101, 103}},
		{1000006000009, []uint64{1000003, 1000003}},
		{999985999949, []uint64{999983, 1000003}},
	}
	for _, tt := range tests {
		got, err := Factorize(tt.n)
		if err != nil {
			t.Errorf("Factorize(%d) error: %v", tt.n, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Factorize(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFactorize_NoUniqueFactorization(t *testing.T) {
	// Primes and numbers with more than two prime factors.
	for _, n := range []uint64{2, 3, 7, 13, 97, 101, 2147483647, 8, 12, 30, 60, 210, 1024} {
		got, err := Factorize(n)
		if !errors.Is(err, ErrNoUniqueFactorization) {
			t.Errorf("Factorize(%d) = %v, %v, want ErrNoUniqueFactorization", n, got, err)
		}
	}
}

func TestFactorize_InvalidNumber(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		if _, err := Factorize(n); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Factorize(%d) err = %v, want ErrInvalidNumber", n, err)
		}
	}
}

func TestFactorize_ErrorMessage(t *testing.T) {
	_, err := Factorize(7)
	want := "Fehler: Die Zahl hat keine eindeutige Faktorisierung in 2 Primzahlen."
	if err == nil || err.Error() != want {
		t.Errorf("Factorize(7) err = %v, want %q", err, want)
	}
}

func TestFactorize_ErrorsDistinguishable(t *testing.T) {
	_, errSmall := Factorize(1)
	_, errPrime := Factorize(7)
	if errors.Is(errSmall, ErrNoUniqueFactorization) {
		t.Errorf("Factorize(1) err = %v, must not match ErrNoUniqueFactorization", errSmall)
	}
	if errors.Is(errPrime, ErrInvalidNumber) {
		t.Errorf("Factorize(7) err = %v, must not match ErrInvalidNumber", errPrime)
	}
}

func TestFactorize_MatchesNaive(t *testing.T) {
	for n := uint64(2); n <= 5000; n++ {
		want := naiveFactors(n)
		got, err := Factorize(n)
		if len(want) == 2 {
			if err != nil {
				t.Fatalf("Factorize(%d) error: %v, want %v", n, err, want)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Factorize(%d) = %v, want %v", n, got, want)
			}
			continue
		}
		if !errors.Is(err, ErrNoUniqueFactorization) {
			t.Fatalf("Factorize(%d) = %v, %v, want ErrNoUniqueFactorization for %d prime factors",
				n, got, err, len(want))
		}
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct{ n, want uint64 }{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{15, 3},
		{16, 4},
		{24, 4},
		{25, 5},
		{26, 5},
		{999999999999, 999999},
		{1000000000000, 1000000},
		{18446744065119617024, 4294967294}, // (2^32-1)^2 - 1
		{18446744065119617025, 4294967295}, // (2^32-1)^2
		{18446744073709551615, 4294967295}, // 2^64 - 1
	}
	for _, tt := range tests {
		if got := isqrt(tt.n); got != tt.want {
			t.Errorf("isqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsqrt_AroundSquares(t *testing.T) {
	for r := uint64(1); r <= 2000; r++ {
		sq := r * r
		if got := isqrt(sq - 1); got != r-1 {
			t.Errorf("isqrt(%d) = %d, want %d", sq-1, got, r-1)
		}
		if got := isqrt(sq); got != r {
			t.Errorf("isqrt(%d) = %d, want %d", sq, got, r)
		}
		if got := isqrt(sq + 1); got != r {
			t.Errorf("isqrt(%d) = %d, want %d", sq+1, got, r)
		}
	}
}
