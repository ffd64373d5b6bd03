package kraitchik

import (
	"math"
	"math/bits"
)

// tryMul64 returns x*y, or ErrOverflow if the product does not fit in int64.
func tryMul64(x, y int64) (int64, error) {
	sgn := sgn64(x) * sgn64(y)
	if sgn == 0 {
		return 0, nil
	}
	// Multiply the magnitudes with 128-bit precision. The product fits only
	// if the high word is empty and the low word leaves room for the sign;
	// a negative result may use the full 2^63.
	hi, lo := bits.Mul64(uabs64(x), uabs64(y))
	if hi != 0 {
		return 0, ErrOverflow
	}
	if sgn > 0 {
		if lo > math.MaxInt64 {
			return 0, ErrOverflow
		}
		return int64(lo), nil
	}
	if lo > 1<<63 {
		return 0, ErrOverflow
	}
	return int64(-lo), nil
}

// trySub64 returns x-y, or ErrOverflow if the difference does not fit in int64.
func trySub64(x, y int64) (int64, error) {
	z := x - y
	if (x >= 0) != (y >= 0) && (z >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return z, nil
}

// mulMod returns x*y mod n using a 128-bit intermediate product, so it never
// wraps. n must not be zero.
func mulMod(x, y, n uint64) uint64 {
	// both factors are below n, so the high word is too and Div64 is safe
	hi, lo := bits.Mul64(x%n, y%n)
	_, rem := bits.Div64(hi, lo, n)
	return rem
}

// addMod returns x+y mod n. n must not be zero.
func addMod(x, y, n uint64) uint64 {
	s, carry := bits.Add64(x%n, y%n, 0)
	if carry != 0 || s >= n {
		s -= n
	}
	return s
}

// powMod returns b^e mod n by square-and-multiply. n must not be zero.
func powMod(b, e, n uint64) uint64 {
	result := 1 % n
	b %= n
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, b, n)
		}
		b = mulMod(b, b, n)
		e >>= 1
	}
	return result
}

// isqrt returns the largest r such that r*r <= n.
func isqrt(n uint64) uint64 {
	// the float estimate is off by at most a little near 2^64; fix it up
	r := uint64(math.Sqrt(float64(n)))
	for {
		hi, lo := bits.Mul64(r, r)
		if hi == 0 && lo <= n {
			break
		}
		r--
	}
	for {
		hi, lo := bits.Mul64(r+1, r+1)
		if hi != 0 || lo > n {
			break
		}
		r++
	}
	return r
}

// uabs64 returns the magnitude of x. Unlike negation in int64 it is exact
// for math.MinInt64.
func uabs64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}
