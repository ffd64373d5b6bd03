package kraitchik

// GCD returns the greatest common divisor (GCD) of m and n.
// The result is never negative; GCD(m, 0) is |m| and GCD(0, 0) is 0.
func GCD(m, n int64) int64 {
	_, _, d := ExtGCD(m, n)
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// The result is undefined if m or n is math.MinInt64.
func ExtGCD(m, n int64) (a, b, d int64) {
	if n == 0 {
		if m < 0 {
			return -1, 0, -m
		}
		return 1, 0, m
	}
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 int64
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			break
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - q*a
		t = b0
		b0 = b
		b = t - q*b
	}
	// Go's remainder takes the sign of the dividend, so d can come out
	// negative when either input is
	if d < 0 {
		return -a, -b, -d
	}
	return a, b, d
}
