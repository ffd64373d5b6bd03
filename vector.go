package kraitchik

import (
	"math"
	"strconv"
	"strings"
)

// Vector is an exponent vector over the factor base: slot i holds the
// multiplicity of Base(i). Slot 0 counts factors of -1, so it is 0 or 1 for
// a single factored value and may be larger for a sum of vectors.
//
// The zero value represents 1.
type Vector [BaseSize]uint16

// TrialDivide factors v over the factor base. Any cofactor made of primes
// above MaxBasePrime is silently dropped, so the result describes only the
// smooth part of v. Use Factor to get the cofactor as well.
func TrialDivide(v int64) Vector {
	e, _ := Factor(v)
	return e
}

// Factor is like TrialDivide but also returns the residue: the part of |v|
// the factor base could not divide. The residue is 1 exactly when v is
// smooth over the base. Factor(0) returns the zero vector and residue 0.
func Factor(v int64) (e Vector, residue uint64) {
	if v == 0 {
		return e, 0
	}
	if v < 0 {
		e[0] = 1
	}
	m := uabs64(v)
	for i := 1; i < BaseSize && m > 1; i++ {
		p := uint64(base[i])
		for m%p == 0 {
			m /= p
			e[i]++
		}
	}
	return e, m
}

// TryAdd returns the component-wise sum of x and y.
// TryAdd returns the zero vector and ErrExpOverflow if any slot overflows.
func (x Vector) TryAdd(y Vector) (Vector, error) {
	var z Vector
	for i := range x {
		s := uint32(x[i]) + uint32(y[i])
		if s > math.MaxUint16 {
			return Vector{}, ErrExpOverflow
		}
		z[i] = uint16(s)
	}
	return z, nil
}

// Add is like TryAdd but panics if any slot overflows.
func (x Vector) Add(y Vector) Vector {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// IsSquare returns true if every slot of x is even, i.e. x describes a
// perfect square (with a non-negative sign).
func (x Vector) IsSquare() bool {
	for _, e := range x {
		if e%2 != 0 {
			return false
		}
	}
	return true
}

// TryInt reconstructs the value x describes, (-1)^x[0] times the product of
// Base(i)^x[i]. TryInt returns 0 and ErrOverflow if the value does not fit
// in int64.
func (x Vector) TryInt() (int64, error) {
	v := int64(1)
	if x[0]%2 == 1 {
		v = -1
	}
	for i := 1; i < BaseSize; i++ {
		for k := uint16(0); k < x[i]; k++ {
			var err error
			v, err = tryMul64(v, base[i])
			if err != nil {
				return 0, err
			}
		}
	}
	return v, nil
}

// Int is like TryInt but panics if the value does not fit in int64.
func (x Vector) Int() int64 {
	v, err := x.TryInt()
	if err != nil {
		panic(err)
	}
	return v
}

// SqrtMod returns the product of Base(i)^(x[i]/2) mod n over the primes,
// ignoring the sign slot. When x is a square this is a square root, mod n,
// of the value x describes. n must not be zero.
func (x Vector) SqrtMod(n uint64) uint64 {
	r := 1 % n
	for i := 1; i < BaseSize; i++ {
		if half := x[i] / 2; half > 0 {
			r = mulMod(r, powMod(uint64(base[i]), uint64(half), n), n)
		}
	}
	return r
}

// String returns the non-zero slots of x as a product, e.g. "-1^1*2^3*5^1".
// The zero vector is "1".
func (x Vector) String() string {
	var buf strings.Builder
	for i, e := range x {
		if e == 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('*')
		}
		buf.WriteString(strconv.FormatInt(base[i], 10))
		buf.WriteByte('^')
		buf.WriteString(strconv.FormatUint(uint64(e), 10))
	}
	if buf.Len() == 0 {
		return "1"
	}
	return buf.String()
}

// parity packs the low bit of every slot of a Vector; a sum of vectors is
// a square exactly when the XOR of their parities is zero.
type parity [(BaseSize + 63) / 64]uint64

func (x Vector) parity() parity {
	var p parity
	for i, e := range x {
		if e%2 == 1 {
			p[i/64] |= 1 << (i % 64)
		}
	}
	return p
}

func (p parity) xor(q parity) parity {
	for i := range p {
		p[i] ^= q[i]
	}
	return p
}

func (p parity) isZero() bool {
	return p == parity{}
}
