package kraitchik

import "fmt"

// Congruence is a pair U, V with U² ≡ V² (mod n), built from a subset of
// relations whose exponent vectors sum to a square.
type Congruence struct {
	U, V   uint64
	Subset []Relation
	// Sum is the component-wise sum of the subset's exponent vectors.
	Sum Vector
}

// buildCongruence computes U as the product of the subset's x values mod n
// and V as the square root, mod n, of the product of its Q values.
func buildCongruence(rels []Relation, idx []int, n uint64) (Congruence, error) {
	if len(idx) == 0 {
		return Congruence{}, ErrEmptySubset
	}
	c := Congruence{U: 1 % n, Subset: make([]Relation, 0, len(idx))}
	for _, i := range idx {
		r := rels[i]
		c.U = mulMod(c.U, uabs64(r.X), n)
		sum, err := c.Sum.TryAdd(r.Exponents)
		if err != nil {
			return Congruence{}, fmt.Errorf("summing exponents of x = %d: %w", r.X, err)
		}
		c.Sum = sum
		c.Subset = append(c.Subset, r)
	}
	c.V = c.Sum.SqrtMod(n)
	return c, nil
}

// Trivial returns true if c cannot split n: U ≡ ±V (mod n). It also returns
// true if U² ≢ V² (mod n), which happens only when a subset relation had a
// residue dropped by trial division.
func (c Congruence) Trivial(n uint64) bool {
	if c.U == c.V || addMod(c.U, c.V, n) == 0 {
		return true
	}
	return mulMod(c.U, c.U, n) != mulMod(c.V, c.V, n)
}

// Factors returns GCD(U-V, n) and GCD(U+V, n).
func (c Congruence) Factors(n uint64) (a, b uint64) {
	// U and V are below n <= math.MaxInt64, so the difference fits
	a = uint64(GCD(int64(c.U)-int64(c.V), int64(n)))
	b = uint64(GCD(int64(addMod(c.U, c.V, n)), int64(n)))
	return a, b
}

// xs returns the x values of the subset in order.
func (c Congruence) xs() []int64 {
	xs := make([]int64, len(c.Subset))
	for i, r := range c.Subset {
		xs[i] = r.X
	}
	return xs
}
