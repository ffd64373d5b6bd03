package kraitchik

import "fmt"

// Relation pairs a value x with the factorization of Q(x) = x² - n.
type Relation struct {
	X         int64
	Q         int64
	Exponents Vector
	// Residue is the part of |Q| left after trial division; 1 if Q is
	// smooth over the factor base.
	Residue uint64
}

// NewRelation computes Q(x) = x² - n with checked arithmetic and factors it
// over the factor base. It returns ErrOverflow if x² or the difference does
// not fit in int64.
func NewRelation(x, n int64) (Relation, error) {
	xx, err := tryMul64(x, x)
	if err != nil {
		return Relation{}, fmt.Errorf("squaring %d: %w", x, err)
	}
	q, err := trySub64(xx, n)
	if err != nil {
		return Relation{}, fmt.Errorf("computing %d² - %d: %w", x, n, err)
	}
	e, residue := Factor(q)
	return Relation{X: x, Q: q, Exponents: e, Residue: residue}, nil
}

// Smooth returns true if Q(x) factored completely over the factor base.
func (r Relation) Smooth() bool {
	return r.Residue == 1
}

// generator walks two cursors outward from ⌈√n⌉: up counts upward from it
// and down counts downward from one below it. down stops producing
// relations once it drops below 1.
type generator struct {
	up, down int64
}

func newGenerator(start int64) *generator {
	return &generator{up: start, down: start - 1}
}

// cursors returns the x values of the current round, up first.
func (g *generator) cursors() []int64 {
	if g.down < 1 {
		return []int64{g.up}
	}
	return []int64{g.up, g.down}
}

// advance moves both cursors one step outward.
func (g *generator) advance() {
	g.up++
	g.down--
}
