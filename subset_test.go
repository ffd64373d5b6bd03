package kraitchik

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSquares(rels []Relation) [][]int {
	var all [][]int
	for idx := range squaresWith(rels) {
		all = append(all, idx)
	}
	return all
}

// bruteSquares lists, by bitmask, every square subset of rels that contains
// the last relation, sorted into power-set order.
func bruteSquares(rels []Relation) [][]int {
	k := len(rels) - 1
	var all [][]int
	for mask := 0; mask < 1<<k; mask++ {
		var idx []int
		var sum Vector
		for i := 0; i < k; i++ {
			if mask&(1<<i) != 0 {
				idx = append(idx, i)
				sum = sum.Add(rels[i].Exponents)
			}
		}
		if sum.Add(rels[k].Exponents).IsSquare() {
			all = append(all, append(idx, k))
		}
	}
	slices.SortFunc(all, func(a, b []int) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return slices.Compare(a, b)
	})
	return all
}

func TestSquaresWith(t *testing.T) {
	rels := []Relation{
		testRelation(1, 4),
		testRelation(2, 2),
		testRelation(3, 8),
	}
	assert.Equal(t, [][]int{{0}}, collectSquares(rels[:1]))
	assert.Empty(t, collectSquares(rels[:2]))
	assert.Equal(t, [][]int{{1, 2}, {0, 1, 2}}, collectSquares(rels))
}

func TestSquaresWith_none(t *testing.T) {
	assert.Empty(t, collectSquares(nil))
	assert.Empty(t, collectSquares([]Relation{testRelation(1, 2), testRelation(2, 3)}))
}

func TestSquaresWith_matchesBruteForce(t *testing.T) {
	const n = 9979
	g := newGenerator(int64(isqrt(n)) + 1)
	var rels []Relation
	for len(rels) < 14 {
		for _, x := range g.cursors() {
			r, err := NewRelation(x, n)
			require.NoError(t, err)
			rels = append(rels, r)
			want := bruteSquares(rels)
			got := collectSquares(rels)
			if len(want) == 0 {
				require.Empty(t, got, "%d relations", len(rels))
				continue
			}
			require.Equal(t, want, got, "%d relations", len(rels))
		}
		g.advance()
	}
}

func TestSquaresWith_earlyExit(t *testing.T) {
	rels := make([]Relation, 30)
	for i := range rels {
		rels[i] = testRelation(int64(i+1), 4)
	}
	n := 0
	for range squaresWith(rels) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func relationsWithX(k int) []Relation {
	rels := make([]Relation, k)
	for i := range rels {
		rels[i].X = int64(i + 1)
	}
	return rels
}

func testRelation(x, q int64) Relation {
	e, residue := Factor(q)
	return Relation{X: x, Q: q, Exponents: e, Residue: residue}
}

func TestKeyOf(t *testing.T) {
	rels := []Relation{{X: 100}, {X: 99}, {X: 101}, {X: 98}}
	assert.Equal(t, subsetKey("98,99,100"), keyOf(rels, []int{0, 1, 3}))
	assert.Equal(t, keyOf(rels, []int{1, 2}), keyOf(rels, []int{2, 1}))
}

// TestBadSubsetsNeverReselected replays the search for 1261, which records a
// trivial congruence before it succeeds.
func TestBadSubsetsNeverReselected(t *testing.T) {
	const n = 1261
	g := newGenerator(int64(isqrt(n)) + 1)
	bad := newBadSubsets()
	var rels []Relation
	var recorded []subsetKey
	for len(rels) < 12 {
		for _, x := range g.cursors() {
			r, err := NewRelation(x, n)
			require.NoError(t, err)
			rels = append(rels, r)
			for idx := range squaresWith(rels) {
				key := keyOf(rels, idx)
				require.False(t, bad.contains(key), "subset %s yielded again", key)
				c, err := buildCongruence(rels, idx, n)
				require.NoError(t, err)
				if !c.Trivial(n) {
					break
				}
				bad.add(key)
				recorded = append(recorded, key)
			}
		}
		g.advance()
	}
	assert.NotEmpty(t, recorded)
	for _, key := range recorded {
		assert.True(t, bad.contains(key))
	}
}
