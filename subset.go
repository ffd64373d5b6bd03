package kraitchik

import (
	"iter"
	"slices"
	"strconv"
)

// squaresWith yields, in power-set order, every subset of rels that
// contains the last relation and whose exponent vectors sum to a square.
// Power-set order is by size ascending, then lexicographic by index.
//
// Once the search has settled on rels[:len(rels)-1], every subset of those
// is either not a square or recorded bad, so these are the only candidates
// left after appending a relation, and they come in the same relative order
// a full scan would visit them in. Each yielded slice is freshly allocated,
// sorted, and ends with the last index.
func squaresWith(rels []Relation) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		k := len(rels) - 1
		if k < 0 {
			return
		}
		par := make([]parity, len(rels))
		for i, r := range rels {
			par[i] = r.Exponents.parity()
		}
		idx := make([]int, 0, k)
		// prefix[j] is the parity of the last relation combined with
		// idx[:j]; only the entries past a changed position are redone
		prefix := make([]parity, k+1)
		prefix[0] = par[k]
		for size := 0; size <= k; size++ {
			idx = idx[:size]
			for i := range idx {
				idx[i] = i
			}
			from := 0
			for {
				for j := from; j < size; j++ {
					prefix[j+1] = prefix[j].xor(par[idx[j]])
				}
				if prefix[size].isZero() {
					sub := make([]int, size+1)
					copy(sub, idx)
					sub[size] = k
					if !yield(sub) {
						return
					}
				}
				// find the rightmost index that can still move right
				i := size - 1
				for i >= 0 && idx[i] == k-size+i {
					i--
				}
				if i < 0 {
					break
				}
				idx[i]++
				for j := i + 1; j < size; j++ {
					idx[j] = idx[j-1] + 1
				}
				from = i
			}
		}
	}
}

// subsetKey identifies a relation subset by its sorted x values, which are
// unique within one run.
type subsetKey string

func keyOf(rels []Relation, idx []int) subsetKey {
	xs := make([]int64, len(idx))
	for i, j := range idx {
		xs[i] = rels[j].X
	}
	slices.Sort(xs)
	var buf []byte
	for i, x := range xs {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, x, 10)
	}
	return subsetKey(buf)
}

// badSubsets records subsets that produced a trivial congruence.
// It only grows.
type badSubsets struct {
	seen map[subsetKey]struct{}
}

func newBadSubsets() *badSubsets {
	return &badSubsets{seen: make(map[subsetKey]struct{})}
}

func (b *badSubsets) add(k subsetKey) {
	b.seen[k] = struct{}{}
}

func (b *badSubsets) contains(k subsetKey) bool {
	_, ok := b.seen[k]
	return ok
}

func (b *badSubsets) Len() int {
	return len(b.seen)
}
