package kraitchik_test

import (
	"fmt"
	"testing"

	"github.com/kbolino/kraitchik"
)

func BenchmarkFactorize(b *testing.B) {
	for _, c := range FactorCases {
		b.Run(fmt.Sprint(c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				kraitchik.Factorize(c.N)
			}
		})
	}
}

func BenchmarkTryFactorize_prime(b *testing.B) {
	for _, n := range []uint64{97, 7919} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				kraitchik.TryFactorize(n)
			}
		})
	}
}

func BenchmarkTrialDivide(b *testing.B) {
	for _, v := range []int64{21, -178, 1000, -1879, 2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23} {
		b.Run(fmt.Sprint(v), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				kraitchik.TrialDivide(v)
			}
		})
	}
}
