package kraitchik_test

import (
	"errors"
	"fmt"

	"github.com/kbolino/kraitchik"
)

func ExampleFactorize() {
	a, b := kraitchik.Factorize(9913)
	fmt.Println(a, b, a*b)
	// Output: 431 23 9913
}

func ExampleTryFactorize_perfectSquare() {
	_, _, err := kraitchik.TryFactorize(49)
	fmt.Println(errors.Is(err, kraitchik.ErrPerfectSquare))
	// Output: true
}

func ExampleFactorizer_Factorize() {
	f, err := kraitchik.New(kraitchik.DefaultConfig().WithStrictSmoothness(true))
	if err != nil {
		panic(err)
	}
	res, err := f.Factorize(9979)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.A, res.B)
	fmt.Println(res.Congruence.Sum)
	// Output:
	// 17 587
	// -1^2*3^4*5^4*7^2*101^2
}

func ExampleTrialDivide() {
	fmt.Println(kraitchik.TrialDivide(-9))
	fmt.Println(kraitchik.TrialDivide(1000))
	// Output:
	// -1^1*3^2
	// 2^3*5^3
}

func ExampleFactor() {
	e, residue := kraitchik.Factor(-1879)
	fmt.Println(e, residue)
	// Output: -1^1 1879
}
