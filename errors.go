package kraitchik

import "errors"

// Common errors returned by functions in this package.
var (
	ErrInvalidInput  = errors.New("input is less than 2")
	ErrPerfectSquare = errors.New("input is a perfect square")
	ErrOverflow      = errors.New("integer overflow")
	ErrExpOverflow   = errors.New("exponent overflow")
	ErrNoFactor      = errors.New("no factor found within bound")
	ErrEmptySubset   = errors.New("empty relation subset")
	ErrInvalidConfig = errors.New("invalid configuration")
)
