package util

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp restricts v to [lo, hi]. NaN is returned unchanged.
func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual reports whether a and b differ by no more than epsilon.
func NearlyEqual[T constraints.Float](a T, b T, epsilon T) bool {
	return math.Abs(float64(a-b)) <= float64(epsilon)
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
