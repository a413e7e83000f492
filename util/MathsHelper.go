package util

import (
	"golang.org/x/exp/constraints"
)

func Square[T constraints.Integer](v T) T {
	return v * v
}

// CheckedAdd returns a+b and false if the addition wrapped.
func CheckedAdd[T constraints.Signed](a T, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

func CheckedSub[T constraints.Signed](a T, b T) (T, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return c, false
	}
	return c, true
}

// CheckedMul returns a*b and false if the multiplication wrapped.
func CheckedMul[T constraints.Signed](a T, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	// -1 * min wraps back to min, and min / -1 == min, so the division test misses it
	if a == -1 && c == b {
		return c, false
	}
	if c/a != b {
		return c, false
	}
	return c, true
}
