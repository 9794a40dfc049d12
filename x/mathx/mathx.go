// Package mathx holds small generic integer helpers for pin, clock and
// touch arithmetic.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return Clamp(v, lo, hi) == v
}

// CeilDiv returns ceil(a/b) for positive integers; 0 when b is 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// MapRange maps x from [inA,inB] onto [outA,outB] using 64-bit intermediates.
// Either range may run backwards (inA > inB flips the axis). The result is
// clamped to the output range; a degenerate input range yields outA.
func MapRange[T constraints.Signed](x, inA, inB, outA, outB T) T {
	if inA == inB {
		return outA
	}
	num := (int64(x) - int64(inA)) * (int64(outB) - int64(outA))
	den := int64(inB) - int64(inA)
	return Clamp(T(int64(outA)+num/den), outA, outB)
}
