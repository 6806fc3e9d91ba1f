package util

import "golang.org/x/exp/constraints"

// Coerce returns value, limited to the range [min..max]
func Coerce[T constraints.Integer | constraints.Float](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// InRange reports whether min <= value <= max
func InRange[T constraints.Ordered](value T, min T, max T) bool {
	return value >= min && value <= max
}
