package utils

import "math"

// Square returns the square of the given number.
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual reports whether two floats are within epsilon of each
// other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}
