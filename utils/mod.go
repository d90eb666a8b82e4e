package utils

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// IsPrime reports whether n is prime (n >= 2 with no divisor in [2, n-1]).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for k := 2; k*k <= n; k++ {
		if n%k == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n int) int {
	k := n + 1
	for !IsPrime(k) {
		k++
	}
	return k
}

// MeanStdError returns the sample mean of values and the standard error
// of that mean. The error is 0 when fewer than two values are given.
func MeanStdError[T Number](values []T) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	samples := make([]float64, len(values))
	for i, v := range values {
		samples[i] = float64(v)
	}
	if len(samples) < 2 {
		return samples[0], 0
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return mean, std / math.Sqrt(float64(len(samples)))
}
