package experiments

import (
	"fmt"

	"hog/utils"
)

// MakeAveraged returns a function that calls fn numSamples times with the
// same argument and returns the mean result. The first error aborts.
func MakeAveraged[A any, N utils.Number](fn func(A) (N, error), numSamples int) func(A) (float64, error) {
	return func(args A) (float64, error) {
		if numSamples < 1 {
			return 0, fmt.Errorf("num_samples must be positive, got %d", numSamples)
		}
		var total float64
		for i := 0; i < numSamples; i++ {
			value, err := fn(args)
			if err != nil {
				return 0, err
			}
			total += float64(value)
		}
		return total / float64(numSamples), nil
	}
}
