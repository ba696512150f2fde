package common

import (
	"fmt"
	"math"
)

// ValidateBounds checks a flat bounds slice [min0, max0, min1, max1, ...]
// against the expected dimension. Each axis must satisfy min < max and both
// limits must be finite.
func ValidateBounds(bounds []float64, dimension int) error {
	if len(bounds) != dimension*2 {
		return fmt.Errorf("bounds length must be dimension * 2, got %d, expected %d: %w",
			len(bounds), dimension*2, ErrInvalidArgument)
	}
	for i := 0; i < dimension; i++ {
		min := bounds[i*2]
		max := bounds[i*2+1]
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return fmt.Errorf("bounds for axis %d must be finite, got [%v, %v]: %w",
				i, min, max, ErrInvalidArgument)
		}
		if min >= max {
			return fmt.Errorf("bounds for axis %d must satisfy min < max, got [%v, %v]: %w",
				i, min, max, ErrInvalidArgument)
		}
	}
	return nil
}
