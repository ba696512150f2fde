package common

import (
	"fmt"
	"math"
	"strings"
)

// Vector represents a point or displacement in n-dimensional space.
type Vector []float64

// NewVector creates a zero vector of a given dimension.
func NewVector(dimension int) Vector {
	return make(Vector, dimension)
}

// Dimension returns the dimension of the vector.
func (v Vector) Dimension() int {
	return len(v)
}

// Add adds another vector to this vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if v.Dimension() != other.Dimension() {
		return nil, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	result := NewVector(v.Dimension())
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result, nil
}

// MultiplyByScalar multiplies the vector by a scalar value.
func (v Vector) MultiplyByScalar(scalar float64) Vector {
	result := NewVector(v.Dimension())
	for i := range v {
		result[i] = v[i] * scalar
	}
	return result
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vector) Distance(other Vector) (float64, error) {
	sq, err := v.SquaredDistance(other)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// SquaredDistance calculates the squared Euclidean distance between two vectors.
func (v Vector) SquaredDistance(other Vector) (float64, error) {
	if v.Dimension() != other.Dimension() {
		return 0, fmt.Errorf("vectors must have the same dimension: %d != %d", v.Dimension(), other.Dimension())
	}
	sumOfSquares := 0.0
	for i := range v {
		diff := v[i] - other[i]
		sumOfSquares += diff * diff
	}
	return sumOfSquares, nil
}

// NormSq calculates the squared Euclidean norm of the vector (dot product with itself).
func (v Vector) NormSq() float64 {
	sumOfSquares := 0.0
	for _, val := range v {
		sumOfSquares += val * val
	}
	return sumOfSquares
}

// Norm calculates the Euclidean norm (magnitude) of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// Clone creates a deep copy of the vector.
func (v Vector) Clone() Vector {
	clone := make(Vector, len(v))
	copy(clone, v)
	return clone
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	// Format with limited precision for cleaner output
	strs := make([]string, len(v))
	for i, val := range v {
		strs[i] = fmt.Sprintf("%.3f", val)
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
}
