// Package seq generates strided integer sequences and reduces them.
//
// A strided sequence of length n holds the values i*stride for i in
// [0, n). Every call allocates a fresh slice; callers own the result
// and may mutate it freely.
package seq

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Stride is the default step between consecutive elements.
const Stride = 3

// ErrNegativeCount is returned when a generation function is asked
// for a negative number of elements.
var ErrNegativeCount = errors.New("count must be non-negative")

// Generate returns a sequence of count elements where element i
// equals i*Stride. A count of zero yields an empty, non-nil slice.
func Generate(count int) ([]int, error) {
	return GenerateStride(count, Stride)
}

// GenerateStride returns a sequence of count elements where element i
// equals i*stride. A count of zero yields an empty, non-nil slice;
// a negative count is a caller error, not clamped.
func GenerateStride(count, stride int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid count %d: %w", count, ErrNegativeCount)
	}

	values := make([]int, count)
	for i := range values {
		values[i] = i * stride
	}
	return values, nil
}

// Sum returns the sum of all elements, accumulated in int64 so that
// realistic inputs cannot overflow the accumulator. The sum of an
// empty sequence is 0.
func Sum[T constraints.Integer](values []T) int64 {
	var total int64
	for _, v := range values {
		total += int64(v)
	}
	return total
}
