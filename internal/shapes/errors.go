package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a tessellation or size parameter is below its minimum.
	ErrInvalidDimensions = errors.New("invalid shape dimensions")
	// ErrIndexOverflow is returned when a shape would need more vertices than 16-bit indices can address.
	ErrIndexOverflow = errors.New("shape exceeds 16-bit index space")
	// ErrAllocation is returned when vertex or index storage cannot be allocated.
	ErrAllocation = errors.New("geometry allocation failed")
	// ErrInvalidBuffer is returned by GeometryBuffer.Validate.
	ErrInvalidBuffer = errors.New("invalid geometry buffer")
)

// allocate makes a slice of n elements, turning a runtime allocation panic into ErrAllocation.
func allocate[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}
