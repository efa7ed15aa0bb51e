package retrieveseq

import (
	"errors"
	"fmt"

	"github.com/cznic/mathutil"
)

var (
	// ErrNegativePosition - a coordinate is below zero
	ErrNegativePosition = errors.New("negative position")
	// ErrZeroPosition - a coordinate is 0, which is not a 1-based position
	ErrZeroPosition = errors.New("position 0 is not a 1-based coordinate")
	// ErrBeyondGenome - a coordinate is past the last base
	ErrBeyondGenome = errors.New("position bigger than genome size")
)

// CheckBounds reports whether the 1-based pair (posA, posB) can be handed to
// Retrieve for a genome of the given length.
func CheckBounds(posA, posB, length int) error {
	low := mathutil.Min(posA, posB)
	if low < 0 {
		return ErrNegativePosition
	}
	if low == 0 {
		return ErrZeroPosition
	}

	if high := mathutil.Max(posA, posB); high > length {
		return fmt.Errorf("%w: %d > %d", ErrBeyondGenome, high, length)
	}

	return nil
}
