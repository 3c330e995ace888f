package rand

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned by the bag functions for a negative count.
	// The byte-count functions clamp instead; see the package doc.
	ErrInvalidLength = errors.New("count must not be negative")

	// ErrEmptyBag is returned when a bag contains no characters.
	ErrEmptyBag = errors.New("bag must contain at least one character")

	// ErrBagTooLarge is returned when a bag has more than 2^32 characters.
	ErrBagTooLarge = errors.New("bag must not contain more than 2^32 characters")

	// ErrEmptyRange is returned when samples are requested from a range of
	// zero, from which no value can ever be drawn.
	ErrEmptyRange = errors.New("cannot sample from an empty range")

	// ErrNegativeSeedBits is returned by Config.ValidateBasic for a negative
	// seed width.
	ErrNegativeSeedBits = errors.New("seed bits must not be negative")
)

// ErrRangeOutOfBounds is returned when a requested range exceeds 2^32, the
// widest range one 32-bit draw can cover.
type ErrRangeOutOfBounds struct {
	Range uint64
}

func (e ErrRangeOutOfBounds) Error() string {
	return fmt.Sprintf("range %d exceeds 2^32", e.Range)
}
