package course

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned (wrapped) by registry lookups whose section
// number falls outside 1..SectionCount.
var ErrOutOfRange = errors.New("section number out of range")

// OutOfRangeError reports the offending section number.
type OutOfRangeError struct {
	Number int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("section %d: %s (valid: %d..%d)", e.Number, ErrOutOfRange, FirstSection, LastSection)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
