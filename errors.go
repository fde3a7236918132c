package fastvector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by At when the index does not address a live
	// element. Match it with errors.Is.
	ErrOutOfRange = errors.New("fastvector: index out of range")
)

// OutOfRangeError reports a checked access outside the live index range.
//
// Size is the logical element count at the time of the access; a Size of
// zero means the vector was empty. The sentinel ErrOutOfRange can be
// recovered via errors.Unwrap / errors.Is.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	if e.Size == 0 {
		return "fastvector: container is empty"
	}
	return fmt.Sprintf("fastvector: index %d out of range for size %d", e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
