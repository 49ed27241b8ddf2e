package list

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by List operations. Call sites wrap them with the
// offending index or size, so match them with errors.Is.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidOperation = errors.New("invalid operation")
)

func indexError(index, limit int) error {
	if limit == 0 {
		return fmt.Errorf("%w: index %d on an empty list", ErrIndexOutOfRange, index)
	}
	return fmt.Errorf("%w: index %d, valid range [0, %d)", ErrIndexOutOfRange, index, limit)
}

func absentError(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}
