package greet

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

const InvalidNameErrorType = "InvalidNameError"

type InvalidNameError struct {
	value any
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("%s: name must be a string, got %T", ErrInvalidArgument, e.value)
}

func (e InvalidNameError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Value returns the rejected value.
func (e InvalidNameError) Value() any {
	return e.value
}

func NewInvalidNameError(value any) error {
	return InvalidNameError{value: value}
}
