package cypherdsl

import (
	"errors"
	"fmt"
)

// ArgumentError reports an invalid argument to a construction call: a nil
// clause or expression, or an empty required name. It is signaled
// synchronously at the offending call and never deferred to render time;
// the statement is left in its last valid state.
type ArgumentError struct {
	// Name identifies the offending argument.
	Name string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s %s", e.Name, e.Message)
}

// IsArgumentError returns true if the error is an invalid-argument error.
// Uses errors.As to handle wrapped errors.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
