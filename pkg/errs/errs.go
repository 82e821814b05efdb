package errs

import (
	"errors"
	"fmt"
)

// Err represents a custom error type with a message.
// Errors of this type are expected ones and their message can be shown to the caller as is.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

// Newf creates a new custom error with the formatted message.
func Newf(format string, args ...any) *Err {
	return &Err{Message: fmt.Sprintf(format, args...)}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error is of custom Err type or wraps one.
func IsExpected(err error) bool {
	var target *Err
	return errors.As(err, &target)
}

// Message returns message of the first custom error in the chain.
// Returns empty string if err is not expected.
func Message(err error) string {
	var target *Err
	if errors.As(err, &target) {
		return target.Message
	}

	return ""
}
