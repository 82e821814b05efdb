package currency

import (
	"errors"
	"fmt"

	"github.com/VladPetriv/money/pkg/errs"
)

// ErrUnknownCurrency is matched by every UnknownCurrencyError.
var ErrUnknownCurrency = errors.New("unknown currency")

// UnknownCurrencyError is returned when identifier has no definition in the table.
type UnknownCurrencyError struct {
	ID string

	expected *errs.Err
}

func newUnknownCurrencyError(id string) *UnknownCurrencyError {
	return &UnknownCurrencyError{
		ID:       id,
		expected: errs.New(fmt.Sprintf("unknown currency '%s'", id)),
	}
}

func (e *UnknownCurrencyError) Error() string {
	return e.expected.Error()
}

// Is reports whether target is ErrUnknownCurrency.
func (e *UnknownCurrencyError) Is(target error) bool {
	return target == ErrUnknownCurrency
}

// Unwrap exposes the expected error so errs.IsExpected recognizes it.
func (e *UnknownCurrencyError) Unwrap() error {
	return e.expected
}
