package types

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every value-type construction failure.
var ErrValidation = errors.New("validation failed")

// Value type errors.
var (
	ErrEmptyName       = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrInvalidPhone    = fmt.Errorf("%w: phone number must be 10 digits", ErrValidation)
	ErrInvalidBirthday = fmt.Errorf("%w: invalid date format, use DD.MM.YYYY", ErrValidation)
)

// ErrNoOccurrence is returned for a birthday that does not exist in the
// queried year (29 February outside a leap year).
var ErrNoOccurrence = errors.New("birthday does not occur in year")
