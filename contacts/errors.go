package contacts

import "errors"

var (
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidPhoneLength = errors.New("phone number must have 10 or 11 digits")
	ErrNotFound           = errors.New("contact not found")
	ErrEmptyDirectory     = errors.New("no emergency contacts added yet")
)

// IsValidationError reports whether err was caused by bad contact input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) || errors.Is(err, ErrInvalidPhoneLength)
}
