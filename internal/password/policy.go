package password

import (
	"errors"
	"fmt"
)

// MinLength is the minimum number of characters in a password.
const MinLength = 8

var (
	ErrTooShort       = fmt.Errorf("password must be at least %d characters", MinLength)
	ErrMissingClasses = errors.New("password must contain uppercase and lowercase letters and digits")
)

// Validate checks that p has at least MinLength characters and contains
// a lowercase letter, an uppercase letter and a digit.
func Validate(p string) error {
	if len([]rune(p)) < MinLength {
		return ErrTooShort
	}

	var lower, upper, digit bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return ErrMissingClasses
	}

	return nil
}
